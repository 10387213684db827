package diagram

import (
	"math"
	"strconv"
)

// Arrow glyph proportions relative to its length.
const (
	arrowHeadRatio  = 1.0 / 4
	arrowShaftRatio = 1.0 / 12

	// arrowNominal is the length the gap centering assumes, independent of
	// the configured arrow size.
	arrowNominal = 25.0

	// Skip connection baselines start this far above Off.Y and step down by
	// routeStep per connection.
	routeRise = 100.0
	routeStep = 15.0
)

// Diagram is the laid-out result of [Build].
type Diagram struct {
	Options Options `json:"options"`
	Blocks  []Block `json:"blocks"`
	Routes  []Route `json:"routes,omitempty"`
}

// Route is a skip connection resolved to document coordinates: a drop from
// the start anchor to Baseline, across, then into the end anchor.
type Route struct {
	Index    int      `json:"index"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Baseline float64  `json:"baseline"`
	Points   [4]Point `json:"points"`
}

// ArrowGlyph is a horizontal arrow between two blocks.
type ArrowGlyph struct {
	Origin Point   `json:"origin"`
	Length float64 `json:"length"`
}

// Head returns the triangular arrow head polygon.
func (a ArrowGlyph) Head() []Point {
	x, y, l := a.Origin.X, a.Origin.Y, a.Length
	v := l * arrowHeadRatio
	return []Point{{x + l, y}, {x + l/2, y + v}, {x + l/2, y - v}}
}

// Shaft returns the rectangular arrow shaft polygon.
func (a ArrowGlyph) Shaft() []Point {
	x, y, l := a.Origin.X, a.Origin.Y, a.Length
	b := l * arrowShaftRatio
	return []Point{{x, y - b}, {x, y + b}, {x + l/2, y + b}, {x + l/2, y - b}}
}

// Label is a text item anchored at its left baseline.
type Label struct {
	At   Point  `json:"at"`
	Text string `json:"text"`
}

// Build validates opts and computes the full diagram geometry.
func Build(opts Options) (*Diagram, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.Clone()

	blocks := Flatten(opts.Channels, opts.Spacing)
	pool := padPool(opts.Pool, len(blocks))
	sizes := padSizes(opts.Sizes, len(blocks))

	maxC := 0
	for _, b := range blocks {
		maxC = max(maxC, b.Channels)
	}

	var x, y float64
	h := opts.Scale
	for i := range blocks {
		b := &blocks[i]
		b.Pool = pool[i]
		b.Size = sizes[i]
		b.Width = opts.blockWidth(b.Channels, maxC)
		b.Height = h
		b.X = opts.Off.X + x
		b.Y = opts.Off.Y + y
		b.Palette = opts.Color
		if i == 0 {
			b.Palette = Gray
		}

		h = opts.shrink(h, b.Pool)
		y = (opts.Scale - h) / 2
		x += b.Width + b.GapAfter
	}

	d := &Diagram{Options: opts, Blocks: blocks}
	d.Routes = d.route()
	return d, nil
}

// blockWidth maps a channel count to a pixel width, floored at MinWidth.
// With LogWidth a single channel yields a zero fraction before the floor.
func (o Options) blockWidth(c, maxC int) float64 {
	frac := float64(c) / float64(maxC)
	if o.LogWidth {
		frac = math.Log(float64(c)) / math.Log(float64(maxC))
	}
	return max(o.MinWidth, frac*o.ScaleWidth*o.Scale)
}

// shrink applies one pooling step to the running height with floor division.
func (o Options) shrink(h, pool float64) float64 {
	if o.SqrtHeight {
		return floorDiv(h, math.Sqrt(pool))
	}
	return floorDiv(h, pool)
}

// floorDiv is floored float division computed from the remainder, so that
// 150 / 0.1 floors to 1499 rather than to the rounded quotient 1500.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	f := math.Floor(div)
	if div-f > 0.5 {
		f++
	}
	return f
}

func (d *Diagram) route() []Route {
	if len(d.Options.Connections) == 0 {
		return nil
	}
	routes := make([]Route, len(d.Options.Connections))
	for i, c := range d.Options.Connections {
		s, e := d.Blocks[c.Start].Anchor(), d.Blocks[c.End].Anchor()
		base := d.Options.Off.Y - routeRise + float64(i)*routeStep
		sx := s.CenterX + obliqueRatio*s.Width
		routes[i] = Route{
			Index:    i,
			Start:    c.Start,
			End:      c.End,
			Baseline: base,
			Points: [4]Point{
				{sx, s.TopY},
				{sx, base},
				{e.CenterX, base},
				{e.CenterX, e.TopY},
			},
		}
	}
	return routes
}

// Anchors returns every block's anchor in block order.
func (d *Diagram) Anchors() []Anchor {
	out := make([]Anchor, len(d.Blocks))
	for i, b := range d.Blocks {
		out[i] = b.Anchor()
	}
	return out
}

// ChannelLabel returns the channel count label centered under b.
func (d *Diagram) ChannelLabel(b Block) Label {
	fs := d.Options.FontSize
	return Label{
		At:   Point{X: b.X + 0.5*b.Width - 5, Y: b.Y + b.Height + fs + 3},
		Text: strconv.Itoa(b.Channels),
	}
}

// SizeLabel returns the tensor size label to the left of b. It is present
// only when b has a size and a positive gap before it.
func (d *Diagram) SizeLabel(b Block) (Label, bool) {
	if b.Size == nil || b.GapBefore <= 0 {
		return Label{}, false
	}
	fs := d.Options.FontSize
	txt := strconv.Itoa(*b.Size)
	return Label{
		At:   Point{X: b.X - float64(len(txt))*fs, Y: d.Options.Off.Y + d.Options.Scale/2 + fs/2},
		Text: txt,
	}, true
}

// Arrow returns the arrow drawn in the gap after b. It is present only when
// arrows are enabled, b is not the last block and the gap after it is
// positive.
func (d *Diagram) Arrow(b Block) (ArrowGlyph, bool) {
	if d.Options.ArrowSize <= 0 || b.GapAfter <= 0 || b.Index >= len(d.Blocks)-1 {
		return ArrowGlyph{}, false
	}
	return ArrowGlyph{
		Origin: Point{X: b.X + b.Width + (b.GapAfter-arrowNominal)/2, Y: d.Options.Off.Y + d.Options.Scale/2 - 5},
		Length: d.Options.ArrowSize,
	}, true
}

// Rect is an axis-aligned extent.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Bounds returns the extent of everything the diagram draws. Text extents are
// estimated from the font size since no font metrics are available here.
func (d *Diagram) Bounds() Rect {
	r := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	add := func(pts ...Point) {
		for _, p := range pts {
			r.MinX, r.MaxX = min(r.MinX, p.X), max(r.MaxX, p.X)
			r.MinY, r.MaxY = min(r.MinY, p.Y), max(r.MaxY, p.Y)
		}
	}
	fs := d.Options.FontSize
	addLabel := func(l Label) {
		add(l.At, Point{l.At.X + float64(len(l.Text))*fs, l.At.Y - fs*4/3})
	}

	for _, b := range d.Blocks {
		front, side, top := b.Faces()
		add(front...)
		add(side...)
		add(top...)
		addLabel(d.ChannelLabel(b))
		if l, ok := d.SizeLabel(b); ok {
			addLabel(l)
		}
		if a, ok := d.Arrow(b); ok {
			add(a.Head()...)
			add(a.Shaft()...)
		}
	}
	for _, rt := range d.Routes {
		add(rt.Points[:]...)
	}
	return r
}
