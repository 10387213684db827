package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
)

const (
	// labelDPI renders label point sizes the way browsers treat SVG pt units.
	labelDPI = 96

	// Route arrowhead size in pixels, matching the SVG marker (12 stroke
	// widths long, tip at the path end).
	markerLength    = 12.0
	markerHalfWidth = 6.0
	routeDash       = 2.0

	// maxPNGPixels caps the canvas allocation (about 256 MiB of RGBA).
	maxPNGPixels = 64 << 20
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background color.Color
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithBackground sets the canvas color. Use color.Transparent for none.
func WithBackground(c color.Color) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// RenderPNG rasterises d. The canvas covers the diagram bounds plus a margin.
func RenderPNG(d *diagram.Diagram, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, background: color.White}
	for _, opt := range opts {
		opt(&r)
	}

	bounds := d.Bounds()
	if err := checkCanvas(bounds.Width(), bounds.Height(), r.scale); err != nil {
		return nil, err
	}
	w := int(math.Ceil((bounds.Width() + 2*frameMargin) * r.scale))
	h := int(math.Ceil((bounds.Height() + 2*frameMargin) * r.scale))

	dc := gg.NewContext(w, h)
	dc.SetColor(r.background)
	dc.Clear()
	dc.Scale(r.scale, r.scale)
	dc.Translate(frameMargin-bounds.MinX, frameMargin-bounds.MinY)
	dc.SetLineJoinRound()

	face, err := labelFace(d.Options.FontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	for _, b := range d.Blocks {
		drawBlockPNG(dc, b)
		drawTextPNG(dc, d.ChannelLabel(b))
		if l, ok := d.SizeLabel(b); ok {
			drawTextPNG(dc, l)
		}
		if a, ok := d.Arrow(b); ok {
			fillPolygon(dc, a.Head(), color.Black)
			fillPolygon(dc, a.Shaft(), color.Black)
		}
	}
	for _, rt := range d.Routes {
		drawRoutePNG(dc, rt)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// labelFace loads the bold Go font at the given point size.
func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     labelDPI,
		Hinting: font.HintingFull,
	}), nil
}

func drawBlockPNG(dc *gg.Context, b diagram.Block) {
	tones := b.Palette.Tones()
	front, side, top := b.Faces()
	for _, face := range []struct {
		pts  []diagram.Point
		fill string
	}{
		{front, tones.Front},
		{side, tones.Side},
		{top, tones.Top},
	} {
		tracePolygon(dc, face.pts)
		dc.SetHexColor(face.fill)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
}

func drawTextPNG(dc *gg.Context, l diagram.Label) {
	dc.SetColor(color.Black)
	dc.DrawString(l.Text, l.At.X, l.At.Y)
}

func drawRoutePNG(dc *gg.Context, rt diagram.Route) {
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.SetDash(routeDash, routeDash)
	dc.MoveTo(rt.Points[0].X, rt.Points[0].Y)
	for _, p := range rt.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
	dc.SetDash()

	fillPolygon(dc, routeMarker(rt), color.Black)
}

// routeMarker returns the arrowhead triangle at the end of rt, oriented along
// its last non-degenerate segment.
func routeMarker(rt diagram.Route) []diagram.Point {
	tip := rt.Points[3]
	dx, dy := 0.0, -1.0
	for i := 3; i > 0; i-- {
		vx, vy := rt.Points[i].X-rt.Points[i-1].X, rt.Points[i].Y-rt.Points[i-1].Y
		if n := math.Hypot(vx, vy); n > 0 {
			dx, dy = vx/n, vy/n
			break
		}
	}
	bx, by := tip.X-dx*markerLength, tip.Y-dy*markerLength
	return []diagram.Point{
		tip,
		{X: bx - dy*markerHalfWidth, Y: by + dx*markerHalfWidth},
		{X: bx + dy*markerHalfWidth, Y: by - dx*markerHalfWidth},
	}
}

func tracePolygon(dc *gg.Context, pts []diagram.Point) {
	dc.NewSubPath()
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}

// checkCanvas rejects canvases that are empty, non-finite or too large to
// allocate. Sizes are checked in float space before any int conversion.
func checkCanvas(width, height, scale float64) error {
	w := math.Ceil((width + 2*frameMargin) * scale)
	h := math.Ceil((height + 2*frameMargin) * scale)
	if math.IsNaN(w) || math.IsNaN(h) || w < 1 || h < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "png canvas is empty (%vx%v at scale %v)", w, h, scale)
	}
	if w*h > maxPNGPixels {
		return errors.New(errors.ErrCodeInvalidInput, "png canvas too large: %.0fx%.0f pixels (max %d); lower --png-scale or --scale", w, h, maxPNGPixels)
	}
	return nil
}

func fillPolygon(dc *gg.Context, pts []diagram.Point, c color.Color) {
	tracePolygon(dc, pts)
	dc.SetColor(c)
	dc.Fill()
}
