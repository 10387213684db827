package diagram

// obliqueRatio is the side/top face depth relative to a block's height.
const obliqueRatio = 0.3

// Block is one rendered layer.
//
// X and Y locate the top-left corner of the front face in document
// coordinates. The side and top faces extend up and to the right by
// obliqueRatio times the block's height.
type Block struct {
	Index     int     `json:"index"`
	Channels  int     `json:"channels"`
	Pool      float64 `json:"pool"`
	Size      *int    `json:"size,omitempty"`
	GapBefore float64 `json:"gap_before"`
	GapAfter  float64 `json:"gap_after"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Palette   Palette `json:"palette"`
}

// Anchor is the attachment point recorded for each block and used by skip
// connections.
type Anchor struct {
	CenterX float64 `json:"center_x"`
	Width   float64 `json:"width"`
	TopY    float64 `json:"top_y"`
}

// Anchor returns the block's center-x, width and top-y.
func (b Block) Anchor() Anchor {
	return Anchor{CenterX: b.X + 0.5*b.Width, Width: b.Width, TopY: b.Y}
}

// Depth returns the oblique offset of the side and top faces.
func (b Block) Depth() float64 { return obliqueRatio * b.Height }

// Faces returns the front, side and top face polygons, in drawing order.
func (b Block) Faces() (front, side, top []Point) {
	x, y, w, h, d := b.X, b.Y, b.Width, b.Height, b.Depth()
	front = []Point{{x, y}, {x, y + h}, {x + w, y + h}, {x + w, y}}
	side = []Point{{x + w, y + h}, {x + w + d, y + h - d}, {x + w + d, y - d}, {x + w, y}}
	top = []Point{{x, y}, {x + w, y}, {x + w + d, y - d}, {x + d, y - d}}
	return front, side, top
}

// Flatten expands channel groups into blocks carrying their channel count and
// gaps. Members of a group sit flush (GapAfter 0) except the last, which is
// followed by spacing. GapBefore mirrors the previous block's GapAfter and is
// always 0 for the first block.
func Flatten(groups [][]int, spacing float64) []Block {
	var blocks []Block
	for _, g := range groups {
		for j, c := range g {
			gap := 0.0
			if j == len(g)-1 {
				gap = spacing
			}
			blocks = append(blocks, Block{
				Index:    len(blocks),
				Channels: c,
				Pool:     1,
				GapAfter: gap,
			})
		}
	}
	for i := 1; i < len(blocks); i++ {
		blocks[i].GapBefore = blocks[i-1].GapAfter
	}
	return blocks
}

// padPool returns one pooling factor per block, filling missing positions
// with 1.
func padPool(pool []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
		if i < len(pool) {
			out[i] = pool[i]
		}
	}
	return out
}

// padSizes returns one optional tensor size per block. Missing positions
// repeat the last given size; a nil or empty input yields no sizes.
func padSizes(sizes []int, n int) []*int {
	out := make([]*int, n)
	if len(sizes) == 0 {
		return out
	}
	for i := range out {
		v := sizes[len(sizes)-1]
		if i < len(sizes) {
			v = sizes[i]
		}
		out[i] = &v
	}
	return out
}
