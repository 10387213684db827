package sink

import (
	"encoding/json"

	"github.com/matzehuels/netdraw/pkg/diagram"
)

type jsonOutput struct {
	Bounds  jsonBounds      `json:"bounds"`
	Options diagram.Options `json:"options"`
	Blocks  []jsonBlock     `json:"blocks"`
	Routes  []diagram.Route `json:"routes,omitempty"`
}

type jsonBounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonBlock struct {
	diagram.Block
	Anchor    diagram.Anchor      `json:"anchor"`
	Label     diagram.Label       `json:"label"`
	SizeLabel *diagram.Label      `json:"size_label,omitempty"`
	Arrow     *diagram.ArrowGlyph `json:"arrow,omitempty"`
}

// RenderJSON serializes the computed geometry of d: bounds, options, every
// block with its anchor and label positions, and the connection routes.
func RenderJSON(d *diagram.Diagram) ([]byte, error) {
	b := d.Bounds()
	out := jsonOutput{
		Bounds:  jsonBounds{X: b.MinX, Y: b.MinY, Width: b.Width(), Height: b.Height()},
		Options: d.Options,
		Blocks:  make([]jsonBlock, len(d.Blocks)),
		Routes:  d.Routes,
	}
	for i, blk := range d.Blocks {
		jb := jsonBlock{Block: blk, Anchor: blk.Anchor(), Label: d.ChannelLabel(blk)}
		if l, ok := d.SizeLabel(blk); ok {
			jb.SizeLabel = &l
		}
		if a, ok := d.Arrow(blk); ok {
			jb.Arrow = &a
		}
		out.Blocks[i] = jb
	}
	return json.MarshalIndent(out, "", "  ")
}
