// Package diagram computes the geometry of layered network diagrams.
//
// A diagram is a left-to-right sequence of pseudo-3D blocks, one per network
// layer. Block width encodes the layer's channel count and block height encodes
// its spatial resolution, which shrinks as pooling factors accumulate. Dashed
// skip connections link non-adjacent blocks through a shared baseline above
// the blocks.
//
// # Pipeline
//
// [Build] turns an [Options] value into a [Diagram] in one linear pass:
//
//  1. Flatten channel groups into blocks with explicit GapBefore/GapAfter
//  2. Pad pooling factors (with 1) and tensor sizes (with the last value)
//  3. Size and position every block, accumulating horizontal offset and
//     shrinking the running height by each block's pooling factor
//  4. Route skip connections between recorded block anchors
//
// The result carries no markup. Renderers in pkg/render/sink turn a
// [Diagram] into SVG, PNG, PDF or JSON, and all of them read the same label,
// arrow and face coordinates from this package so the outputs agree.
//
// # Groups and gaps
//
// Channels are given as groups. Members of a group are drawn flush against
// each other; the configured spacing separates consecutive groups:
//
//	opts := diagram.DefaultOptions()
//	opts.Channels = [][]int{{3}, {16, 16}, {32}}
//	d, err := diagram.Build(opts)
//
// Here block 1 has GapAfter 0 and block 2 has GapAfter equal to the spacing.
// Arrows are only drawn into a positive GapAfter, and tensor size labels only
// in front of a positive GapBefore. The first block never has a GapBefore.
package diagram
