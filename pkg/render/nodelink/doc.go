// Package nodelink renders layer diagrams as traditional node-link graphs.
//
// # Overview
//
// This package produces a directed graph of the flattened layer chain using
// Graphviz: one box per block, solid edges between consecutive blocks and
// dashed edges for skip connections. It is an alternative to the isometric
// block view when only topology matters.
//
// # Usage
//
// Convert a diagram to DOT format, then render:
//
//	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//
// # Options
//
//   - Detailed: When true, node labels include pooling factor, tensor size
//     and the block's palette in addition to the channel count.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering. PDF conversion requires librsvg (rsvg-convert).
package nodelink
