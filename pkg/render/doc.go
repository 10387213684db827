// Package render provides output conversion for netdraw diagrams.
//
// # Overview
//
// Diagrams are laid out by pkg/diagram and emitted by the subpackages:
//
//   - [sink]: the isometric block diagram as SVG, PNG, PDF or JSON
//   - [nodelink]: the same layer chain as a Graphviz node-link graph
//
// # Format Conversion
//
// [ToPDF] converts any SVG document to PDF using the external rsvg-convert
// tool (from librsvg). The SVG must carry explicit dimensions; the sink
// package frames its output before converting.
//
//	svg := sink.RenderSVG(d, sink.WithFrame())
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/matzehuels/netdraw/pkg/render/sink
// [nodelink]: github.com/matzehuels/netdraw/pkg/render/nodelink
package render
