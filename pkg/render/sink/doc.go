// Package sink provides output format renderers for layer diagrams.
//
// # Overview
//
// A "sink" transforms a computed [diagram.Diagram] into a final output
// format. This package provides renderers for:
//
//   - SVG: the reference vector document
//   - PNG: native raster output drawn with fogleman/gg
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the computed geometry for external tooling
//
// # SVG Output
//
// [RenderSVG] emits one arrowhead marker definition followed by, for each
// block, three face paths, a channel label, an optional tensor size label
// and an optional arrow; skip connections come last as dashed open paths.
// Output is byte-for-byte deterministic for a given diagram.
//
//	svg := sink.RenderSVG(d)
//
// By default the root element carries no dimensions. [WithFrame] adds a
// viewBox and width/height computed from [diagram.Diagram.Bounds], which
// most viewers and converters prefer.
//
// # PNG and PDF Output
//
// [RenderPNG] rasterises the same primitives at a configurable scale
// (default 2x). [RenderPDF] converts the framed SVG with rsvg-convert.
//
//	png, err := sink.RenderPNG(d, sink.WithScale(3))
//	pdf, err := sink.RenderPDF(d)
package sink
