package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes pooling, tensor size and palette in node labels.
	// When false, only the channel count is shown.
	Detailed bool
}

// ToDOT converts a diagram to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPNG] or
// [RenderPDF].
//
// Blocks become nodes named by their flattened index and filled with the
// block's front tone. Blocks within a group are joined by bold edges so groups
// stay visually distinct.
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Sans\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, b := range d.Blocks {
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(b, opts.Detailed)),
			fmt.Sprintf("fillcolor=%q", b.Palette.Tones().Front),
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(b.Index), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(d.Blocks); i++ {
		prev := d.Blocks[i-1]
		attr := ""
		if prev.GapAfter == 0 {
			attr = " [style=bold, arrowhead=none]"
		}
		fmt.Fprintf(&buf, "  %s -> %s%s;\n", nodeID(prev.Index), nodeID(i), attr)
	}
	for _, r := range d.Routes {
		fmt.Fprintf(&buf, "  %s -> %s [style=dashed, constraint=false];\n", nodeID(r.Start), nodeID(r.End))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "b" + strconv.Itoa(i) }

func fmtLabel(b diagram.Block, detailed bool) string {
	label := strconv.Itoa(b.Channels)
	if !detailed {
		return label
	}

	parts := []string{label, "pool: " + strconv.FormatFloat(b.Pool, 'g', -1, 64)}
	if b.Size != nil {
		parts = append(parts, "size: "+strconv.Itoa(*b.Size))
	}
	parts = append(parts, "color: "+b.Palette.String())
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := renderDOT(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based root element with a pixel
// viewBox of the same extent.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
