package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/netdraw/pkg/diagram"
)

const svgDefs = `
    <defs>
        <marker id="triangle" viewBox="0 0 10 10" refX="10" refY="5" markerUnits="strokeWidth" markerWidth="12" markerHeight="12" orient="auto">
            <path d="M 0 0 L 10 5 L 0 10 z" fill="#000"/>
        </marker>
    </defs>
    `

// frameMargin pads the framed extent on every side.
const frameMargin = 10.0

// style is an ordered list of CSS declarations.
type style [][2]string

func (s style) String() string {
	parts := make([]string, len(s))
	for i, kv := range s {
		parts[i] = kv[0] + ": " + kv[1]
	}
	return strings.Join(parts, ";")
}

func faceStyle(fill string) style {
	return style{{"stroke", "#000000"}, {"stroke-linejoin", "round"}, {"fill", fill}}
}

var (
	arrowStyle = style{{"stroke", "0"}}
	routeStyle = style{
		{"fill", "none"},
		{"stroke", "#000"},
		{"stroke-width", "1"},
		{"marker-end", "url(#triangle)"},
		{"stroke-dasharray", "2,2"},
	}
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	frame bool
}

// WithFrame adds viewBox, width and height attributes sized to the diagram.
func WithFrame() SVGOption { return func(r *svgRenderer) { r.frame = true } }

// RenderSVG renders d as an SVG document.
func RenderSVG(d *diagram.Diagram, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if r.frame {
		writeFrame(&buf, d.Bounds())
	}
	buf.WriteString(">")
	buf.WriteString(svgDefs)

	fs := d.Options.FontSize
	for _, b := range d.Blocks {
		writeBlock(&buf, b)
		buf.WriteString("\n")
		writeText(&buf, d.ChannelLabel(b), fs)
		buf.WriteString("\n")
		if l, ok := d.SizeLabel(b); ok {
			writeText(&buf, l, fs)
			buf.WriteString("\n")
		}
		if a, ok := d.Arrow(b); ok {
			writePath(&buf, a.Head(), arrowStyle, true)
			writePath(&buf, a.Shaft(), arrowStyle, true)
		}
	}
	for _, rt := range d.Routes {
		writePath(&buf, rt.Points[:], routeStyle, false)
	}

	buf.WriteString("</svg>")
	return buf.Bytes()
}

func writeFrame(buf *bytes.Buffer, r diagram.Rect) {
	x, y := r.MinX-frameMargin, r.MinY-frameMargin
	w, h := r.Width()+2*frameMargin, r.Height()+2*frameMargin
	fmt.Fprintf(buf, ` viewBox="%s %s %s %s" width="%s" height="%s"`,
		num(x), num(y), num(w), num(h), num(w), num(h))
}

func writeBlock(buf *bytes.Buffer, b diagram.Block) {
	tones := b.Palette.Tones()
	front, side, top := b.Faces()
	writePath(buf, front, faceStyle(tones.Front), true)
	writePath(buf, side, faceStyle(tones.Side), true)
	writePath(buf, top, faceStyle(tones.Top), true)
}

func writePath(buf *bytes.Buffer, pts []diagram.Point, s style, closed bool) {
	buf.WriteString(`<path d="M `)
	for i, p := range pts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(num(p.X))
		buf.WriteByte(',')
		buf.WriteString(num(p.Y))
	}
	if closed {
		buf.WriteString(" Z")
	}
	fmt.Fprintf(buf, `" style="%s" />`, s)
}

func writeText(buf *bytes.Buffer, l diagram.Label, size float64) {
	s := style{{"font-size", num(size) + "pt"}, {"font-family", "Sans"}, {"font-weight", "bold"}}
	fmt.Fprintf(buf, `<text x="%s" y="%s" style="%s">%s</text>`, num(l.At.X), num(l.At.Y), s, escapeXML(l.Text))
}

// num formats v in its shortest exact decimal form.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
