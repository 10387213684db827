package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/netdraw/pkg/diagram"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for channel counts and other emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for paths and values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric table cells.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand  = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconRoute   = "⤷"
	iconBlock   = "■"
	iconCached  = "cached"
	iconFresh   = "fresh"
	separator   = " · "
)

// =============================================================================
// Printer
// =============================================================================

// printer writes styled status lines to w. Commands build one from
// cmd.OutOrStdout() so that output follows cobra's writer.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) printer {
	return printer{w: w}
}

func (p printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p printer) success(format string, args ...any) {
	p.line(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func (p printer) failure(format string, args ...any) {
	p.line(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func (p printer) warn(format string, args ...any) {
	p.line(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (p printer) info(format string, args ...any) {
	p.line(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// detail prints an indented, muted line.
func (p printer) detail(format string, args ...any) {
	p.line("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (p printer) keyValue(key, value string) {
	p.line(styleKey.Render(key) + " " + StyleValue.Render(value))
}

func (p printer) nextStep(description, cmd string) {
	p.line(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func (p printer) newline() {
	fmt.Fprintln(p.w)
}

// artifact reports a written file with its format and size.
func (p printer) artifact(path, format string, size int) {
	p.line(styleIconSuccess.Render(iconSuccess) + " " + StyleValue.Render(path) +
		StyleDim.Render(separator+strings.ToUpper(format)+separator+formatBytes(size)))
}

// route describes one skip connection.
func (p printer) route(r diagram.Route) {
	p.line("  " + StyleDim.Render(iconRoute) + " " +
		StyleDim.Render(fmt.Sprintf("connection %d: block %d %s block %d at y=%s", r.Index, r.Start, iconArrow, r.End, fmtNum(r.Baseline))))
}

// =============================================================================
// Diagram Vocabulary
// =============================================================================

// diagramSummary counts what a built diagram contains.
type diagramSummary struct {
	Blocks      int
	Groups      int
	Routes      int
	MaxChannels int
}

func summarize(d *diagram.Diagram) diagramSummary {
	s := diagramSummary{
		Blocks: len(d.Blocks),
		Groups: len(d.Options.Channels),
		Routes: len(d.Routes),
	}
	for _, b := range d.Blocks {
		s.MaxChannels = max(s.MaxChannels, b.Channels)
	}
	return s
}

// summaryLine renders s on one line, e.g. "4 blocks in 3 groups · 1 connection · cached".
func summaryLine(s diagramSummary, cached bool) string {
	parts := []string{plural(s.Blocks, "block")}
	if s.Groups > 0 && s.Groups != s.Blocks {
		parts[0] += " in " + plural(s.Groups, "group")
	}
	if s.Routes > 0 {
		parts = append(parts, plural(s.Routes, "connection"))
	}
	if s.MaxChannels > 0 {
		parts = append(parts, fmt.Sprintf("max %d ch", s.MaxChannels))
	}

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	var b strings.Builder
	b.WriteString("  ")
	for _, part := range parts {
		b.WriteString(StyleDim.Render(part))
		b.WriteString(StyleDim.Render(separator))
	}
	b.WriteString(statusStyle.Render(status))
	return b.String()
}

// swatch renders the front, side and top tones of p as colored squares.
func swatch(p diagram.Palette) string {
	t := p.Tones()
	var b strings.Builder
	for _, hex := range []string{t.Front, t.Side, t.Top} {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(iconBlock))
	}
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// formatBytes renders n in B, KB or MB with one decimal.
func formatBytes(n int) string {
	switch {
	case n < 1<<10:
		return strconv.Itoa(n) + " B"
	case n < 1<<20:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	}
}
