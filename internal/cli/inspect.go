package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// inspectCommand creates the inspect command, an interactive block browser.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		df      diagramFlags
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [channels...]",
		Short: "Browse computed blocks interactively",
		Long: `Browse computed blocks interactively.

Builds the diagram and opens a terminal browser listing every block. The
detail pane shows the selected block's geometry, anchor, labels, arrow and the
skip connections that touch it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := df.resolve(cmd, args)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			d, err := runner.Layout(cmd.Context(), pipeline.Options{Diagram: cfg.Options, Logger: c.Logger})
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(NewBlockListModel(d), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	df.register(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// =============================================================================
// BlockListModel - Interactive block browser
// =============================================================================

// BlockListModel is the bubbletea model for browsing diagram blocks.
type BlockListModel struct {
	Diagram *diagram.Diagram
	Cursor  int
	Height  int
	Offset  int
}

// NewBlockListModel creates a new block list model.
func NewBlockListModel(d *diagram.Diagram) BlockListModel {
	return BlockListModel{
		Diagram: d,
		Height:  15,
	}
}

func (m BlockListModel) Init() tea.Cmd {
	return nil
}

func (m BlockListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Diagram.Blocks)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Diagram.Blocks) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BlockListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Blocks"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Diagram.Blocks))

	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		blk := m.Diagram.Blocks[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%2d  %5d ch  %s", cursor, blk.Index, blk.Channels, blk.Palette)
		switch {
		case i == m.Cursor:
			list.WriteString(listSelectedStyle.Render(line))
		case blk.Palette == diagram.Gray:
			list.WriteString(listDimStyle.Render(line))
		default:
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	var detail string
	if len(m.Diagram.Blocks) > 0 {
		detail = detailBoxStyle.Render(m.detail(m.Diagram.Blocks[m.Cursor]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", detail))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Diagram.Blocks))))

	return b.String()
}

// detail describes one block for the side pane.
func (m BlockListModel) detail(blk diagram.Block) string {
	d := m.Diagram
	var lines []string
	add := func(k, v string) {
		lines = append(lines, listDimStyle.Render(fmt.Sprintf("%-10s", k))+" "+v)
	}

	add("channels", StyleHighlight.Render(fmt.Sprint(blk.Channels)))
	add("color", swatch(blk.Palette)+" "+blk.Palette.String())
	add("pool", fmtNum(blk.Pool))
	if blk.Size != nil {
		add("size", fmt.Sprint(*blk.Size))
	}
	add("origin", fmt.Sprintf("(%s, %s)", fmtNum(blk.X), fmtNum(blk.Y)))
	add("extent", fmt.Sprintf("%s × %s", fmtNum(blk.Width), fmtNum(blk.Height)))
	add("gaps", fmt.Sprintf("before %s, after %s", fmtNum(blk.GapBefore), fmtNum(blk.GapAfter)))

	a := blk.Anchor()
	add("anchor", fmt.Sprintf("x=%s y=%s", fmtNum(a.CenterX), fmtNum(a.TopY)))

	l := d.ChannelLabel(blk)
	add("label", fmt.Sprintf("%q at (%s, %s)", l.Text, fmtNum(l.At.X), fmtNum(l.At.Y)))
	if sl, ok := d.SizeLabel(blk); ok {
		add("size label", fmt.Sprintf("%q at (%s, %s)", sl.Text, fmtNum(sl.At.X), fmtNum(sl.At.Y)))
	}
	if ar, ok := d.Arrow(blk); ok {
		add("arrow", fmt.Sprintf("at (%s, %s) length %s", fmtNum(ar.Origin.X), fmtNum(ar.Origin.Y), fmtNum(ar.Length)))
	}

	for _, r := range d.Routes {
		switch blk.Index {
		case r.Start:
			add("route", fmt.Sprintf("→ block %d (baseline %s)", r.End, fmtNum(r.Baseline)))
		case r.End:
			add("route", fmt.Sprintf("← block %d (baseline %s)", r.Start, fmtNum(r.Baseline)))
		}
	}

	return strings.Join(lines, "\n")
}
