package cli

import (
	"context"
	"fmt"
	stdio "io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/io"
	"github.com/matzehuels/netdraw/pkg/pipeline"
	"github.com/matzehuels/netdraw/pkg/render/sink"
)

// layoutCommand creates the layout command for inspecting computed geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		df      diagramFlags
		asJSON  bool
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [channels...]",
		Short: "Print computed block geometry",
		Long: `Print computed block geometry.

The layout command builds the diagram without rendering it and prints one row
per block: flattened index, channels, pooling, size, position, extent, gaps and
color. Skip connections are listed below the table.

With --json the same data is printed as JSON (identical to 'draw -f json').
With -o the JSON is written to a file instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := df.resolve(cmd, args)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runLayout(ctx, cmd.OutOrStdout(), cfg, args, asJSON, output, noCache)
		},
	}

	df.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout builds the diagram and prints or writes its geometry.
func (c *CLI) runLayout(ctx context.Context, w stdio.Writer, cfg io.Config, args []string, asJSON bool, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	prog := newProgress(logger, "layout")
	d, err := runner.Layout(ctx, pipeline.Options{Diagram: cfg.Options, Logger: logger})
	if err != nil {
		return err
	}
	logDiagram(logger, d)
	prog.done("Laid out", "blocks", len(d.Blocks), "connections", len(d.Routes))

	out := newPrinter(w)
	if asJSON || output != "" {
		data, err := sink.RenderJSON(d)
		if err != nil {
			return err
		}
		if output == "" {
			_, err = w.Write(append(data, '\n'))
			return err
		}
		if err := io.WriteArtifact(output, data); err != nil {
			return err
		}
		out.artifact(output, pipeline.FormatJSON, len(data))
		return nil
	}

	out.line(blockTable(d))
	if len(d.Routes) > 0 {
		out.newline()
		for _, r := range d.Routes {
			out.route(r)
		}
	}
	out.newline()
	b := d.Bounds()
	out.keyValue("bounds", fmt.Sprintf("%s×%s at (%s, %s)", fmtNum(b.Width()), fmtNum(b.Height()), fmtNum(b.MinX), fmtNum(b.MinY)))
	out.line(summaryLine(summarize(d), false))
	if len(args) > 0 {
		out.nextStep("Render", appName+" draw "+strings.Join(args, " "))
	}
	return nil
}

// blockTable renders one row per block.
func blockTable(d *diagram.Diagram) string {
	rows := make([][]string, len(d.Blocks))
	for i, b := range d.Blocks {
		size := "—"
		if b.Size != nil {
			size = strconv.Itoa(*b.Size)
		}
		rows[i] = []string{
			strconv.Itoa(b.Index),
			strconv.Itoa(b.Channels),
			fmtNum(b.Pool),
			size,
			fmtNum(b.X),
			fmtNum(b.Y),
			fmtNum(b.Width),
			fmtNum(b.Height),
			fmtNum(b.GapAfter),
			swatch(b.Palette) + " " + b.Palette.String(),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Channels", "Pool", "Size", "X", "Y", "Width", "Height", "Gap", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			s := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0:
				return s.Foreground(colorDim)
			case 1:
				return s.Inherit(StyleNumber)
			case 9:
				return s.Foreground(colorGray)
			}
			return s
		})
	return t.Render()
}

// fmtNum formats a coordinate in its shortest form.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
