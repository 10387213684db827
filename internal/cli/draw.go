package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netdraw/pkg/io"
	"github.com/matzehuels/netdraw/pkg/pipeline"
)

// drawOpts holds the output flags of the draw command.
type drawOpts struct {
	output   string
	formats  string
	vizType  string
	fit      bool
	pngScale float64
	detailed bool
	noCache  bool
	refresh  bool
}

// drawCommand creates the draw command, the main entry point for rendering.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		df   diagramFlags
		opts drawOpts
	)

	cmd := &cobra.Command{
		Use:   "draw [channels...]",
		Short: "Render a layered network diagram",
		Long: `Render a layered network diagram.

Each positional argument is a group of layers: a single channel count such as
"3" or several joined by dashes such as "16-16". Layers inside a group are drawn
touching; groups are separated by --spacing.

Examples:
  netdraw draw 1 8 32 64 --pool 2,2,1,1
  netdraw draw 3 64-64 128-128 256 --sizes 224,112,56,28 --connection 1,4 --color green
  netdraw draw -c net.toml -f svg,png,pdf -o out/net

Rendered artifacts are cached locally; use --refresh to re-render.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := df.resolve(cmd, args)
			if err != nil {
				return err
			}
			if err := applyDrawOverrides(cmd, &cfg, opts); err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runDraw(ctx, newPrinter(cmd.OutOrStdout()), cfg, opts)
		},
	}

	df.register(cmd)

	cmd.Flags().StringVarP(&opts.output, "filename", "o", "output.svg", "output file; with several formats the extension is replaced per format")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", pipeline.DefaultVizType, "visualization type: diagram (default), nodelink")
	cmd.Flags().BoolVar(&opts.fit, "fit", false, "add viewBox and size to the SVG root")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", pipeline.DefaultPNGScale, "PNG supersampling factor")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show pool, size and color in nodelink labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")

	return cmd
}

// applyDrawOverrides lets config-file output settings stand unless the
// corresponding flag was given.
func applyDrawOverrides(cmd *cobra.Command, cfg *io.Config, opts drawOpts) error {
	changed := cmd.Flags().Changed
	if changed("filename") || cfg.Output == "" {
		cfg.Output = opts.output
	}
	if changed("type") || cfg.VizType == "" {
		cfg.VizType = opts.vizType
	}
	if changed("format") || len(cfg.Formats) == 0 {
		formats, err := parseFormats(opts.formats)
		if err != nil {
			return err
		}
		cfg.Formats = formats
	}
	if err := pipeline.ValidateVizType(cfg.VizType); err != nil {
		return err
	}
	return pipeline.ValidateFormats(cfg.Formats)
}

// runDraw executes the pipeline and writes one file per artifact.
func (c *CLI) runDraw(ctx context.Context, out printer, cfg io.Config, opts drawOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts := pipeline.Options{
		Diagram:  cfg.Options,
		VizType:  cfg.VizType,
		Formats:  cfg.Formats,
		Fit:      opts.fit,
		PNGScale: opts.pngScale,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
		Logger:   logger,
	}

	prog := newProgress(logger, "draw")
	spinner := newSpinnerWithContext(ctx, "Rendering "+plural(cfg.BlockCount(), "block")+"...")
	spinner.Start()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	written, err := writeArtifacts(result, cfg.Output, cfg.Formats)
	if err != nil {
		return err
	}
	logDiagram(logger, result.Diagram)
	prog.done("Rendered",
		"blocks", result.Stats.BlockCount,
		"connections", result.Stats.RouteCount,
		"formats", strings.Join(cfg.Formats, ","))

	for _, a := range written {
		out.artifact(a.path, a.format, a.size)
	}
	for _, f := range result.Skipped {
		out.warn("Skipped %s: not available for %s output", f, cfg.VizType)
	}
	out.line(summaryLine(summarize(result.Diagram), result.CacheInfo.RenderHit))

	return nil
}

// writtenArtifact records one file produced by draw.
type writtenArtifact struct {
	path   string
	format string
	size   int
}

// writeArtifacts writes every artifact in format order.
func writeArtifacts(result *pipeline.Result, output string, formats []string) ([]writtenArtifact, error) {
	multi := len(formats) > 1
	var written []writtenArtifact
	for _, f := range formats {
		data, ok := result.Artifacts[f]
		if !ok {
			continue
		}
		path := io.OutputPath(output, f, multi)
		if err := io.WriteArtifact(path, data); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, writtenArtifact{path: path, format: f, size: len(data)})
	}
	return written, nil
}
