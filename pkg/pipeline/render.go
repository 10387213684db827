package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
	"github.com/matzehuels/netdraw/pkg/render/nodelink"
	"github.com/matzehuels/netdraw/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
// Formats the visualization type cannot produce are left out of the result.
func Render(ctx context.Context, d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	if opts.IsNodelink() {
		return renderNodelink(ctx, d, opts)
	}
	return renderDiagram(d, opts)
}

// renderDiagram generates isometric block outputs.
func renderDiagram(d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	var svgOpts []sink.SVGOption
	if opts.Fit {
		svgOpts = append(svgOpts, sink.WithFrame())
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(d, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(d, sink.WithScale(opts.PNGScale))
		case FormatPDF:
			data, err = sink.RenderPDF(d)
		case FormatJSON:
			data, err = sink.RenderJSON(d)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates node-link outputs from a DOT graph built on demand.
func renderNodelink(ctx context.Context, d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.Detailed})

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot)
		case FormatJSON:
			continue
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
		artifacts[format] = data
	}

	return artifacts, nil
}
