// Package pipeline provides the layout → render pipeline for netdraw.
//
// This package builds a [diagram.Diagram] from options and renders it in one
// or more output formats. The CLI and any embedding program share this entry
// point so defaults, validation and caching behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Flatten channel groups and compute block geometry and routes
//  2. Render: Emit the diagram as SVG, PNG, PDF or JSON, either as isometric
//     blocks or as a node-link graph
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Diagram: diagram.DefaultOptions(),
//	    Formats: []string{"svg"},
//	}
//	opts.Diagram.Channels = [][]int{{3}, {64, 64}, {128}}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netdraw/pkg/cache"
	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

// Visualization types.
const (
	VizTypeDiagram  = "diagram"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeDiagram

// DefaultPNGScale is the default PNG supersampling factor.
const DefaultPNGScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeDiagram:  true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Layout options
	Diagram diagram.Options `json:"diagram"`

	// Render options
	VizType  string   `json:"viz_type,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Fit      bool     `json:"fit,omitempty"`       // SVG gets viewBox/width/height from bounds
	PNGScale float64  `json:"png_scale,omitempty"` // diagram PNG supersampling
	Detailed bool     `json:"detailed,omitempty"`  // nodelink labels carry pool and size
	Refresh  bool     `json:"refresh,omitempty"`   // skip cache reads

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the computed geometry.
	Diagram *diagram.Diagram

	// OptionsHash identifies the layout options; it keys cached artifacts.
	OptionsHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Skipped lists requested formats the visualization type cannot produce.
	Skipped []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount int
	RouteCount int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the diagram came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: diagram, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and validates every stage.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetRenderDefaults()
	if err := o.Diagram.Validate(); err != nil {
		return err
	}
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidateNonNegative("png scale", o.PNGScale)
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// Supports reports whether the visualization type can produce format.
func (o *Options) Supports(format string) bool {
	return !(o.IsNodelink() && format == FormatJSON)
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:   format,
		VizType:  o.VizType,
		Fit:      o.Fit,
		Detailed: o.Detailed,
	}
	if format == FormatPNG {
		k.PNGScale = o.PNGScale
	}
	return k
}
