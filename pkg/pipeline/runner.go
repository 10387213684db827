package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netdraw/pkg/cache"
	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
	"github.com/matzehuels/netdraw/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Layout
	layoutStart := time.Now()
	d, hash, layoutHit, err := r.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Diagram = d
	result.OptionsHash = hash
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.BlockCount = len(d.Blocks)
	result.Stats.RouteCount = len(d.Routes)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"blocks", len(d.Blocks),
		"routes", len(d.Routes),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, d, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	for _, f := range opts.Formats {
		if !opts.Supports(f) {
			result.Skipped = append(result.Skipped, f)
		}
	}
	if len(result.Skipped) > 0 {
		r.Logger.Warn("formats not available for visualization type",
			"type", opts.VizType,
			"skipped", result.Skipped)
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo builds the diagram, consulting the cache first.
// It returns the diagram, the hash of its options and whether it was a hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, opts Options) (*diagram.Diagram, string, bool, error) {
	hooks := observability.Pipeline()
	ch := observability.Cache()

	hash, err := cache.HashJSON(opts.Diagram)
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInternal, err, "hash options")
	}
	cacheKey := r.Keyer.DiagramKey(hash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var d diagram.Diagram
			if err := json.Unmarshal(data, &d); err == nil {
				ch.OnCacheHit(ctx, "diagram")
				return &d, hash, true, nil
			}
			// undecodable entry: fall through and rebuild
		}
		ch.OnCacheMiss(ctx, "diagram")
	}

	hooks.OnLayoutStart(ctx, opts.Diagram.BlockCount())
	start := time.Now()
	d, err := diagram.Build(opts.Diagram)
	hooks.OnLayoutComplete(ctx, opts.Diagram.BlockCount(), time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	if data, err := json.Marshal(d); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLDiagram); err == nil {
			ch.OnCacheSet(ctx, "diagram", len(data))
		}
	}

	return d, hash, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache info.
func (r *Runner) Layout(ctx context.Context, opts Options) (*diagram.Diagram, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	d, _, _, err := r.LayoutWithCacheInfo(ctx, opts)
	return d, err
}

// RenderWithCacheInfo generates artifacts with caching and returns whether
// every artifact was served from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *diagram.Diagram, optionsHash string, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := ValidateVizType(opts.VizType); err != nil {
		return nil, false, err
	}
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	ch := observability.Cache()

	artifacts := make(map[string][]byte)
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Supports(format) {
			continue
		}
		if !opts.Refresh {
			cacheKey := r.Keyer.ArtifactKey(optionsHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				ch.OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			ch.OnCacheMiss(ctx, "artifact")
		}
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.VizType, missing)
	start := time.Now()
	rendered, err := Render(ctx, d, renderOpts)
	hooks.OnRenderComplete(ctx, opts.VizType, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		cacheKey := r.Keyer.ArtifactKey(optionsHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			ch.OnCacheSet(ctx, "artifact", len(data))
		} else {
			r.Logger.Debug("cache write failed", "format", format, "err", err)
		}
	}

	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
