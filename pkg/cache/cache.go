// Package cache provides the artifact cache used by the rendering pipeline.
//
// Rendering a diagram is deterministic, so identical options always produce
// identical bytes. The cache stores rendered artifacts keyed by a hash of the
// options, the output format and the build version, which lets repeated CLI
// invocations skip rasterisation and PDF conversion.
//
// # Backends
//
//   - [FileCache]: entries stored as JSON files under a directory
//   - [NullCache]: never stores anything (caching disabled)
//
// # Keys
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes key components with
// SHA-256; [ScopedKeyer] prefixes every key, for example with the build
// version, so upgrades never read stale artifacts.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid.
const TTLArtifact = 7 * 24 * time.Hour

// TTLDiagram is how long computed diagram geometry stays valid.
const TTLDiagram = 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired or corrupt entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys for pipeline stages.
type Keyer interface {
	// DiagramKey returns the key for diagram geometry built from the
	// options with the given hash.
	DiagramKey(optionsHash string) string

	// ArtifactKey returns the key for one rendered output.
	ArtifactKey(optionsHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the render settings that affect artifact bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	VizType  string  `json:"viz_type"`
	Fit      bool    `json:"fit,omitempty"`
	PNGScale float64 `json:"png_scale,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// DefaultKeyer hashes key components into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DiagramKey returns "diagram:<hash>".
func (DefaultKeyer) DiagramKey(optionsHash string) string {
	return hashKey("diagram", optionsHash)
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(optionsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", optionsHash, opts)
}
