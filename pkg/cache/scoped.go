package cache

// ScopedKeyer wraps a Keyer with a fixed prefix.
// The CLI scopes keys by build version so that artifacts rendered by an older
// binary are never served after an upgrade.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v0.3.1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DiagramKey generates a prefixed key for diagram geometry.
func (k *ScopedKeyer) DiagramKey(optionsHash string) string {
	return k.prefix + k.inner.DiagramKey(optionsHash)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(optionsHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(optionsHash, opts)
}
