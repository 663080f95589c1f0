package cache

// ScopedKeyer wraps a Keyer with a prefix, giving callers that share one
// backend separate namespaces:
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
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

// CoverKey generates a prefixed cover key.
func (k *ScopedKeyer) CoverKey(graphHash string, opts CoverKeyOpts) string {
	return k.prefix + k.inner.CoverKey(graphHash, opts)
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(graphHash string, cover CoverKeyOpts, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(graphHash, cover, opts)
}
