package cache

import "time"

// CoverKeyOpts holds the options that change a computed cover.
type CoverKeyOpts struct {
	Closure     bool `json:"closure"`
	BreakCycles bool `json:"break_cycles"`
}

// RenderKeyOpts holds the options that change a rendered document.
type RenderKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// Keyer derives cache keys. graphHash is the [Hash] of the canonical graph
// encoding.
type Keyer interface {
	CoverKey(graphHash string, opts CoverKeyOpts) string
	RenderKey(graphHash string, cover CoverKeyOpts, opts RenderKeyOpts) string
}

// DefaultKeyer produces keys of the form "cover:<sha256>" and
// "render:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// CoverKey returns the key of the cover for a graph and options.
func (DefaultKeyer) CoverKey(graphHash string, opts CoverKeyOpts) string {
	return hashKey("cover", graphHash, opts)
}

// RenderKey returns the key of one rendered document.
func (DefaultKeyer) RenderKey(graphHash string, cover CoverKeyOpts, opts RenderKeyOpts) string {
	return hashKey("render", graphHash, cover, opts)
}

// Entry lifetimes. Covers are pure functions of their key, so they only
// expire to bound disk and memory use.
const (
	TTLCover  = 7 * 24 * time.Hour
	TTLRender = 24 * time.Hour
)
