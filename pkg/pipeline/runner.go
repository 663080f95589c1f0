package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathcover/pkg/cache"
	"github.com/matzehuels/pathcover/pkg/cover"
	"github.com/matzehuels/pathcover/pkg/dag"
	"github.com/matzehuels/pathcover/pkg/errors"
	pio "github.com/matzehuels/pathcover/pkg/io"
	"github.com/matzehuels/pathcover/pkg/observability"
	"github.com/matzehuels/pathcover/pkg/render"
)

// Runner executes pipeline stages with caching. Both the CLI and the HTTP
// server use it.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs every stage on the graph read from input.
func (r *Runner) Execute(ctx context.Context, input io.Reader, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := Parse(ctx, input, opts.format)
	if err != nil {
		return nil, err
	}
	parseTime := time.Since(start)
	r.Logger.Debug("parsed graph", "format", opts.format, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	result, err := r.ExecuteGraph(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.ParseTime = parseTime
	return result, nil
}

// ExecuteGraph runs the prepare, cover and render stages on an already
// parsed graph. g is not modified.
func (r *Runner) ExecuteGraph(ctx context.Context, g *dag.DAG, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := GraphHash(g)
	if err != nil {
		return nil, err
	}

	prepared, stats, err := Prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if stats.RemovedEdges > 0 {
		r.Logger.Warn("removed back edges to break cycles", "count", stats.RemovedEdges)
	}
	if stats.AddedEdges > 0 {
		r.Logger.Debug("added closure edges", "count", stats.AddedEdges)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	c, coverHit, err := r.CoverWithCacheInfo(ctx, hash, prepared, opts)
	if err != nil {
		return nil, err
	}
	stats.CoverTime = time.Since(start)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, hash, prepared, c, opts)
	if err != nil {
		return nil, err
	}
	stats.RenderTime = time.Since(start)

	return &Result{
		Graph:     prepared,
		GraphHash: hash,
		Cover:     c,
		Artifacts: artifacts,
		Stats:     stats,
		CacheInfo: CacheInfo{CoverHit: coverHit, RenderHit: renderHit},
	}, nil
}

// GraphHash returns the content hash of g's canonical JSON encoding.
func GraphHash(g *dag.DAG) (string, error) {
	var buf bytes.Buffer
	if err := pio.WriteJSON(g, &buf); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash graph")
	}
	return cache.Hash(buf.Bytes()), nil
}

// =============================================================================
// Cover
// =============================================================================

// CoverWithCacheInfo returns the path cover of the prepared graph g and
// whether it came from the cache. graphHash identifies the graph before
// preparation.
func (r *Runner) CoverWithCacheInfo(ctx context.Context, graphHash string, g *dag.DAG, opts Options) (*cover.Cover, bool, error) {
	key := r.Keyer.CoverKey(graphHash, opts.CoverKeyOpts())

	if !opts.Refresh {
		if c, ok := r.cachedCover(ctx, key); ok {
			r.Logger.Debug("cover cache hit", "key", key)
			return c, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnCoverStart(ctx, g.NodeCount(), g.EdgeCount())
	start := time.Now()

	c, err := cover.FromDAG(g).Solve()
	if err != nil {
		err = errors.FromCore(err)
		hooks.OnCoverComplete(ctx, observability.CoverStats{Vertices: g.NodeCount()}, time.Since(start), err)
		return nil, false, err
	}
	hooks.OnCoverComplete(ctx, observability.CoverStats{
		Vertices:     c.Vertices,
		MatchingSize: c.MatchingSize,
		Phases:       c.Phases,
		Paths:        c.Count(),
	}, time.Since(start), nil)
	r.Logger.Debug("computed cover", "paths", c.Count(), "matching", c.MatchingSize, "phases", c.Phases)

	if data, err := json.Marshal(c); err == nil {
		r.store(ctx, key, data, cache.TTLCover)
	}
	return c, false, nil
}

func (r *Runner) cachedCover(ctx context.Context, key string) (*cover.Cover, bool) {
	data, ok := r.lookup(ctx, key)
	if !ok {
		return nil, false
	}
	var c cover.Cover
	if err := json.Unmarshal(data, &c); err != nil {
		r.Logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		return nil, false
	}
	return &c, true
}

// =============================================================================
// Render
// =============================================================================

// RenderWithCacheInfo renders c in every requested format. The returned
// flag is true only if every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, graphHash string, g *dag.DAG, c *cover.Cover, opts Options) (map[string][]byte, bool, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.formats))
	allHit := true
	for _, format := range opts.formats {
		key := r.Keyer.RenderKey(graphHash, opts.CoverKeyOpts(), opts.RenderKeyOpts(string(format)))
		if !opts.Refresh {
			if data, ok := r.lookup(ctx, key); ok {
				artifacts[string(format)] = data
				continue
			}
		}
		allHit = false

		data, err := render.Render(ctx, format, g, c, render.Options{Detailed: opts.Detailed})
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		artifacts[string(format)] = data
		r.store(ctx, key, data, cache.TTLRender)
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, allHit, nil
}

// =============================================================================
// Cache helpers
// =============================================================================

// lookup reads key from the cache. Cache failures are logged and treated
// as misses.
func (r *Runner) lookup(ctx context.Context, key string) ([]byte, bool) {
	hooks := observability.Cache()
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		hooks.OnCacheMiss(ctx, key)
		return nil, false
	}
	hooks.OnCacheHit(ctx, key)
	return data, true
}

// store writes key to the cache. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}
