// Package pipeline runs the parse → prepare → cover → render pipeline shared
// by the CLI and the HTTP API.
//
// # Stages
//
//  1. Parse: decode an edge list, JSON or TOML graph ([Parse]).
//  2. Prepare: optionally break cycles and take the transitive closure,
//     reject remaining cycles, and assign layers for drawing ([Prepare]).
//  3. Cover: compute the minimum path cover ([Runner.CoverWithCacheInfo]).
//  4. Render: produce each requested output format
//     ([Runner.RenderWithCacheInfo]).
//
// Covers and rendered documents are cached by content: the key is the
// SHA-256 of the canonical JSON encoding of the parsed graph together with
// the options that affect the result.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, os.Stdin, pipeline.Options{
//	    InputFormat: "edgelist",
//	    Formats:     []string{"text"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Artifacts["text"])
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathcover/pkg/cache"
	"github.com/matzehuels/pathcover/pkg/cover"
	"github.com/matzehuels/pathcover/pkg/dag"
	pio "github.com/matzehuels/pathcover/pkg/io"
	"github.com/matzehuels/pathcover/pkg/render"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	InputFormat string `json:"input_format,omitempty"` // edgelist, json or toml; empty means edgelist

	// Prepare options
	Closure     bool `json:"closure,omitempty"`      // cover the transitive closure (minimum chain cover)
	BreakCycles bool `json:"break_cycles,omitempty"` // drop back edges instead of rejecting cycles

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	format    pio.Format
	formats   []render.Format
	validated bool
}

// ValidateAndSetDefaults checks formats and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	format, err := pio.ParseFormat(o.InputFormat)
	if err != nil {
		return err
	}
	if format == "" {
		format = pio.FormatEdgeList
	}
	formats, err := render.ParseFormats(o.Formats)
	if err != nil {
		return err
	}

	o.format = format
	o.InputFormat = string(format)
	o.formats = formats
	o.Formats = make([]string, len(formats))
	for i, f := range formats {
		o.Formats[i] = string(f)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// CoverKeyOpts returns cache key options for the cover stage.
func (o *Options) CoverKeyOpts() cache.CoverKeyOpts {
	return cache.CoverKeyOpts{Closure: o.Closure, BreakCycles: o.BreakCycles}
}

// RenderKeyOpts returns cache key options for one rendered format.
func (o *Options) RenderKeyOpts(format string) cache.RenderKeyOpts {
	return cache.RenderKeyOpts{Format: format, Detailed: o.Detailed}
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the prepared graph the cover was computed on.
	Graph *dag.DAG

	// GraphHash is the content hash of the parsed graph.
	GraphHash string

	// Cover is the minimum path cover of Graph.
	Cover *cover.Cover

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int // edges after preparation
	RemovedEdges int // back edges dropped by BreakCycles
	AddedEdges   int // edges added by the transitive closure
	ParseTime    time.Duration
	CoverTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	CoverHit  bool // Whether the cover came from cache
	RenderHit bool // Whether all artifacts came from cache
}
