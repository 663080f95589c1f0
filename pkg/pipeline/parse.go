package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/matzehuels/pathcover/pkg/dag"
	pio "github.com/matzehuels/pathcover/pkg/io"
	"github.com/matzehuels/pathcover/pkg/observability"
)

// Parse decodes a graph from r.
func Parse(ctx context.Context, r io.Reader, format pio.Format) (*dag.DAG, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, string(format))
	start := time.Now()

	g, err := pio.Read(r, format)
	if err != nil {
		hooks.OnParseComplete(ctx, string(format), 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, string(format), g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
	return g, nil
}
