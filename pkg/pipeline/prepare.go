package pipeline

import (
	stderrors "errors"
	"strings"

	"github.com/matzehuels/pathcover/pkg/dag"
	"github.com/matzehuels/pathcover/pkg/dag/transform"
	"github.com/matzehuels/pathcover/pkg/errors"
)

// Limits on the closure option. The closure of a chain of n vertices has
// n(n-1)/2 edges, so both the graph and the reachable pairs are capped.
const (
	MaxClosureVertices = 1 << 15
	MaxClosurePairs    = 1 << 19
)

// Prepare returns a copy of g ready for covering. With BreakCycles, back
// edges are removed; otherwise a cycle fails with CYCLIC_INPUT naming it.
// With Closure, reachability edges are added. Rows are assigned on the
// result for layered drawing. g is not modified. A closure over more than
// MaxClosureVertices vertices or MaxClosurePairs reachable pairs fails with
// INVALID_INPUT.
func Prepare(g *dag.DAG, opts Options) (*dag.DAG, Stats, error) {
	work := g.Clone()
	var stats Stats

	if opts.BreakCycles {
		stats.RemovedEdges = transform.BreakCycles(work)
	} else if cycle := work.FindCycle(); cycle != nil {
		return nil, stats, errors.Wrap(errors.ErrCodeCyclicInput, dag.ErrGraphHasCycle,
			"cycle %s (enable break-cycles to drop back edges)", strings.Join(cycle, " -> "))
	}

	if opts.Closure {
		if n := work.NodeCount(); n > MaxClosureVertices {
			return nil, stats, errors.New(errors.ErrCodeInvalidInput,
				"closure supports at most %d vertices, graph has %d", MaxClosureVertices, n)
		}
		added, err := transform.BoundedClosure(work, MaxClosurePairs)
		if stderrors.Is(err, transform.ErrClosureTooLarge) {
			return nil, stats, errors.Wrap(errors.ErrCodeInvalidInput, err,
				"closure would exceed %d edges", MaxClosurePairs)
		}
		if err != nil {
			return nil, stats, err
		}
		stats.AddedEdges = added
	}
	transform.AssignLayers(work)

	stats.NodeCount = work.NodeCount()
	stats.EdgeCount = work.EdgeCount()
	return work, stats, nil
}
