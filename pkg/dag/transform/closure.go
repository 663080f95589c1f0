package transform

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/pathcover/pkg/dag"
)

// ErrClosureTooLarge is returned by [BoundedClosure] when the graph has more
// reachable pairs than the caller allows.
var ErrClosureTooLarge = errors.New("transitive closure too large")

// TransitiveClosure adds an edge u→w for every pair where w is reachable
// from u but no edge u→w exists yet, and returns the number of edges added.
//
// Added edges are appended in node insertion order of u, then w, so the
// resulting edge order is deterministic. Existing edges and their metadata
// are untouched. Added edges carry Meta["transitive"] = true.
//
// On a graph with cycles every node of a cycle reaches itself; such
// self-loops are not added.
func TransitiveClosure(g *dag.DAG) int {
	added, _ := BoundedClosure(g, 0)
	return added
}

// BoundedClosure behaves like [TransitiveClosure] but gives up with
// ErrClosureTooLarge, leaving g unchanged, once more than maxPairs pairs
// (u, w) with u ≠ w and w reachable from u have been found. Direct edges
// count toward the budget. maxPairs <= 0 means no limit.
func BoundedClosure(g *dag.DAG, maxPairs int) (int, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0, nil
	}

	pos := dag.PosMap(dag.NodeIDs(nodes))
	adjacency := make([][]int, len(nodes))
	for _, e := range g.Edges() {
		adjacency[pos[e.From]] = append(adjacency[pos[e.From]], pos[e.To])
	}
	for i, adj := range adjacency {
		slices.Sort(adj)
		adjacency[i] = slices.Compact(adj)
	}

	// seen[j] == source+1 marks j as reached from source in the current walk.
	seen := make([]int, len(nodes))
	var stack, reached []int
	var missing [][2]int
	total := 0

	for source := range nodes {
		mark := source + 1
		seen[source] = mark
		stack = append(stack[:0], source)
		reached = reached[:0]
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range adjacency[current] {
				if seen[next] == mark {
					continue
				}
				seen[next] = mark
				reached = append(reached, next)
				stack = append(stack, next)
			}
			if maxPairs > 0 && total+len(reached) > maxPairs {
				return 0, fmt.Errorf("%w: more than %d reachable pairs", ErrClosureTooLarge, maxPairs)
			}
		}
		total += len(reached)

		slices.Sort(reached)
		for _, target := range reached {
			if _, direct := slices.BinarySearch(adjacency[source], target); !direct {
				missing = append(missing, [2]int{source, target})
			}
		}
	}

	for _, p := range missing {
		_ = g.AddEdge(dag.Edge{From: nodes[p[0]].ID, To: nodes[p[1]].ID, Meta: dag.Metadata{"transitive": true}})
	}
	return len(missing), nil
}
