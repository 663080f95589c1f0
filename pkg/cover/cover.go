package cover

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/matzehuels/pathcover/pkg/bipartite"
)

var (
	// ErrCyclicInput is returned when the successor links derived from the
	// matching do not form simple paths covering every vertex, which only
	// happens when the input graph contains a directed cycle.
	ErrCyclicInput = errors.New("input graph contains a cycle")

	// ErrInvalidCover is returned by [Cover.Verify] when the paths are not a
	// valid cover of the input.
	ErrInvalidCover = errors.New("invalid path cover")
)

// Edge is a directed edge From → To between 1-indexed vertices.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Cover is a minimum vertex-disjoint path cover.
type Cover struct {
	Vertices     int      `json:"vertices"`
	MatchingSize int      `json:"matching_size"`
	Phases       int      `json:"phases"`
	Paths        [][]int  `json:"paths"`
	Labels       []string `json:"labels,omitempty"` // Labels[i-1] names vertex i
}

// Count returns the number of paths.
func (c *Cover) Count() int { return len(c.Paths) }

// Label returns the display name of vertex v: its label if one is set,
// otherwise the decimal vertex number.
func (c *Cover) Label(v int) string {
	if v >= 1 && v <= len(c.Labels) && c.Labels[v-1] != "" {
		return c.Labels[v-1]
	}
	return strconv.Itoa(v)
}

// NamedPaths returns the paths with every vertex replaced by its label.
func (c *Cover) NamedPaths() [][]string {
	named := make([][]string, len(c.Paths))
	for i, path := range c.Paths {
		named[i] = make([]string, len(path))
		for j, v := range path {
			named[i][j] = c.Label(v)
		}
	}
	return named
}

// Verify checks that the paths cover every vertex exactly once, that every
// consecutive pair is one of the given edges, and that the path count equals
// Vertices - MatchingSize. Errors wrap ErrInvalidCover.
func (c *Cover) Verify(edges []Edge) error {
	adj := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		adj[e] = true
	}

	seen := make([]bool, c.Vertices+1)
	covered := 0
	for i, path := range c.Paths {
		if len(path) == 0 {
			return fmt.Errorf("%w: path %d is empty", ErrInvalidCover, i)
		}
		for j, v := range path {
			if v < 1 || v > c.Vertices {
				return fmt.Errorf("%w: vertex %d out of range", ErrInvalidCover, v)
			}
			if seen[v] {
				return fmt.Errorf("%w: vertex %d appears twice", ErrInvalidCover, v)
			}
			seen[v] = true
			covered++
			if j > 0 && !adj[Edge{From: path[j-1], To: v}] {
				return fmt.Errorf("%w: %d -> %d is not an edge", ErrInvalidCover, path[j-1], v)
			}
		}
	}
	if covered != c.Vertices {
		return fmt.Errorf("%w: %d of %d vertices covered", ErrInvalidCover, covered, c.Vertices)
	}
	if want := c.Vertices - c.MatchingSize; len(c.Paths) != want {
		return fmt.Errorf("%w: %d paths, want %d", ErrInvalidCover, len(c.Paths), want)
	}
	return nil
}

// Split builds the bipartite graph of the problem: edge u → v becomes
// left u → right v. Edges keep their order and duplicates are kept.
// Returns an error wrapping bipartite.ErrInvalidSize for n < 0 or
// bipartite.ErrInvalidVertex for an endpoint outside [1, n].
func Split(n int, edges []Edge) (*bipartite.Graph, error) {
	g, err := bipartite.NewGraph(n, n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Reconstruct turns a maximum matching on the split graph of an n-vertex DAG
// into paths. next[u] is the right partner of u; vertices that are nobody's
// successor start a path, taken in ascending order.
//
// Returns ErrCyclicInput if a walk revisits a vertex or some vertex is never
// reached.
func Reconstruct(n int, m *bipartite.Matching) (*Cover, error) {
	if m.LeftCount() != n || m.RightCount() != n {
		return nil, fmt.Errorf("reconstruct: matching is %dx%d, want %dx%d: %w",
			m.LeftCount(), m.RightCount(), n, n, bipartite.ErrInvalidSize)
	}

	next := m.PairLeft()
	hasPred := make([]bool, n+1)
	for u := 1; u <= n; u++ {
		if next[u] != bipartite.None {
			hasPred[next[u]] = true
		}
	}

	visited := make([]bool, n+1)
	paths := make([][]int, 0, n-m.Size)
	reached := 0
	for start := 1; start <= n; start++ {
		if hasPred[start] {
			continue
		}
		var path []int
		for v := start; v != bipartite.None; v = next[v] {
			if visited[v] {
				return nil, fmt.Errorf("reconstruct: vertex %d visited twice: %w", v, ErrCyclicInput)
			}
			visited[v] = true
			path = append(path, v)
		}
		reached += len(path)
		paths = append(paths, path)
	}

	if reached != n {
		for v := 1; v <= n; v++ {
			if !visited[v] {
				return nil, fmt.Errorf("reconstruct: vertex %d unreachable from any path start: %w", v, ErrCyclicInput)
			}
		}
	}
	if len(paths) != n-m.Size {
		return nil, fmt.Errorf("reconstruct: %d paths for %d vertices and matching %d: %w",
			len(paths), n, m.Size, ErrCyclicInput)
	}

	return &Cover{
		Vertices:     n,
		MatchingSize: m.Size,
		Phases:       m.Phases,
		Paths:        paths,
	}, nil
}

// Compute returns a minimum path cover of the DAG with vertices 1..n and the
// given edges. An empty graph (n = 0) yields an empty cover.
func Compute(n int, edges []Edge) (*Cover, error) {
	g, err := Split(n, edges)
	if err != nil {
		return nil, err
	}
	return Reconstruct(n, bipartite.MaxMatching(g))
}
