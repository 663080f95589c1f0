package bipartite

import (
	"errors"
	"fmt"
)

// None marks a vertex without a partner. Valid vertices start at 1.
const None = 0

var (
	// ErrInvalidSize is returned by [NewGraph] when a side has a negative
	// vertex count.
	ErrInvalidSize = errors.New("vertex count must not be negative")

	// ErrInvalidVertex is returned by [Graph.AddEdge] when an endpoint lies
	// outside its side's range [1, count].
	ErrInvalidVertex = errors.New("vertex index out of range")
)

// Graph is a bipartite graph with leftCount left vertices and rightCount
// right vertices. Edges are only added, never removed.
//
// The zero value is an empty graph with no vertices.
type Graph struct {
	left, right int
	adj         [][]int // adj[u] lists right neighbors of left vertex u; adj[0] is unused
	edges       int
}

// NewGraph creates a graph with the given side sizes and no edges.
// Returns ErrInvalidSize if either count is negative.
func NewGraph(leftCount, rightCount int) (*Graph, error) {
	if leftCount < 0 || rightCount < 0 {
		return nil, fmt.Errorf("new graph %dx%d: %w", leftCount, rightCount, ErrInvalidSize)
	}
	return &Graph{
		left:  leftCount,
		right: rightCount,
		adj:   make([][]int, leftCount+1),
	}, nil
}

// AddEdge appends right vertex v to the adjacency list of left vertex u.
// Duplicate edges are kept. Returns ErrInvalidVertex if u is not in
// [1, LeftCount] or v is not in [1, RightCount]; the graph is unchanged in
// that case.
func (g *Graph) AddEdge(u, v int) error {
	if u < 1 || u > g.left {
		return fmt.Errorf("edge %d->%d: left %w (have %d)", u, v, ErrInvalidVertex, g.left)
	}
	if v < 1 || v > g.right {
		return fmt.Errorf("edge %d->%d: right %w (have %d)", u, v, ErrInvalidVertex, g.right)
	}
	g.adj[u] = append(g.adj[u], v)
	g.edges++
	return nil
}

// LeftCount returns the number of left vertices.
func (g *Graph) LeftCount() int { return g.left }

// RightCount returns the number of right vertices.
func (g *Graph) RightCount() int { return g.right }

// EdgeCount returns the number of edges added, counting duplicates.
func (g *Graph) EdgeCount() int { return g.edges }

// Neighbors returns the right neighbors of left vertex u in insertion order.
// Returns nil for out-of-range u. The slice must not be modified.
func (g *Graph) Neighbors(u int) []int {
	if u < 1 || u > g.left {
		return nil
	}
	return g.adj[u]
}
