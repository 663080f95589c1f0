package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/pathcover/pkg/dag"
	"github.com/matzehuels/pathcover/pkg/errors"
)

// MaxVertices bounds the vertex count an edge-list header may announce.
const MaxVertices = 1 << 22

// ReadEdgeList decodes an "n m" header followed by m "u v" pairs. Tokens
// after the last pair are ignored.
func ReadEdgeList(r io.Reader) (*dag.DAG, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("read: %w", err)
			}
			return 0, errors.New(errors.ErrCodeInvalidFormat, "unexpected end of input, want %s", what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidFormat, err, "%s: not an integer: %q", what, sc.Text())
		}
		return v, nil
	}

	n, err := next("vertex count")
	if err != nil {
		return nil, err
	}
	if err := errors.ValidateVertexCount(n, MaxVertices); err != nil {
		return nil, err
	}
	m, err := next("edge count")
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "edge count %d must not be negative", m)
	}

	g := dag.New(nil)
	for i := 1; i <= n; i++ {
		if err := g.AddNode(dag.Node{ID: strconv.Itoa(i)}); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}

	for i := 1; i <= m; i++ {
		what := fmt.Sprintf("edge %d of %d", i, m)
		u, err := next(what)
		if err != nil {
			return nil, err
		}
		v, err := next(what)
		if err != nil {
			return nil, err
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, errors.New(errors.ErrCodeInvalidVertex, "%s: %d -> %d outside [1, %d]", what, u, v, n)
		}
		if err := g.AddEdge(dag.Edge{From: strconv.Itoa(u), To: strconv.Itoa(v)}); err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
	}
	return g, nil
}

// WriteEdgeList encodes g as an edge list, numbering nodes in insertion
// order. Node IDs are not preserved.
func WriteEdgeList(g *dag.DAG, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", g.Index(e.From), g.Index(e.To))
	}
	return bw.Flush()
}
