package cover

import (
	"github.com/matzehuels/pathcover/pkg/dag"
)

// Problem is a numbered path cover instance. Labels[i-1] is the name of
// vertex i and may be nil for purely numeric problems.
type Problem struct {
	Vertices int
	Edges    []Edge
	Labels   []string
}

// FromDAG numbers the nodes of d in insertion order (first node = vertex 1)
// and translates every edge, parallel edges included.
func FromDAG(d *dag.DAG) *Problem {
	p := &Problem{
		Vertices: d.NodeCount(),
		Labels:   d.NodeIDs(),
	}
	p.Edges = make([]Edge, 0, d.EdgeCount())
	for _, e := range d.Edges() {
		p.Edges = append(p.Edges, Edge{From: d.Index(e.From), To: d.Index(e.To)})
	}
	return p
}

// Solve computes the cover and attaches the problem's labels to it.
func (p *Problem) Solve() (*Cover, error) {
	c, err := Compute(p.Vertices, p.Edges)
	if err != nil {
		return nil, err
	}
	c.Labels = p.Labels
	return c, nil
}
