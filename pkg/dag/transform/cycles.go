package transform

import "github.com/matzehuels/pathcover/pkg/dag"

// BreakCycles removes every back edge found by a depth-first search and
// returns the number of removed edges. The search starts from sources in
// insertion order, then from any node not yet visited, so the result is
// deterministic for a given input order. Self-loops count as back edges.
func BreakCycles(g *dag.DAG) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var backEdges [][2]string

	type frame struct {
		id string
		i  int
	}
	var stack []frame

	visit := func(root string) {
		color[root] = gray
		stack = append(stack[:0], frame{id: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := g.Children(top.id)
			if top.i >= len(children) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := children[top.i]
			top.i++
			switch color[child] {
			case white:
				color[child] = gray
				stack = append(stack, frame{id: child})
			case gray:
				backEdges = append(backEdges, [2]string{top.id, child})
			}
		}
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			visit(n.ID)
		}
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			visit(n.ID)
		}
	}

	removed := 0
	for _, e := range backEdges {
		if g.HasEdge(e[0], e[1]) {
			removed += countEdges(g, e[0], e[1])
			g.RemoveEdge(e[0], e[1])
		}
	}
	return removed
}

func countEdges(g *dag.DAG, from, to string) int {
	n := 0
	for _, c := range g.Children(from) {
		if c == to {
			n++
		}
	}
	return n
}
