package transform

import (
	"errors"
	"strconv"
	"testing"

	"github.com/matzehuels/pathcover/pkg/dag"
)

func TestTransitiveClosure(t *testing.T) {
	g := build(
		[]string{"a", "b", "c", "d", "e"},
		[][2]string{{"a", "c"}, {"b", "c"}, {"c", "d"}, {"c", "e"}},
	)

	added := TransitiveClosure(g)

	if added != 4 {
		t.Errorf("TransitiveClosure() added %d edges, want 4", added)
	}
	for _, e := range [][2]string{{"a", "d"}, {"a", "e"}, {"b", "d"}, {"b", "e"}} {
		if !g.HasEdge(e[0], e[1]) {
			t.Errorf("missing closure edge %s->%s", e[0], e[1])
		}
	}
	if g.HasEdge("d", "e") || g.HasEdge("a", "b") {
		t.Error("closure added an edge between incomparable nodes")
	}
}

func TestTransitiveClosureMarksEdges(t *testing.T) {
	g := build([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	TransitiveClosure(g)

	for _, e := range g.Edges() {
		_, marked := e.Meta["transitive"]
		wantMarked := e.From == "a" && e.To == "c"
		if marked != wantMarked {
			t.Errorf("edge %s->%s transitive mark = %v, want %v", e.From, e.To, marked, wantMarked)
		}
	}
}

func TestTransitiveClosureIdempotent(t *testing.T) {
	g := build([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	TransitiveClosure(g)
	if added := TransitiveClosure(g); added != 0 {
		t.Errorf("second TransitiveClosure() added %d edges, want 0", added)
	}
}

func TestTransitiveClosureSkipsSelfLoops(t *testing.T) {
	g := build([]string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}})
	TransitiveClosure(g)
	if g.HasEdge("a", "a") || g.HasEdge("b", "b") {
		t.Error("closure should not add self-loops")
	}
}

func TestBoundedClosureRejectsOverBudget(t *testing.T) {
	// A chain of 50 nodes has 50*49/2 = 1225 reachable pairs.
	g := dag.New(nil)
	for i := 1; i <= 50; i++ {
		_ = g.AddNode(dag.Node{ID: strconv.Itoa(i)})
	}
	for i := 1; i < 50; i++ {
		_ = g.AddEdge(dag.Edge{From: strconv.Itoa(i), To: strconv.Itoa(i + 1)})
	}

	if _, err := BoundedClosure(g, 1000); !errors.Is(err, ErrClosureTooLarge) {
		t.Fatalf("BoundedClosure(1000) error = %v, want ErrClosureTooLarge", err)
	}
	if g.EdgeCount() != 49 {
		t.Errorf("EdgeCount() = %d after rejected closure, want 49", g.EdgeCount())
	}

	added, err := BoundedClosure(g, 1225)
	if err != nil {
		t.Fatalf("BoundedClosure(1225): %v", err)
	}
	if added != 1225-49 {
		t.Errorf("BoundedClosure(1225) added %d edges, want %d", added, 1225-49)
	}
}

func TestTransitiveClosureEdgelessIsLinear(t *testing.T) {
	const n = 100000
	g := dag.New(nil)
	for i := 0; i < n; i++ {
		_ = g.AddNode(dag.Node{ID: strconv.Itoa(i)})
	}
	if added := TransitiveClosure(g); added != 0 {
		t.Errorf("TransitiveClosure() on edgeless graph added %d edges, want 0", added)
	}
}

func TestTransitiveClosureParallelEdges(t *testing.T) {
	g := build([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "b"}, {"b", "c"}})
	if added := TransitiveClosure(g); added != 1 {
		t.Errorf("TransitiveClosure() added %d edges, want 1", added)
	}
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}
}
