package transform_test

import (
	"fmt"

	"github.com/matzehuels/pathcover/pkg/dag"
	"github.com/matzehuels/pathcover/pkg/dag/transform"
)

func ExampleBreakCycles() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "lint"})
	_ = g.AddNode(dag.Node{ID: "test"})
	_ = g.AddEdge(dag.Edge{From: "lint", To: "test"})
	_ = g.AddEdge(dag.Edge{From: "test", To: "lint"})

	fmt.Println("Removed:", transform.BreakCycles(g))
	fmt.Println("Valid:", g.Validate() == nil)
	// Output:
	// Removed: 1
	// Valid: true
}

func ExampleTransitiveClosure() {
	g := dag.New(nil)
	for _, id := range []string{"fetch", "build", "ship"} {
		_ = g.AddNode(dag.Node{ID: id})
	}
	_ = g.AddEdge(dag.Edge{From: "fetch", To: "build"})
	_ = g.AddEdge(dag.Edge{From: "build", To: "ship"})

	fmt.Println("Added:", transform.TransitiveClosure(g))
	fmt.Println("fetch->ship:", g.HasEdge("fetch", "ship"))
	// Output:
	// Added: 1
	// fetch->ship: true
}
