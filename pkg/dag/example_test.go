package dag_test

import (
	"fmt"

	"github.com/matzehuels/pathcover/pkg/dag"
)

func ExampleDAG_basic() {
	// A small build pipeline: fetch → build → test
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "fetch"})
	_ = g.AddNode(dag.Node{ID: "build"})
	_ = g.AddNode(dag.Node{ID: "test"})
	_ = g.AddEdge(dag.Edge{From: "fetch", To: "build"})
	_ = g.AddEdge(dag.Edge{From: "build", To: "test"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Vertex of test:", g.Index("test"))
	// Output:
	// Nodes: 3
	// Edges: 2
	// Vertex of test: 3
}

func ExampleDAG_traversal() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "build"})
	_ = g.AddNode(dag.Node{ID: "lint"})
	_ = g.AddNode(dag.Node{ID: "unit"})
	_ = g.AddEdge(dag.Edge{From: "build", To: "lint"})
	_ = g.AddEdge(dag.Edge{From: "build", To: "unit"})

	fmt.Println("Children of build:", g.Children("build"))
	fmt.Println("Parents of lint:", g.Parents("lint"))
	fmt.Println("Sinks:", dag.NodeIDs(g.Sinks()))
	// Output:
	// Children of build: [lint unit]
	// Parents of lint: [build]
	// Sinks: [lint unit]
}

func ExampleDAG_FindCycle() {
	g := dag.New(nil)
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(dag.Node{ID: id})
	}
	_ = g.AddEdge(dag.Edge{From: "a", To: "b"})
	_ = g.AddEdge(dag.Edge{From: "b", To: "c"})
	_ = g.AddEdge(dag.Edge{From: "c", To: "b"})

	fmt.Println(g.FindCycle())
	fmt.Println(g.Validate())
	// Output:
	// [b c b]
	// graph contains a cycle
}
