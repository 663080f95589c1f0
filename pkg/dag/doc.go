// Package dag provides a directed acyclic graph with string node IDs, used as
// the named input model for path covers.
//
// # Overview
//
// Real inputs name their vertices ("build", "test", "deploy") rather than
// numbering them. A [DAG] stores such nodes in insertion order and hands out
// stable 1-based positions via [DAG.Index], which the cover package uses as
// vertex numbers. The first node added is vertex 1, so path-start order and
// output order follow the order in which the input declared its nodes.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]. Nodes must have unique IDs, and edges can only connect
// existing nodes:
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "fetch"})
//	g.AddNode(dag.Node{ID: "build"})
//	g.AddEdge(dag.Edge{From: "fetch", To: "build"})
//
// Query the graph structure with [DAG.Children], [DAG.Parents], [DAG.Sources]
// and [DAG.Sinks]. Use [DAG.Validate] to verify acyclicity before computing a
// cover; [DAG.FindCycle] returns an offending cycle for error reporting.
//
// # Parallel Edges
//
// AddEdge keeps duplicate edges. They are passed through to the matching
// engine unchanged; see package bipartite.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
//
// # Related Packages
//
// The [transform] subpackage provides graph transformations:
//   - Cycle breaking (remove DFS back edges)
//   - Layer assignment (longest-path rows for rendering)
//   - Transitive closure (turns path covers into chain covers)
//
// [transform]: github.com/matzehuels/pathcover/pkg/dag/transform
package dag
