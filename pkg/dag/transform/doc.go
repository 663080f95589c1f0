// Package transform provides graph transformations that prepare a DAG for
// path covering and rendering.
//
// # Cycle Breaking
//
// Path covers are only defined on acyclic graphs. [BreakCycles] removes the
// back edges found by a depth-first search started from sources in insertion
// order, which turns an arbitrary directed graph into a DAG. The number of
// removed edges is returned so callers can log or reject the input.
//
// # Transitive Closure
//
// A vertex-disjoint path cover must follow existing edges. Covering the
// [TransitiveClosure] of a DAG instead lets paths "jump over" vertices that
// already belong to another path, which yields a minimum chain cover of the
// underlying partial order (Dilworth's theorem):
//
//	Before: a→c, b→c, c→d, c→e         (3 paths: [a c d], [b], [e])
//	After:  + a→d, a→e, b→d, b→e       (2 chains: [a c e], [b d])
//
// The closure of a long chain is quadratic in its length. [BoundedClosure]
// takes a budget of reachable pairs and fails with [ErrClosureTooLarge]
// before touching the graph when the budget is exceeded.
//
// # Layer Assignment
//
// [AssignLayers] assigns each node to a row using the longest path from any
// source. Renderers group nodes of the same row so covers read top to bottom.
//
// # Performance
//
//   - BreakCycles: O(V + E)
//   - AssignLayers: O(V + E)
//   - TransitiveClosure: O(V·(V + E)) time, O(V + E + added edges) space
package transform
