// Package bipartite provides a bipartite graph model and a maximum
// cardinality matching engine based on the Hopcroft–Karp algorithm.
//
// # Overview
//
// A [Graph] has a left side and a right side, each addressed by 1-indexed
// integer vertices. Edges run from left to right and are stored per left
// vertex in insertion order. Parallel edges are kept as-is; the engine tries
// each copy independently, which is correct but may repeat work.
//
//	g, _ := bipartite.NewGraph(3, 3)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	m := bipartite.MaxMatching(g)
//	fmt.Println(m.Size) // 2
//
// # Algorithm
//
// The [Matcher] runs in phases. Each phase first layers the graph with a
// breadth-first pass from all free left vertices, then searches for
// layer-respecting augmenting paths with a depth-first pass started from
// every free left vertex in increasing index order. Dead-end vertices are
// pruned for the rest of the phase. The loop stops once a layering pass
// reaches no free right vertex, which happens within O(√V) phases, for a
// total running time of O(E·√V).
//
// The depth-first pass uses an explicit stack, so long alternating paths do
// not grow the goroutine stack. Neighbor iteration order is adjacency order,
// which makes the result deterministic for a fixed edge insertion order.
//
// # Ownership
//
// A Matcher exclusively owns its pairing and layer arrays. After [Matcher.Run]
// returns, [Matcher.Matching] hands out a read-only snapshot. Neither type is
// safe for concurrent mutation.
package bipartite
