// Package cover computes minimum vertex-disjoint path covers of DAGs.
//
// # Overview
//
// A path cover of a directed acyclic graph is a set of directed paths such
// that every vertex lies on exactly one of them. The minimum cover is found
// by splitting every vertex into an outgoing (left) and incoming (right)
// copy, computing a maximum matching on the resulting bipartite graph with
// [bipartite.Matcher], and then reading the matched edges back as
// "u is followed by v" links. Each matched edge joins two paths, so the
// cover has exactly n - |matching| paths.
//
// # Vertices
//
// Vertices are the integers 1..n. [Compute] accepts the raw problem; for
// graphs with string identifiers, [FromDAG] numbers the nodes of a
// [dag.DAG] in insertion order and [Cover.NamedPaths] maps the result back.
//
// # Ordering
//
// Paths are emitted in ascending order of their first vertex. For identical
// input (including edge order) the cover is identical, so results can be
// compared byte for byte.
//
// # Preconditions
//
// The input must be acyclic. When the matching picks the edges of a cycle,
// the vertices on it are unreachable from any path start; [Reconstruct]
// detects this and fails with [ErrCyclicInput] rather than looping. Cycles
// whose edges go unmatched are not reported, so callers that need a strict
// check validate the graph first (see [dag.DAG.Validate]).
//
// [dag.DAG]: github.com/matzehuels/pathcover/pkg/dag
package cover
