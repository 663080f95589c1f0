// Package pkg holds the pathcover libraries.
//
// # Overview
//
// pathcover splits a directed acyclic graph into the fewest vertex-disjoint
// paths that visit every vertex. The minimum cover has n - M paths, where M
// is the size of a maximum matching in the split bipartite graph (left copy
// of each vertex to right copy of each successor).
//
// # Architecture
//
//	edge list / JSON / TOML
//	         ↓
//	    [io] (decode into a named DAG)
//	         ↓
//	    [dag/transform] (break cycles, transitive closure, layers)
//	         ↓
//	    [cover] (split → [bipartite] Hopcroft-Karp → reconstruct paths)
//	         ↓
//	    [render] (text, JSON, DOT, SVG, PDF, PNG)
//
// [pipeline] runs these stages with a content-addressed [cache]; the HTTP API
// keeps results in a [store].
//
// # Quick Start
//
//	c, err := cover.Compute(4, []cover.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Count(), c.Paths) // 1 [[1 2 3 4]]
//
// # Supporting Packages
//
//   - [errors]: coded errors and classification of core sentinels
//   - [config]: TOML config file and environment overrides
//   - [observability]: hooks for parse, cover, render, cache and HTTP events
//   - [buildinfo]: version information set at link time
//
// [io]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/io
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/dag/transform
// [cover]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/cover
// [bipartite]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/bipartite
// [render]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/store
// [errors]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/errors
// [config]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pathcover/pkg/buildinfo
package pkg
