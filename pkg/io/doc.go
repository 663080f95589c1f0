// Package io reads and writes the graphs that path covers are computed on.
//
// # Formats
//
// Three input formats are supported, see [Format]:
//
// Edge list (the classic competitive-programming layout): a header with the
// vertex count n and edge count m, followed by m pairs "u v" with
// 1 <= u, v <= n. Tokens may be separated by any whitespace.
//
//	4 3
//	1 2
//	2 3
//	3 4
//
// Nodes are named "1".."n" and added in numeric order, so vertex numbers in
// the cover match the input.
//
// JSON:
//
//	{
//	  "nodes": [{"id": "fetch"}, {"id": "build"}],
//	  "edges": [{"from": "fetch", "to": "build"}]
//	}
//
// TOML:
//
//	[[nodes]]
//	id = "fetch"
//
//	[[edges]]
//	from = "fetch"
//	to = "build"
//
// In JSON and TOML the nodes array is optional. When it is omitted, nodes
// are created on first mention by an edge, in edge order. When it is present,
// every edge endpoint must be listed.
//
// # Errors
//
// Readers return coded errors from [errors]: INVALID_FORMAT for malformed
// input, INVALID_VERTEX for edge-list endpoints outside [1, n],
// INVALID_NODE_ID for bad identifiers and INVALID_INPUT for edges between
// unknown nodes. Cycles are not rejected here; that is up to the caller.
//
// # Export
//
// [WriteJSON] writes a graph in the JSON format above. The output is
// deterministic (nodes and edges in insertion order) and is also used as the
// canonical form for cache keys.
//
// [errors]: github.com/matzehuels/pathcover/pkg/errors
package io
