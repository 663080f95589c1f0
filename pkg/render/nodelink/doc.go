// Package nodelink draws path covers as Graphviz node-link diagrams.
//
// Nodes are boxes connected by arrows. Every path of the cover gets its own
// fill color and its edges are drawn bold in that color; graph edges that
// the cover does not use are drawn as thin dashed grey arrows. Nodes that
// share a [dag.Node] Row are kept on the same rank, so running
// [transform.AssignLayers] first gives a layered drawing.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, c, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// RenderSVG runs the Graphviz layout engine through go-graphviz (a
// WebAssembly build of Graphviz), so no system installation is needed.
//
// [dag.Node]: github.com/matzehuels/pathcover/pkg/dag
// [transform.AssignLayers]: github.com/matzehuels/pathcover/pkg/dag/transform
package nodelink
