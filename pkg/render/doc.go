// Package render turns path covers into output documents.
//
// # Formats
//
// Every [Format] is produced by [Render]:
//
//   - text: the classic answer layout. The first line is the number of
//     paths, then one line per path holding its length followed by its
//     vertices, e.g. "3 fetch build test".
//   - json: a [Document] with the cover statistics and named paths.
//   - dot: Graphviz DOT source from [nodelink.ToDOT], one color per path.
//   - svg: the DOT source laid out by Graphviz (see [nodelink.RenderSVG]).
//   - pdf, png: the SVG converted by rsvg-convert (see [ToPDF], [ToPNG]).
//
// Text and JSON only need the cover. The graphical formats also need the
// graph the cover was computed on, so edges outside the cover can be drawn.
//
// [nodelink]: github.com/matzehuels/pathcover/pkg/render/nodelink
// [nodelink.ToDOT]: github.com/matzehuels/pathcover/pkg/render/nodelink
// [nodelink.RenderSVG]: github.com/matzehuels/pathcover/pkg/render/nodelink
package render
