package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pathcover/pkg/cover"
	"github.com/matzehuels/pathcover/pkg/dag"
)

// Options configures diagram generation.
type Options struct {
	// Detailed includes the path number and node metadata in labels.
	Detailed bool
}

// palette holds the fill colors assigned to paths in order. Paths beyond
// the palette reuse it from the start.
var palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// PathColor returns the color of the i-th path (0-based).
func PathColor(i int) string { return palette[i%len(palette)] }

// ToDOT converts g and its cover c to Graphviz DOT. Vertex i of the cover
// is the i-th node of g in insertion order. c may be nil, in which case the
// plain graph is drawn.
func ToDOT(g *dag.DAG, c *cover.Cover, opts Options) string {
	nodes := g.Nodes()
	pathOf := make(map[string]int, len(nodes))
	onPath := make(map[[2]string]int)
	if c != nil {
		for i, path := range c.Paths {
			for j, v := range path {
				if v < 1 || v > len(nodes) {
					continue
				}
				id := nodes[v-1].ID
				pathOf[id] = i + 1
				if j > 0 && path[j-1] >= 1 && path[j-1] <= len(nodes) {
					onPath[[2]string{nodes[path[j-1]-1].ID, id}] = i + 1
				}
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(*n, pathOf[n.ID], opts.Detailed))}
		if p := pathOf[n.ID]; p > 0 {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", PathColor(p-1)))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	if ranks := rankGroups(nodes); len(ranks) > 0 {
		buf.WriteString("\n")
		for _, ids := range ranks {
			quoted := make([]string, len(ids))
			for i, id := range ids {
				quoted[i] = strconv.Quote(id)
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
		}
	}

	buf.WriteString("\n")
	drawn := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		key := [2]string{e.From, e.To}
		if p, ok := onPath[key]; ok && !drawn[key] {
			drawn[key] = true
			fmt.Fprintf(&buf, "  %q -> %q [color=%q, penwidth=3];\n", e.From, e.To, darken(PathColor(p-1)))
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [color=grey, style=dashed];\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n dag.Node, path int, detailed bool) string {
	if !detailed {
		return n.ID
	}

	var parts []string
	if path > 0 {
		parts = append(parts, fmt.Sprintf("path: %d", path))
	}
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
	}
	if len(parts) == 0 {
		return n.ID
	}
	return n.ID + "\n" + strings.Join(parts, "\n")
}

// rankGroups groups node IDs by Row. Returns nil when every node is on row 0,
// so graphs without a layering are left to Graphviz.
func rankGroups(nodes []*dag.Node) [][]string {
	byRow := make(map[int][]string)
	for _, n := range nodes {
		byRow[n.Row] = append(byRow[n.Row], n.ID)
	}
	if len(byRow) < 2 {
		return nil
	}
	groups := make([][]string, 0, len(byRow))
	for _, row := range slices.Sorted(maps.Keys(byRow)) {
		if ids := byRow[row]; len(ids) > 1 {
			groups = append(groups, ids)
		}
	}
	return groups
}

// darken halves each channel of a #rrggbb color for edge strokes.
func darken(hex string) string {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return hex
	}
	r, g, b := (v>>16)&0xff/2, (v>>8)&0xff/2, v&0xff/2
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag so the drawing scales from the
// origin with its natural size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
