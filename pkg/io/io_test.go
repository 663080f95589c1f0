package io

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/pathcover/pkg/dag"
	"github.com/matzehuels/pathcover/pkg/errors"
)

func edgeStrings(g *dag.DAG) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.From+"->"+e.To)
	}
	return out
}

func TestReadEdgeList(t *testing.T) {
	g, err := ReadEdgeList(strings.NewReader("4 3\n1 2\n2 3\n3 4\n"))
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if got := g.NodeIDs(); !slices.Equal(got, []string{"1", "2", "3", "4"}) {
		t.Errorf("NodeIDs() = %v", got)
	}
	if got := edgeStrings(g); !slices.Equal(got, []string{"1->2", "2->3", "3->4"}) {
		t.Errorf("edges = %v", got)
	}
	for i, id := range g.NodeIDs() {
		if g.Index(id) != i+1 {
			t.Errorf("Index(%s) = %d, want %d", id, g.Index(id), i+1)
		}
	}
}

func TestReadEdgeListWhitespace(t *testing.T) {
	g, err := ReadEdgeList(strings.NewReader("  3 2 1 2\n\n\t2   3 trailing tokens"))
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("got %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestReadEdgeListErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty", "", errors.ErrCodeInvalidFormat},
		{"missing edge count", "3", errors.ErrCodeInvalidFormat},
		{"not a number", "3 x", errors.ErrCodeInvalidFormat},
		{"negative vertices", "-1 0", errors.ErrCodeInvalidInput},
		{"too many vertices", "99999999 0", errors.ErrCodeInvalidInput},
		{"negative edges", "3 -2", errors.ErrCodeInvalidInput},
		{"truncated edges", "3 2\n1 2\n", errors.ErrCodeInvalidFormat},
		{"half edge", "3 1\n1", errors.ErrCodeInvalidFormat},
		{"vertex zero", "3 1\n0 1", errors.ErrCodeInvalidVertex},
		{"vertex too large", "3 1\n1 4", errors.ErrCodeInvalidVertex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadEdgeList(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.GetCode(err); code != tt.code {
				t.Errorf("code = %v, want %v (%v)", code, tt.code, err)
			}
		})
	}
}

func TestWriteEdgeListRoundTrip(t *testing.T) {
	in := "3 3\n1 2\n1 2\n3 1\n"
	g, err := ReadEdgeList(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteEdgeList(g, &buf); err != nil {
		t.Fatalf("WriteEdgeList: %v", err)
	}
	if buf.String() != in {
		t.Errorf("WriteEdgeList() = %q, want %q", buf.String(), in)
	}
}

func TestReadJSON(t *testing.T) {
	input := `{
		"nodes": [{"id": "fetch"}, {"id": "build", "meta": {"owner": "ci"}}],
		"edges": [{"from": "fetch", "to": "build"}]
	}`
	g, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got := g.NodeIDs(); !slices.Equal(got, []string{"fetch", "build"}) {
		t.Errorf("NodeIDs() = %v", got)
	}
	if n, _ := g.Node("build"); n.Meta["owner"] != "ci" {
		t.Errorf("meta = %v", n.Meta)
	}
}

func TestReadJSONImpliedNodes(t *testing.T) {
	input := `{"edges": [{"from": "b", "to": "c"}, {"from": "a", "to": "b"}]}`
	g, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got := g.NodeIDs(); !slices.Equal(got, []string{"b", "c", "a"}) {
		t.Errorf("NodeIDs() = %v, want first-mention order [b c a]", got)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"nodes": [`, errors.ErrCodeInvalidFormat},
		{"empty id", `{"nodes": [{"id": ""}]}`, errors.ErrCodeInvalidNodeID},
		{"duplicate id", `{"nodes": [{"id": "a"}, {"id": "a"}]}`, errors.ErrCodeInvalidNodeID},
		{"unknown endpoint", `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "b"}]}`, errors.ErrCodeInvalidInput},
		{"explicit empty nodes", `{"nodes": [], "edges": [{"from": "a", "to": "b"}]}`, errors.ErrCodeInvalidInput},
		{"bad implied id", `{"edges": [{"from": "a", "to": "b\n"}]}`, errors.ErrCodeInvalidNodeID},
		{"space in id", `{"nodes": [{"id": "a b"}, {"id": "c"}]}`, errors.ErrCodeInvalidNodeID},
		{"space in implied id", `{"edges": [{"from": "a b", "to": "c"}]}`, errors.ErrCodeInvalidNodeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if code := errors.GetCode(err); code != tt.code {
				t.Errorf("code = %v, want %v (%v)", code, tt.code, err)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	input := `
[[nodes]]
id = "fetch"

[[nodes]]
id = "build"

[[edges]]
from = "fetch"
to = "build"
`
	g, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if got := edgeStrings(g); !slices.Equal(got, []string{"fetch->build"}) {
		t.Errorf("edges = %v", got)
	}

	if _, err := ReadTOML(strings.NewReader("[[nodes]\n")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("malformed toml error = %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "a", Meta: dag.Metadata{"k": "v"}})
	_ = g.AddNode(dag.Node{ID: "b"})
	_ = g.AddEdge(dag.Edge{From: "a", To: "b"})
	_ = g.AddEdge(dag.Edge{From: "a", To: "b"})

	var first bytes.Buffer
	if err := WriteJSON(g, &first); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	var second bytes.Buffer
	_ = WriteJSON(back, &second)
	if first.String() != second.String() {
		t.Errorf("round trip changed output:\n%s\n%s", first.String(), second.String())
	}
	if back.EdgeCount() != 2 {
		t.Errorf("parallel edges lost: %d", back.EdgeCount())
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"graph.json":  FormatJSON,
		"graph.JSON":  FormatJSON,
		"graph.toml":  FormatTOML,
		"graph.txt":   FormatEdgeList,
		"input":       FormatEdgeList,
		"-":           FormatEdgeList,
		"dir/x.y.txt": FormatEdgeList,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != "" {
		t.Errorf("ParseFormat(\"\") = %q, %v", f, err)
	}
	if f, err := ParseFormat("toml"); err != nil || f != FormatTOML {
		t.Errorf("ParseFormat(toml) = %q, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(yaml) error = %v", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.json")
	if err := os.WriteFile(path, []byte(`{"edges":[{"from":"x","to":"y"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := ReadFile(path, "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.txt"), ""); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}
