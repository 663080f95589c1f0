package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/pathcover/pkg/dag"
)

type graph struct {
	Meta  dag.Metadata `json:"meta,omitempty" toml:"meta"`
	Nodes []node       `json:"nodes" toml:"nodes"`
	Edges []edge       `json:"edges" toml:"edges"`
}

type node struct {
	ID   string       `json:"id" toml:"id"`
	Meta dag.Metadata `json:"meta,omitempty" toml:"meta"`
}

type edge struct {
	From string `json:"from" toml:"from"`
	To   string `json:"to" toml:"to"`
}

// WriteJSON encodes a DAG as JSON and writes it to w.
// Nodes and edges keep insertion order, so equal graphs encode to equal
// bytes. The output can be re-imported with [ReadJSON].
func WriteJSON(g *dag.DAG, w io.Writer) error {
	out := graph{
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	if len(g.Meta()) > 0 {
		out.Meta = g.Meta()
	}
	for _, n := range g.Nodes() {
		nd := node{ID: n.ID}
		if len(n.Meta) > 0 {
			nd.Meta = n.Meta
		}
		out.Nodes = append(out.Nodes, nd)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
