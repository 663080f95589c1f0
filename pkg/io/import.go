package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pathcover/pkg/dag"
	"github.com/matzehuels/pathcover/pkg/errors"
)

// ReadJSON decodes a JSON graph from r into a DAG.
//
// Each node must have an "id" field; "meta" is an optional object copied
// onto the node. Each edge must have "from" and "to" fields. See the package
// documentation for how a missing "nodes" array is handled.
//
// The returned DAG is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dag.DAG, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return data.build()
}

// ReadTOML decodes a TOML graph from r into a DAG. The structure mirrors
// [ReadJSON] with [[nodes]] and [[edges]] tables.
func ReadTOML(r io.Reader) (*dag.DAG, error) {
	var data graph
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	return data.build()
}

func (data graph) build() (*dag.DAG, error) {
	g := dag.New(data.Meta)
	for _, n := range data.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return nil, err
		}
		if err := g.AddNode(dag.Node{ID: n.ID, Meta: n.Meta}); err != nil {
			return nil, errors.FromCore(fmt.Errorf("node %s: %w", n.ID, err))
		}
	}

	implied := data.Nodes == nil
	for _, e := range data.Edges {
		if implied {
			for _, id := range []string{e.From, e.To} {
				if err := errors.ValidateNodeID(id); err != nil {
					return nil, err
				}
				if err := g.EnsureNode(id); err != nil {
					return nil, errors.FromCore(err)
				}
			}
		}
		if err := g.AddEdge(dag.Edge{From: e.From, To: e.To}); err != nil {
			return nil, errors.FromCore(fmt.Errorf("edge %s->%s: %w", e.From, e.To, err))
		}
	}
	return g, nil
}
