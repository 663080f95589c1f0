package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/pathcover/pkg/cover"
)

// Document is the JSON form of a cover. It is also the response body of the
// HTTP API.
type Document struct {
	Vertices     int        `json:"vertices"`
	Edges        int        `json:"edges"`
	MatchingSize int        `json:"matching_size"`
	Phases       int        `json:"phases"`
	PathCount    int        `json:"path_count"`
	Paths        [][]string `json:"paths"`
}

// NewDocument builds the JSON document for c. edges is the number of edges
// of the graph the cover was computed on.
func NewDocument(c *cover.Cover, edges int) Document {
	return Document{
		Vertices:     c.Vertices,
		Edges:        edges,
		MatchingSize: c.MatchingSize,
		Phases:       c.Phases,
		PathCount:    c.Count(),
		Paths:        c.NamedPaths(),
	}
}

// WriteJSON encodes the document for c as indented JSON.
func WriteJSON(w io.Writer, c *cover.Cover, edges int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(c, edges)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
