package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/pathcover/pkg/dag"
	"github.com/matzehuels/pathcover/pkg/errors"
)

// Format names an input encoding.
type Format string

const (
	FormatEdgeList Format = "edgelist"
	FormatJSON     Format = "json"
	FormatTOML     Format = "toml"
)

// Formats lists every supported input format.
var Formats = []string{string(FormatEdgeList), string(FormatJSON), string(FormatTOML)}

// ParseFormat validates a format name. The empty string is accepted and
// means "detect from the file name".
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return "", nil
	}
	if err := errors.ValidateFormat(s, Formats); err != nil {
		return "", err
	}
	return Format(s), nil
}

// DetectFormat guesses the format from a file extension. Anything that is
// not .json or .toml, including stdin ("-"), is read as an edge list.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	}
	return FormatEdgeList
}

// Read decodes a graph from r in the given format.
func Read(r io.Reader, format Format) (*dag.DAG, error) {
	switch format {
	case FormatEdgeList, "":
		return ReadEdgeList(r)
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

// ReadFile opens path and decodes it with [Read]. An empty format is
// detected from the file extension.
func ReadFile(path string, format Format) (*dag.DAG, error) {
	if format == "" {
		format = DetectFormat(path)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}
