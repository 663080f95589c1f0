package render

import (
	"bytes"
	"context"

	"github.com/matzehuels/pathcover/pkg/cover"
	"github.com/matzehuels/pathcover/pkg/dag"
	"github.com/matzehuels/pathcover/pkg/errors"
	"github.com/matzehuels/pathcover/pkg/render/nodelink"
)

// Format names an output document type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
)

// Formats lists every supported output format.
var Formats = []string{
	string(FormatText), string(FormatJSON), string(FormatDOT),
	string(FormatSVG), string(FormatPDF), string(FormatPNG),
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// ParseFormats validates format names. An empty list yields [FormatText].
func ParseFormats(names []string) ([]Format, error) {
	if len(names) == 0 {
		return []Format{FormatText}, nil
	}
	out := make([]Format, 0, len(names))
	for _, name := range names {
		if err := errors.ValidateFormat(name, Formats); err != nil {
			return nil, err
		}
		out = append(out, Format(name))
	}
	return out, nil
}

// Options configures graphical output.
type Options struct {
	Detailed bool    // include node metadata in DOT labels
	Scale    float64 // PNG scale factor, defaults to 2
}

// Render produces the document for format. g must be the graph c was
// computed on.
func Render(ctx context.Context, format Format, g *dag.DAG, c *cover.Cover, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatText:
		if err := WriteText(&buf, c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		if err := WriteJSON(&buf, c, g.EdgeCount()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT, FormatSVG, FormatPDF, FormatPNG:
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", format)
	}

	dot := nodelink.ToDOT(g, c, nodelink.Options{Detailed: opts.Detailed})
	if format == FormatDOT {
		return []byte(dot), nil
	}

	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPDF:
		return ToPDF(ctx, svg)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 2
	}
	return ToPNG(ctx, svg, scale)
}
