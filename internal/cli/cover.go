package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathcover/pkg/pipeline"
	"github.com/matzehuels/pathcover/pkg/render"
)

// coverOpts holds the command-line flags for the cover command.
type coverOpts struct {
	output      string // output file (single format) or base path (multiple)
	inputFormat string // edgelist, json or toml; guessed from the file name when empty
	formats     string // comma-separated output formats
	closure     bool   // cover the transitive closure (minimum chain cover)
	breakCycles bool   // drop back edges instead of failing on cycles
	detailed    bool   // node metadata in DOT labels
	refresh     bool   // recompute even if cached
	noCache     bool   // disable the cache entirely
}

// streamFormats are written to stdout when no output file is given.
var streamFormats = []string{string(render.FormatText), string(render.FormatJSON), string(render.FormatDOT)}

// coverCommand creates the cover command.
func (c *CLI) coverCommand() *cobra.Command {
	var opts coverOpts

	cmd := &cobra.Command{
		Use:   "cover [file]",
		Short: "Compute a minimum path cover",
		Long: `Compute a minimum vertex-disjoint path cover of a DAG.

The graph is read from file, or from standard input when file is "-" or
omitted. The default text output matches the classic format: the number of
paths, then one line per path with its length and vertices.`,
		Example: `  printf '4 3\n1 2\n2 3\n3 4\n' | pathcover cover
  pathcover cover build.json -f svg,json -o build
  pathcover cover deps.toml --closure`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := stdinName
			if len(args) == 1 {
				input = args[0]
			}
			return c.runCover(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.inputFormat, "input-format", "i", "", "input format: edgelist, json, toml (default: from file extension)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): text (default), json, dot, svg, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.closure, "closure", false, "cover the transitive closure (minimum chain cover)")
	cmd.Flags().BoolVar(&opts.breakCycles, "break-cycles", false, "remove back edges instead of rejecting cyclic input")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node metadata in graph drawings")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runCover(ctx context.Context, input string, opts coverOpts) error {
	logger := loggerFromContext(ctx)

	r, format, err := c.openInput(input, opts.inputFormat)
	if err != nil {
		return err
	}
	defer r.Close()

	popts := pipeline.Options{
		InputFormat: format,
		Closure:     opts.closure,
		BreakCycles: opts.breakCycles,
		Formats:     parseFormats(opts.formats),
		Detailed:    opts.detailed,
		Refresh:     opts.refresh,
		Logger:      logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := c.newRunner(ctx, opts.noCache, nil)
	defer runner.Close()

	var spinner *Spinner
	if interactive() && slices.ContainsFunc(popts.Formats, isDrawing) {
		spinner = newSpinnerWithContext(ctx, "Computing cover...")
		spinner.Start()
	}
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, r, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if n := result.Stats.RemovedEdges; n > 0 {
		printWarning("Removed %d back edge(s) to break cycles", n)
	}
	prog.done(fmt.Sprintf("Covered %d vertices with %d paths", result.Cover.Vertices, result.Cover.Count()))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.CoverHit)
	logger.Debug("cover stats", "matching", result.Cover.MatchingSize, "phases", result.Cover.Phases,
		"cover_cached", result.CacheInfo.CoverHit, "render_cached", result.CacheInfo.RenderHit)

	return c.writeArtifacts(result, popts.Formats, opts.output, input)
}

// writeArtifacts sends a single streamable format without -o to Out and
// everything else to files derived from output or the input name.
func (c *CLI) writeArtifacts(result *pipeline.Result, formats []string, output, input string) error {
	if len(formats) == 1 {
		data := result.Artifacts[formats[0]]
		switch {
		case output == stdinName, output == "" && slices.Contains(streamFormats, formats[0]):
			_, err := c.Out.Write(data)
			return err
		case output != "":
			return writeFile(output, data)
		}
	}

	base := basePath(output, input)
	for _, f := range formats {
		path := base + "." + render.Format(f).Ext()
		if filepath.Clean(path) == filepath.Clean(input) {
			return fmt.Errorf("refusing to overwrite input %s, choose another path with -o", input)
		}
		if err := writeFile(path, result.Artifacts[f]); err != nil {
			return err
		}
	}
	return nil
}

func isDrawing(format string) bool {
	switch render.Format(format) {
	case render.FormatSVG, render.FormatPDF, render.FormatPNG:
		return true
	}
	return false
}

// basePath derives the output path without extension. With no output it is
// the input name minus its extension, or "cover" for standard input. Known
// format extensions are stripped from output.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == stdinName {
			return "cover"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if ext == "txt" || slices.Contains(render.Formats, ext) {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}
