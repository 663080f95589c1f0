package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathcover/pkg/bipartite"
	"github.com/matzehuels/pathcover/pkg/cover"
	"github.com/matzehuels/pathcover/pkg/errors"
	pio "github.com/matzehuels/pathcover/pkg/io"
	"github.com/matzehuels/pathcover/pkg/pipeline"
)

type matchOpts struct {
	inputFormat string
	closure     bool
	breakCycles bool
}

// matchCommand creates the match command, which prints the maximum matching
// a cover is built from: each matched pair u → v means v follows u on a path.
func (c *CLI) matchCommand() *cobra.Command {
	var opts matchOpts

	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: "Show the maximum bipartite matching behind a cover",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := stdinName
			if len(args) == 1 {
				input = args[0]
			}
			return c.runMatch(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFormat, "input-format", "i", "", "input format: edgelist, json, toml (default: from file extension)")
	cmd.Flags().BoolVar(&opts.closure, "closure", false, "match on the transitive closure")
	cmd.Flags().BoolVar(&opts.breakCycles, "break-cycles", false, "remove back edges instead of rejecting cyclic input")

	return cmd
}

func (c *CLI) runMatch(ctx context.Context, input string, opts matchOpts) error {
	r, format, err := c.openInput(input, opts.inputFormat)
	if err != nil {
		return err
	}
	defer r.Close()

	g, err := pipeline.Parse(ctx, r, pio.Format(format))
	if err != nil {
		return err
	}
	prepared, _, err := pipeline.Prepare(g, pipeline.Options{Closure: opts.closure, BreakCycles: opts.breakCycles})
	if err != nil {
		return err
	}

	p := cover.FromDAG(prepared)
	split, err := cover.Split(p.Vertices, p.Edges)
	if err != nil {
		return errors.FromCore(err)
	}
	m := bipartite.MaxMatching(split)
	if err := m.Verify(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "matching")
	}

	fmt.Fprintln(c.Out, renderMatchTable(p.Labels, m.Pairs()))
	fmt.Fprintf(c.Out, "matching size %s in %s phases, %s paths\n",
		StyleNumber.Render(strconv.Itoa(m.Size)),
		StyleNumber.Render(strconv.Itoa(m.Phases)),
		StyleNumber.Render(strconv.Itoa(p.Vertices-m.Size)))
	return nil
}

// renderMatchTable lays out matched pairs, one row per pair, using the
// vertex labels (labels[i-1] names vertex i).
func renderMatchTable(labels []string, pairs [][2]int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	arrowStyle := cellStyle.Foreground(colorDim)

	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{labels[p[0]-1], iconArrow, labels[p[1]-1]}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("From", "", "Next").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return arrowStyle
			}
			return cellStyle
		}).
		Render()
}
