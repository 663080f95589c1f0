package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathcover/pkg/pipeline"
)

// exploreCommand creates the explore command, an interactive path browser.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		inputFormat string
		closure     bool
		breakCycles bool
	)

	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Browse the paths of a cover interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := stdinName
			if len(args) == 1 {
				input = args[0]
			}
			return c.runExplore(cmd.Context(), input, pipeline.Options{
				InputFormat: inputFormat,
				Closure:     closure,
				BreakCycles: breakCycles,
			})
		},
	}

	cmd.Flags().StringVarP(&inputFormat, "input-format", "i", "", "input format: edgelist, json, toml (default: from file extension)")
	cmd.Flags().BoolVar(&closure, "closure", false, "cover the transitive closure (minimum chain cover)")
	cmd.Flags().BoolVar(&breakCycles, "break-cycles", false, "remove back edges instead of rejecting cyclic input")

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, input string, opts pipeline.Options) error {
	r, format, err := c.openInput(input, opts.InputFormat)
	if err != nil {
		return err
	}
	defer r.Close()

	opts.InputFormat = format
	opts.Logger = loggerFromContext(ctx)
	runner := c.newRunner(ctx, false, nil)
	defer runner.Close()

	result, err := runner.Execute(ctx, r, opts)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%d paths cover %d vertices", result.Cover.Count(), result.Cover.Vertices)
	popts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(c.Out), tea.WithAltScreen()}
	if input == stdinName {
		// Keys cannot come from a piped graph.
		popts = append(popts, tea.WithInputTTY())
	}
	_, err = tea.NewProgram(NewPathListModel(title, result.Cover.NamedPaths()), popts...).Run()
	return err
}
