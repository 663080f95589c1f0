package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathcover/pkg/buildinfo"
	"github.com/matzehuels/pathcover/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "pathcover finds minimum path covers of DAGs",
		Long: `pathcover splits a directed acyclic graph into the fewest vertex-disjoint
paths that together visit every vertex, using Hopcroft-Karp bipartite matching.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := observability.NewLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetServerHooks(hooks)
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/pathcover/config.toml)")

	root.AddCommand(c.coverCommand())
	root.AddCommand(c.matchCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
