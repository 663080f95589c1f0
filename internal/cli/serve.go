package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathcover/internal/server"
	"github.com/matzehuels/pathcover/pkg/cache"
)

// apiKeyPrefix separates API cache entries from CLI entries in a shared
// backend.
const apiKeyPrefix = "api:"

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			c.Logger.Warn("close store", "error", err)
		}
	}()

	runner := c.newRunner(ctx, noCache, apiKeyer())
	defer runner.Close()

	printInfo("Serving on %s", StyleHighlight.Render(addr))
	printKeyValue("cache", c.cfg.Cache.Backend)
	printKeyValue("store", c.cfg.Store.Backend)
	printNextStep("Try", `curl -s -X POST localhost`+addrPort(addr)+`/v1/covers -d '{"edgelist": "2 1\n1 2\n"}'`)

	return server.New(runner, st, c.Logger, c.cfg.Server).ListenAndServe(ctx, addr)
}

func apiKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), apiKeyPrefix)
}

// addrPort returns the ":port" part of a listen address.
func addrPort(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i:]
		}
	}
	return ""
}
