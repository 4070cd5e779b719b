package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/internal/server"
	"github.com/matzehuels/moodart/pkg/observability"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve runs the moodart HTTP API. Each client gets a cookie-backed
session holding its own gallery and stories. Sessions live in memory.`,
		Example: `  moodart serve
  moodart serve --addr 127.0.0.1:9000
  MOODART_CACHE_BACKEND=redis moodart serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.ListenAddr
			}
			ctx := cmd.Context()

			runner, ch, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer ch.Close()

			stats := observability.NewStats()
			observability.SetGenerationHooks(stats)
			observability.SetCacheHooks(stats)
			observability.SetHTTPHooks(stats)

			srv := server.New(runner,
				server.WithSessionTTL(c.Config.SessionTTL),
				server.WithStats(stats),
				server.WithLogger(c.Logger),
			)
			printInfo("Serving on %s", StyleLink.Render(addr))
			printDetail("cache: %s", describeCache(c.Config))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	return cmd
}
