package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/galaxy/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the galaxy API and live websocket sessions",
		Long: `Serves the REST endpoints (/api/layout, /api/window, /api/tooltip,
/api/profiles) and /ws, where every connection hosts its own galaxy view.`,
		Example: `  galaxy serve --addr :9000
  GALAXY_MONGO_URI=mongodb://localhost:27017 galaxy serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			b, err := openBackend(ctx, cfg, logger, false)
			if err != nil {
				return err
			}
			defer b.Close(context.Background())

			srv := server.New(b.Store, server.Options{
				Addr:              cfg.Server.Addr,
				ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
				ShutdownTimeout:   cfg.Server.ShutdownTimeout,
				AllowedOrigins:    cfg.Server.AllowedOrigins,
				View:              viewOptions(cfg, logger),
				Logger:            logger,
			})
			printInfo("Serving %s store on %s", cfg.Store.Driver, StyleHighlight.Render(cfg.Server.Addr))
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
