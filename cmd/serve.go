package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sdorani/portfolio/internal/logger"
	"github.com/sdorani/portfolio/internal/server"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page over HTTP",
		Long: `Serve the portfolio page.

Routes:
  /              the page
  /graph         skill graph fragment for ?w=<window width>&h=<window height>
  /api/layout    base node layout as JSON
  /healthz       health check

Build the browser program first to enable scroll highlighting:
  GOOS=js GOARCH=wasm go build -o dist/wasm/spy.wasm ./cmd/spywasm
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" dist/wasm/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, site, err := setup()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Port = port
			}

			srv, err := server.New(cfg, site, logger.Get())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP port (env PORT, default 8080)")
	return cmd
}
