package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zip-arcade/internal/platform/web"
)

var flagHTTPAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP share server",
	Long: `Start an HTTP server that generates and decodes levels.

Endpoints:
  GET /api/levels?difficulty=&rows=&cols=&seed=  - Generate a level (JSON)
  GET /api/levels/{token}                        - Decode a token (JSON)
  GET /play?level=<token>                        - Draw a shared level as text
  GET /healthz                                   - Health check

Examples:
  zip serve                  # Listen on the configured address (:8080)
  zip serve --addr :9000
  curl 'localhost:8080/play?level=...'`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	engine, cfg, logger := setup()

	httpCfg := cfg.Server.HTTP
	if flagHTTPAddr != "" {
		httpCfg.Address = flagHTTPAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(engine, httpCfg, logger)
	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("HTTP server stopped", "err", err)
		stop()
		os.Exit(1)
	}
}
