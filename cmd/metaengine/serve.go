package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/metaengine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := metaengine.LoadConfig(configPath)
		if err != nil {
			return err
		}
		app := metaengine.New(cfg, metaengine.WithLogger(logger))
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return app.Start(ctx)
	},
}

