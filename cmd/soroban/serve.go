package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ashita-ai/soroban"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis tools over MCP stdio",
	Long: `Load the dataset, print nothing, and speak MCP on stdin/stdout until
the client disconnects. Point an MCP-capable agent at this command:

  {"command": "soroban", "args": ["serve", "--csv", "tweets.csv"]}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		app, err := soroban.New(
			soroban.WithCSVPath(flagCSV),
			soroban.WithLogger(logger),
			soroban.WithVersion(version),
		)
		if err != nil {
			return err
		}
		return app.Run(ctx)
	},
}
