// Command soroban loads a CSV dataset and exposes analysis tools to AI
// agents over MCP stdio, or runs one-shot profiling and tool calls for
// scripting and debugging.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashita-ai/soroban/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagCSV   string
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:           "soroban",
	Short:         "Tabular analysis toolbelt for MCP agents",
	Long:          "soroban loads a CSV dataset in memory, profiles its columns, and serves a fixed set of analysis tools (stats, correlation, filtering, ranking, keyword comparison) to AI agents over the Model Context Protocol.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "CSV file to load (overrides SOROBAN_CSV_PATH)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(callCmd)
}

// newLogger builds the process logger. Everything logs to stderr:
// during serve, stdout carries the MCP transport and must stay clean.
func newLogger() *slog.Logger {
	level := config.ParseLevel(os.Getenv("SOROBAN_LOG_LEVEL"))
	if flagDebug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
