package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashita-ai/soroban"
)

var profileCmd = &cobra.Command{
	Use:   "profile [file]",
	Short: "Print the dataset profile and exit",
	Long: `Run the one-shot profiling pass and print the column classification
summary — the same text served to agents as soroban://dataset/summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagCSV
		if len(args) == 1 {
			path = args[0]
		}

		app, err := soroban.New(
			soroban.WithCSVPath(path),
			soroban.WithLogger(newLogger()),
			soroban.WithVersion(version),
		)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), app.Summary())
		return nil
	},
}
