package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashita-ai/soroban"
)

var flagArgs string

var callCmd = &cobra.Command{
	Use:   "call [tool]",
	Short: "Invoke one tool and print its JSON result",
	Long: `Run a single tool invocation against the dataset and print the result,
for scripting and for debugging tool behavior without an agent:

  soroban call compute_column_stats --csv tweets.csv --args '{"column": "favorite_count"}'

A domain error (bad column, empty filter) prints as JSON too and sets
exit code 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bag := map[string]any{}
		if flagArgs != "" {
			if err := json.Unmarshal([]byte(flagArgs), &bag); err != nil {
				return fmt.Errorf("parse --args: %w", err)
			}
		}

		app, err := soroban.New(
			soroban.WithCSVPath(flagCSV),
			soroban.WithLogger(newLogger()),
			soroban.WithVersion(version),
		)
		if err != nil {
			return err
		}

		res := app.Invoke(args[0], bag)
		if res.Err != nil {
			out, merr := json.MarshalIndent(res.Err, "", "  ")
			if merr != nil {
				return fmt.Errorf("marshal error payload: %w", merr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return fmt.Errorf("tool %s failed: %s", args[0], res.Err.Message)
		}

		out, err := json.MarshalIndent(res.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	callCmd.Flags().StringVar(&flagArgs, "args", "", "tool arguments as a JSON object")
}
