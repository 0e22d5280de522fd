package main

import (
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <node>",
	Short: "List the documents needed to understand a node",
	Long: `Walks the dependencies of a node depth-first and prints the dependency chain
followed by every document reachable from it, dependencies first, without repeats.
Fails if the node is unknown or a cycle is reached.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		jsonOut, _ := cmd.Flags().GetBool("json")
		return app.Resolve(args[0], jsonOut)
	},
}

func init() {
	resolveCmd.Flags().Bool("json", false, "Print the result as JSON")
	rootCmd.AddCommand(resolveCmd)
}
