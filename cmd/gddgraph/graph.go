package main

import (
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the feature graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of every node and dependency, colored by priority and status.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return app.Graph(output)
	},
}

func init() {
	graphCmd.Flags().StringP("output", "o", "", "Write the diagram to a file instead of stdout")
	rootCmd.AddCommand(graphCmd)
}
