package main

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the markdown validation report",
	Long: `Validates the graph and prints a markdown report with a summary, one section per
finding category and the agents listed by each node's first document.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		render, _ := cmd.Flags().GetBool("render")
		return app.Report(output, render)
	},
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	reportCmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	rootCmd.AddCommand(reportCmd)
}
