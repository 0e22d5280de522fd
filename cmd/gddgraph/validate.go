package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/gddgraph/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the graph for consistency",
	Long: `Checks every node for cycles, undeclared dependencies, missing documents and
agents sections. Exits with status 1 if any critical finding is reported; warnings
alone keep status 0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		opts := cli.ValidateOptions{}
		opts.JSON, _ = flags.GetBool("json")
		opts.ReportPath, _ = flags.GetString("report")
		opts.MetricsPath, _ = flags.GetString("metrics-file")
		opts.Watch, _ = flags.GetBool("watch")

		ctx := context.Background()
		if opts.Watch {
			sigCtx := cli.NewSignalContext(ctx)
			defer sigCtx.Cancel()
			ctx = sigCtx
		}
		return app.Validate(ctx, opts)
	},
}

func init() {
	validateCmd.Flags().Bool("json", false, "Print findings as JSON")
	validateCmd.Flags().String("report", "", "Write the markdown report to PATH (bare flag: configured report path)")
	validateCmd.Flags().Lookup("report").NoOptDefVal = cli.ReportFromConfig
	validateCmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text format to PATH")
	validateCmd.Flags().Bool("watch", false, "Revalidate whenever the graph or a document changes")
	rootCmd.AddCommand(validateCmd)
}
