package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gddgraph/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "gddgraph",
	Short: "gddgraph resolves and validates Graph Driven Development documentation",
	Long: `gddgraph reads the feature graph of a project (docs/system-map.yaml by default),
resolves the documents each feature depends on, and validates the graph for cycles,
undeclared dependencies, missing documents and malformed agents sections.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil && !cli.Silent(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Project root directory")
	rootCmd.PersistentFlags().String("map", "", "Graph source path relative to the project root (default from config: docs/system-map.yaml)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default .gddgraph.yaml in the project root)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// newApp builds the CLI application from the persistent flags.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	mapPath, _ := flags.GetString("map")
	configPath, _ := flags.GetString("config")
	debug, _ := flags.GetBool("debug")
	noColor, _ := flags.GetBool("no-color")

	return cli.NewApp(cli.Options{
		RepoPath:   dir,
		MapPath:    mapPath,
		ConfigPath: configPath,
		Debug:      debug,
		NoColor:    noColor,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	})
}
