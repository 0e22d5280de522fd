package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/gddgraph"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gddgraph",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gddgraph version %s\n", strings.TrimSpace(gddgraph.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
