package main

import (
	"fmt"

	"github.com/ib-77/compose/pkg/compose"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of composer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "composer version %s\n", compose.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
