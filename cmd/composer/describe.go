package main

import (
	"fmt"

	"github.com/ib-77/compose/internal/builtins"
	"github.com/ib-77/compose/pkg/compose"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Print the kind, signature and steps of a composition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := load(cmd, args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "kind:      %s\n", c.Kind())
		fmt.Fprintf(w, "repr:      %s\n", compose.Describe(c))
		fmt.Fprintf(w, "signature: %s\n", c.Signature())
		fmt.Fprintf(w, "async:     %t\n", compose.IsAsync(c))
		fmt.Fprintln(w, "steps:")
		for i, step := range c.Steps() {
			fmt.Fprintf(w, "  %d. %s\n", i+1, compose.Describe(step))
		}
		return nil
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the builtin steps a composition can name",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range builtins.Registry().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(stepsCmd)
}
