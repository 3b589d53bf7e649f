package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ib-77/compose/pkg/compose"
	"github.com/ib-77/compose/pkg/compose/core"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE [INT...]",
	Short: "Run a composition on integer arguments",
	Long:  `Decodes FILE, calls the composition with the given integers and prints the result, awaiting it when it is awaitable.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := load(cmd, args[0])
		if err != nil {
			return err
		}

		in := make([]any, 0, len(args)-1)
		for _, raw := range args[1:] {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("argument %q is not an integer", raw)
			}
			in = append(in, n)
		}

		ctx := cmd.Context()
		if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		out, err := c.Call(ctx, compose.Pos(in...))
		if err == nil {
			out, err = compose.AwaitValue(ctx, out)
		}
		switch {
		case compose.IsCancellationError(err):
			core.LoggerFrom(ctx).WarnContext(ctx, "composition cancelled",
				"composer", compose.Describe(c), "error", err)
			return fmt.Errorf("composition cancelled: %w", err)
		case err != nil:
			core.LoggerFrom(ctx).ErrorContext(ctx, "composition failed",
				"composer", compose.Describe(c), "error", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("timeout", 0, "Give up after this long (0 waits for the result)")
}
