package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ib-77/compose/internal/builtins"
	"github.com/ib-77/compose/internal/logging"
	"github.com/ib-77/compose/pkg/compose"
	"github.com/ib-77/compose/pkg/compose/codec"
	"github.com/ib-77/compose/pkg/compose/core"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "composer",
	Short: "Composer runs and inspects serialized function compositions",
	Long: `Composer loads a composition document (JSON or YAML) built from the builtin
steps and either runs it on integer input or describes it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(raw)
		if err != nil {
			return err
		}
		// Subcommands keep the context of their first execution, so start
		// from the root's.
		ctx := cmd.Root().Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(core.WithLogger(ctx, logging.New(level)))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("format", "", "Document format (json|yaml); inferred from the file extension when empty")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug|info|warn|error)")
}

// load decodes the composition stored at path.
func load(cmd *cobra.Command, path string) (compose.Composer, error) {
	format, err := formatFor(cmd, path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	c, err := codec.Codec{Registry: builtins.Registry(), Format: format}.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return c, nil
}

func formatFor(cmd *cobra.Command, path string) (codec.Format, error) {
	if raw, _ := cmd.Flags().GetString("format"); raw != "" {
		return codec.ParseFormat(raw)
	}
	return codec.FormatOf(path)
}
