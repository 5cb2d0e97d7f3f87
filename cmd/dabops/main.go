package main

import (
	"context"
	"fmt"
	"os"

	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hoshisato/dabops/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dabops",
		Short:   "Databricks Asset Bundle demo toolkit",
		Long:    "Databricks Asset Bundle demo toolkit",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// global flags
	cmd.PersistentFlags().StringP("chdir", "C", "", "Change to directory before running")
	cmd.PersistentFlags().String("log-format", "text", "Log format (text|json) (env DABOPS_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("DABOPS_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		l, err := logging.New(format, slog.LevelInfo)
		if err != nil {
			return err
		}
		l = l.With("runId", uuid.NewString())
		c.SetContext(logging.WithLogger(c.Context(), l))

		// init handles -C itself so it can create the directory first
		if c.Name() == "init" {
			return nil
		}
		if dir, _ := c.Flags().GetString("chdir"); dir != "" {
			if err := os.Chdir(dir); err != nil {
				return fmt.Errorf("changing directory to %q: %w", dir, err)
			}
		}
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdPaths())
	cmd.AddCommand(newCmdConfig())
	cmd.AddCommand(newCmdData())
	cmd.AddCommand(newCmdSum())
	cmd.AddCommand(newCmdInit())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Error(ctx, "command failed", "error", err.Error())
		os.Exit(1)
	}
}
