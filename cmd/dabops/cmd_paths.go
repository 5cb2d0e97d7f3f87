package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoshisato/dabops/config/bundleenv"
	"github.com/hoshisato/dabops/internal/logging"
)

// newCmdPaths returns a command that resolves and prints the project layout.
func newCmdPaths() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Resolve and print the project directories",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "paths")
			defer func() { cleanup(err) }()

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			env, err := bundleenv.Resolve(wd)
			if err != nil {
				return err
			}
			logging.FromContext(ctx).Info(ctx, "resolved project root",
				"root", env.ProjectRoot, "mode", env.Mode.String())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode=%s\n", env.Mode)
			fmt.Fprintf(out, "root=%s\n", env.ProjectRoot)
			fmt.Fprintf(out, "resources=%s\n", env.Resources())
			fmt.Fprintf(out, "tests=%s\n", env.Tests())
			fmt.Fprintf(out, "common_framework=%s\n", env.CommonFramework())
			fmt.Fprintf(out, "shared_config=%s\n", env.SharedConfig())
			return nil
		},
	}
}
