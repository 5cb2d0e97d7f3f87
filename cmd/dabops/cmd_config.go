package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hoshisato/dabops/config/bundleenv"
	"github.com/hoshisato/dabops/config/sharedcfg"
)

// newCmdConfig returns a command that reads and shows the shared configuration.
func newCmdConfig() *cobra.Command {
	var dir string
	var raw bool
	c := &cobra.Command{
		Use:   "config",
		Short: "Read and show the shared configuration",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, cleanup := withCmdRunLogger(cmd.Context(), "config")
			defer func() { cleanup(err) }()

			if dir == "" {
				dir, err = resolveSharedConfigDir()
				if err != nil {
					return err
				}
			}

			if raw {
				cfg, err := sharedcfg.LoadBarMap(dir)
				if err != nil {
					return err
				}
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("encoding configuration: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}

			cfg, err := sharedcfg.LoadBar(dir)
			if err != nil {
				return err
			}
			// Print a concise summary to stdout
			fmt.Fprintf(cmd.OutOrStdout(), "bar_test.foo_test=%s\n", cfg.BarTest.FooTest)
			return nil
		},
	}
	c.Flags().StringVarP(&dir, "dir", "d", "", "Shared configuration directory (default: resolved from the project layout)")
	c.Flags().BoolVar(&raw, "raw", false, "Print the raw mapping as YAML")
	return c
}

// resolveSharedConfigDir locates the shared configuration directory from the
// current working directory.
func resolveSharedConfigDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	env, err := bundleenv.Resolve(wd)
	if err != nil {
		return "", err
	}
	return env.SharedConfig(), nil
}
