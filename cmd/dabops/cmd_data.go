package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoshisato/dabops/config/sharedcfg"
)

// newCmdData returns a command that reads and lists the shared data file.
func newCmdData() *cobra.Command {
	var dir string
	c := &cobra.Command{
		Use:   "data",
		Short: "Read and list the shared data file",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, cleanup := withCmdRunLogger(cmd.Context(), "data")
			defer func() { cleanup(err) }()

			if dir == "" {
				dir, err = resolveSharedConfigDir()
				if err != nil {
					return err
				}
			}

			items, err := sharedcfg.LoadData(dir)
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&dir, "dir", "d", "", "Shared configuration directory (default: resolved from the project layout)")
	return c
}
