package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hoshisato/dabops/internal/mathutil"
)

// newCmdSum returns a command that adds integers with the shared framework
// math helper.
func newCmdSum() *cobra.Command {
	return &cobra.Command{
		Use:   "sum N...",
		Short: "Add integers using the shared framework math helper",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("parsing %q: %w", arg, err)
				}
				nums = append(nums, n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", mathutil.Sum(nums...))
			return nil
		},
	}
}
