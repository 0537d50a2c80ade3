package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/policyocr/policy"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <number>...",
		Short: "Validate policy numbers given as digits",
		Long: `Prints the report line for each argument: the number alone when its
checksum is valid, "<number> ERR" when it is not, and "<number> ILL" when it
contains '?'.`,
		Example: `  policyocr check 457508000 664371495 '86110??36'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, number := range args {
				if _, err := fmt.Fprintln(out, policy.Format(number)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
