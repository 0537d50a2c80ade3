package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/policyocr/glyph"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <number>...",
		Short: "Draw 9-digit numbers as glyph entries",
		Long: `Prints each number as three glyph lines followed by a blank separator,
producing input that "policyocr scan" accepts.`,
		Example: `  policyocr render 123456789 457508000 > batch.txt`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			for _, number := range args {
				rows, err := glyph.Render(number)
				if err != nil {
					return err
				}
				for _, row := range rows {
					b.WriteString(row)
					b.WriteByte('\n')
				}
				b.WriteByte('\n')
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
