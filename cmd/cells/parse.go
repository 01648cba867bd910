package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/cells/pkg/numeric"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <literal>...",
		Short: "Parse numeric literals",
		Long: `Parse each literal and print its kind and canonical text.

Examples:
  cells parse 10 10L 0x1F 1.5F
  cells parse 1e10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, literal := range args {
				n, err := numeric.Parse(literal)
				if err != nil {
					tw.Flush()
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", literal, n.Kind(), n)
			}
			return tw.Flush()
		},
	}
}
