package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/cells/internal/errors"
	"github.com/vango-dev/cells/pkg/numeric"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Apply a numeric operator",
		Long: `Apply one of + - * / % & | ^ << >> >>> cmp to two literals.

The result kind follows the promotion rules: Double > Float > Long > Int.
Shifts keep the kind of the left operand.

Examples:
  cells calc 1 + 2.0
  cells calc 0x10L '<<' 4
  cells calc 7 cmp 7.5F`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := numeric.Operator(args[1])
			if !ok {
				return errors.New("C030").WithDetail(fmt.Sprintf("%q is not an operator", args[1]))
			}
			a, err := numeric.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := numeric.Parse(args[2])
			if err != nil {
				return err
			}

			result, err := op(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", result, result.Kind())
			return nil
		},
	}
}
