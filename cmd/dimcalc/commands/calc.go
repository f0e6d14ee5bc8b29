package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dimcalc/internal/domain"
)

// calc <v1> <u1> <op> <v2> [u2]: evaluate one operation.
func calcCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <value> <unit> <op> <value> [unit]",
		Short: "Evaluate one operation; omit the last unit for a unit-less operand",
		Example: `  dimcalc calc 10 m / 5 m/s
  dimcalc calc 2 m2*s + 1 m2*s
  dimcalc calc 3 kg x 2`,
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := domain.ParseOp(args[2])
			if err != nil {
				return err
			}
			left := domain.Operand{Value: args[0], Unit: args[1]}
			right := domain.Operand{Value: args[3]}
			if len(args) == 5 {
				right.Unit = args[4]
			}

			res, err := e.wire.Calc.Calc(cmd.Context(), left, op, right)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
