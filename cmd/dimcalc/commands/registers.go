package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dimcalc/internal/domain"
)

// set <name> <value> [unit]: store a register.
func setCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value> [unit]",
		Short: "Store a named quantity; without a unit it is dimensionless",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := domain.Operand{Value: args[1]}
			if len(args) == 3 {
				value.Unit = args[2]
			}
			reg, err := e.wire.Calc.Set(cmd.Context(), domain.RegisterName(args[0]), value)
			if err != nil {
				return err
			}
			printRegister(cmd, reg)
			return nil
		},
	}
}

// apply <name> <op> <value> [unit]: update a register in place.
func applyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <name> <op> <value> [unit]",
		Short: "Apply an operation to a register; omit the unit for a unit-less operand",
		Example: `  dimcalc apply distance + 1
  dimcalc apply distance / 5 m/s`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := domain.ParseOp(args[1])
			if err != nil {
				return err
			}
			operand := domain.Operand{Value: args[2]}
			if len(args) == 4 {
				operand.Unit = args[3]
			}
			reg, err := e.wire.Calc.Apply(cmd.Context(), domain.RegisterName(args[0]), op, operand)
			if err != nil {
				return err
			}
			printRegister(cmd, reg)
			return nil
		},
	}
}

// show [name]: print one or every register.
func showCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Print one register, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				reg, err := e.wire.Calc.Get(cmd.Context(), domain.RegisterName(args[0]))
				if err != nil {
					return err
				}
				printRegister(cmd, reg)
				return nil
			}
			regs, err := e.wire.Calc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, reg := range regs {
				printRegister(cmd, reg)
			}
			return nil
		},
	}
}

// rm <name>: delete a register.
func rmCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a register",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.wire.Calc.Delete(cmd.Context(), domain.RegisterName(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}

func printRegister(cmd *cobra.Command, reg domain.Register) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", reg.Name, reg.String())
}
