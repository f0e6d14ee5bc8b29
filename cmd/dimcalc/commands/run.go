package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dimcalc/internal/report"
	"dimcalc/internal/scenario"
)

// run <script.hcl>: execute a scenario script.
func runCmd(e *env) *cobra.Command {
	var xlsx string
	cmd := &cobra.Command{
		Use:   "run <script.hcl>",
		Short: "Execute an HCL scenario script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			return runScenario(cmd, e, f, xlsx)
		},
	}
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "also write the results to this .xlsx file")
	return cmd
}

// demo: execute the built-in scenario.
func demoCmd(e *env) *cobra.Command {
	var xlsx string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in distance scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := scenario.Demo()
			if err != nil {
				return err
			}
			return runScenario(cmd, e, f, xlsx)
		},
	}
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "also write the results to this .xlsx file")
	return cmd
}

func runScenario(cmd *cobra.Command, e *env, f *scenario.File, xlsx string) error {
	runner, err := e.wire.ScenarioRunner()
	if err != nil {
		return err
	}
	results, runErr := runner.Run(cmd.Context(), f)
	printResults(cmd.OutOrStdout(), results)

	if xlsx != "" && len(results) > 0 {
		if err := report.WriteXLSX(xlsx, results); err != nil {
			return err
		}
	}
	return runErr
}

func printResults(w io.Writer, results []scenario.Result) {
	for _, r := range results {
		line := fmt.Sprintf("#%d %s %s %s", r.Index, r.Target, r.Op.Symbol(), r.Operand)
		switch {
		case r.Err != nil && r.ExpectError:
			fmt.Fprintf(w, "%s => error (expected): %v\n", line, r.Err)
		case r.Err != nil:
			fmt.Fprintf(w, "%s => error: %v\n", line, r.Err)
		case r.ExpectError:
			fmt.Fprintf(w, "%s => %s (expected an error)\n", line, r.Value)
		default:
			fmt.Fprintf(w, "%s => %s\n", line, r.Value)
		}
	}
}
