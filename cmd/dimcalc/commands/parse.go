package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dimcalc/internal/units"
)

// parse <unit>...: print the canonical form and terms of each unit string.
func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <unit>...",
		Short: "Show how unit strings are parsed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, arg := range args {
				e, err := units.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t=>\t%s\n", arg, e.String())
				for _, t := range e.Terms() {
					fmt.Fprintf(tw, "\t%s\t%d\n", t.Atom.Name(), t.Exponent)
				}
			}
			return tw.Flush()
		},
	}
}
