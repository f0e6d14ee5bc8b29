package commands

import (
	"github.com/spf13/cobra"

	"dimcalc/internal/app"
	"dimcalc/internal/config"
)

// env holds state shared by the root command and its subcommands.
type env struct {
	cfgFile string
	wire    *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	e := &env{}
	root := newRootCmd(e)
	err := root.Execute()
	if cerr := e.close(); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:          "dimcalc",
		Short:        "Unit-checked arithmetic on physical quantities",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(e.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			e.wire = w
			cmd.SetContext(w.Context(cmd.Context()))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&e.cfgFile, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().String(config.FlagHome, "", "register directory (default ~/.dimcalc)")
	root.PersistentFlags().String(config.FlagScalar, "", "scalar kind: float or decimal (default float)")
	root.PersistentFlags().String(config.FlagEnv, "", "environment; dev enables debug logs")
	root.PersistentFlags().String(config.FlagMetricsFile, "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		parseCmd(),
		calcCmd(e),
		setCmd(e),
		applyCmd(e),
		showCmd(e),
		rmCmd(e),
		runCmd(e),
		demoCmd(e),
	)
	return root
}

func (e *env) close() error {
	if e.wire == nil {
		return nil
	}
	return e.wire.Close()
}
