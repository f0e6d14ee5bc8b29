package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"dimcalc/internal/config"
	"dimcalc/internal/ctxlog"
	"dimcalc/internal/domain"
	"dimcalc/internal/logger"
	"dimcalc/internal/metrics"
	"dimcalc/internal/quantity"
	"dimcalc/internal/scenario"
	"dimcalc/internal/services/calc"
	"dimcalc/internal/store"
)

// Wire bundles the stores, services and observability plumbing for the CLI.
type Wire struct {
	Config    config.Config
	Logger    *slog.Logger
	Registry  *prometheus.Registry
	Metrics   *metrics.Metrics
	Registers domain.RegisterStore
	Calc      domain.Calculator
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut.
func NewWire(cfg config.Config, logOut io.Writer) (*Wire, error) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// File-based register store under the configured home
	registers := store.NewRegisterFileStore(cfg.Home)

	c, err := newCalculator(cfg.Scalar, registers, m)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Config:    cfg,
		Logger:    logger.New(cfg.Env, logOut),
		Registry:  registry,
		Metrics:   m,
		Registers: registers,
		Calc:      c,
	}, nil
}

// Context returns ctx carrying the wire's logger.
func (w *Wire) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, w.Logger)
}

// ScenarioRunner returns a runner over a fresh in-memory store, so scenarios
// never read or modify saved registers. Metrics are shared with Calc.
func (w *Wire) ScenarioRunner() (*scenario.Runner, error) {
	c, err := newCalculator(w.Config.Scalar, store.NewMemoryStore(), w.Metrics)
	if err != nil {
		return nil, err
	}
	return scenario.NewRunner(c), nil
}

// Close flushes metrics to the configured textfile, if any.
func (w *Wire) Close() error {
	if w.Config.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(w.Config.MetricsFile, w.Registry); err != nil {
		return errors.Wrapf(err, "write metrics %s", w.Config.MetricsFile)
	}
	return nil
}

func newCalculator(scalar string, regs domain.RegisterStore, m *metrics.Metrics) (domain.Calculator, error) {
	switch scalar {
	case config.ScalarFloat:
		return calc.New(quantity.FloatKind, regs, m), nil
	case config.ScalarDecimal:
		return calc.New(quantity.DecimalKind, regs, m), nil
	}
	return nil, errors.Wrapf(config.ErrUnknownScalar, "%q", scalar)
}
