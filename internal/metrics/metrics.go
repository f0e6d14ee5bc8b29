// Package metrics defines the Prometheus collectors dimcalc records into.
//
// The CLI is short-lived, so nothing is served over HTTP; the registry can be
// written to a node_exporter textfile with WriteTextfile.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"dimcalc/internal/quantity"
	"dimcalc/internal/units"
)

const namespace = "dimcalc"

// Metrics groups the counters. A nil *Metrics records nothing.
type Metrics struct {
	Operations     *prometheus.CounterVec
	UnitMismatches prometheus.Counter
	ParseErrors    prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Quantity operations by operation and outcome.",
		}, []string{"op", "result"}),
		UnitMismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unit_mismatches_total",
			Help:      "Additions and subtractions rejected for unequal units.",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unit_parse_errors_total",
			Help:      "Malformed unit strings.",
		}),
	}
	reg.MustRegister(m.Operations, m.UnitMismatches, m.ParseErrors)
	return m
}

// Observe counts one operation and classifies its error, if any.
func (m *Metrics) Observe(op string, err error) {
	if m == nil {
		return
	}
	if err == nil {
		m.Operations.WithLabelValues(op, "ok").Inc()
		return
	}
	m.Operations.WithLabelValues(op, "error").Inc()

	var mismatch *quantity.UnitMismatchError
	var perr *units.ParseError
	switch {
	case errors.As(err, &mismatch):
		m.UnitMismatches.Inc()
	case errors.As(err, &perr):
		m.ParseErrors.Inc()
	}
}

// WriteTextfile writes everything g gathers to path in the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
