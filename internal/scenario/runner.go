package scenario

import (
	"context"

	"github.com/pkg/errors"

	"dimcalc/internal/ctxlog"
	"dimcalc/internal/domain"
)

// ErrUnexpectedOutcome means at least one step did not end as declared.
var ErrUnexpectedOutcome = errors.New("scenario steps ended unexpectedly")

// Result is the outcome of one step.
type Result struct {
	Index       int
	Target      domain.RegisterName
	Op          domain.Op
	Operand     domain.Operand
	Value       string // rendered quantity after the step; empty on error
	Err         error
	ExpectError bool
}

// OK reports whether the step ended as the script declared.
func (r Result) OK() bool { return (r.Err != nil) == r.ExpectError }

// Runner executes scenarios against a Calculator.
type Runner struct {
	calc domain.Calculator
}

func NewRunner(calc domain.Calculator) *Runner {
	return &Runner{calc: calc}
}

// Run declares the scenario's quantities, then applies every step in order.
// Malformed declarations and unknown operations abort the run; step failures
// are recorded in the results.
func (r *Runner) Run(ctx context.Context, f *File) ([]Result, error) {
	log := ctxlog.FromContext(ctx)

	for _, q := range f.Quantities {
		reg, err := r.calc.Set(ctx, domain.RegisterName(q.Name), domain.Operand{Value: q.Value, Unit: q.Unit})
		if err != nil {
			return nil, errors.Wrapf(err, "quantity %q", q.Name)
		}
		log.Debug("scenario quantity", "name", q.Name, "value", reg.String())
	}

	results := make([]Result, 0, len(f.Steps))
	unexpected := 0
	for i, st := range f.Steps {
		op, err := domain.ParseOp(st.Op)
		if err != nil {
			return results, errors.Wrapf(err, "step %d", i+1)
		}

		res := Result{
			Index:       i + 1,
			Target:      domain.RegisterName(st.Target),
			Op:          op,
			Operand:     domain.Operand{Value: st.Value, Unit: st.Unit},
			ExpectError: st.ExpectError,
		}
		reg, err := r.calc.Apply(ctx, res.Target, op, res.Operand)
		if err != nil {
			res.Err = err
		} else {
			res.Value = reg.String()
		}
		if !res.OK() {
			unexpected++
			log.Warn("scenario step ended unexpectedly", "step", res.Index, "target", st.Target, "err", res.Err)
		}
		results = append(results, res)
	}

	if unexpected > 0 {
		return results, errors.Wrapf(ErrUnexpectedOutcome, "%d of %d steps", unexpected, len(results))
	}
	return results, nil
}
