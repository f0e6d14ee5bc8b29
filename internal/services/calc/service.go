package calc

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"dimcalc/internal/ctxlog"
	"dimcalc/internal/domain"
	"dimcalc/internal/metrics"
	"dimcalc/internal/quantity"
	"dimcalc/internal/units"
)

// Service applies operations for one scalar kind.
//
// High-level flow for Apply:
//   - load the register and check it was written with the same scalar kind
//   - rebuild the quantity from the stored value and unit expression
//   - apply the operation (a unit-less operand only touches the value)
//   - persist the result under the same name
type Service[T quantity.Scalar[T]] struct {
	kind    quantity.Kind[T]
	regs    domain.RegisterStore
	metrics *metrics.Metrics
	now     func() time.Time
}

var errEmptyName = errors.New("register name is empty")

// New constructs a calculator for kind backed by regs. m may be nil.
func New[T quantity.Scalar[T]](kind quantity.Kind[T], regs domain.RegisterStore, m *metrics.Metrics) *Service[T] {
	return &Service[T]{kind: kind, regs: regs, metrics: m, now: time.Now}
}

// Kind returns the scalar kind name, e.g. "float".
func (s *Service[T]) Kind() string { return s.kind.Name }

// Calc evaluates left op right.
func (s *Service[T]) Calc(ctx context.Context, left domain.Operand, op domain.Op, right domain.Operand) (string, error) {
	res, err := s.calc(left, op, right)
	s.metrics.Observe(string(op), err)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("calc failed",
			"left", left.String(), "op", op, "right", right.String(), "err", err)
		return "", err
	}
	ctxlog.FromContext(ctx).Debug("calc",
		"left", left.String(), "op", op, "right", right.String(), "result", res.String())
	return res.String(), nil
}

func (s *Service[T]) calc(left domain.Operand, op domain.Op, right domain.Operand) (quantity.Quantity[T], error) {
	q, err := s.quantity(left)
	if err != nil {
		return quantity.Quantity[T]{}, err
	}
	return s.apply(q, op, right)
}

// Set stores value under name, replacing any previous register.
func (s *Service[T]) Set(ctx context.Context, name domain.RegisterName, value domain.Operand) (domain.Register, error) {
	reg, err := s.set(name, value)
	s.metrics.Observe("set", err)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("set failed", "register", name, "value", value.String(), "err", err)
		return domain.Register{}, err
	}
	ctxlog.FromContext(ctx).Debug("set", "register", name, "result", reg.String())
	return reg, nil
}

func (s *Service[T]) set(name domain.RegisterName, value domain.Operand) (domain.Register, error) {
	if name == "" {
		return domain.Register{}, errEmptyName
	}
	q, err := s.quantity(value)
	if err != nil {
		return domain.Register{}, err
	}
	return s.save(name, q)
}

// Apply performs register op operand and stores the result back under name.
func (s *Service[T]) Apply(ctx context.Context, name domain.RegisterName, op domain.Op, operand domain.Operand) (domain.Register, error) {
	reg, err := s.applyRegister(name, op, operand)
	s.metrics.Observe(string(op), err)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("apply failed",
			"register", name, "op", op, "operand", operand.String(), "err", err)
		return domain.Register{}, err
	}
	ctxlog.FromContext(ctx).Debug("apply",
		"register", name, "op", op, "operand", operand.String(), "result", reg.String())
	return reg, nil
}

func (s *Service[T]) applyRegister(name domain.RegisterName, op domain.Op, operand domain.Operand) (domain.Register, error) {
	reg, err := s.load(name)
	if err != nil {
		return domain.Register{}, err
	}
	q, err := s.fromRegister(reg)
	if err != nil {
		return domain.Register{}, err
	}
	res, err := s.apply(q, op, operand)
	if err != nil {
		return domain.Register{}, err
	}
	return s.save(name, res)
}

// Get returns the register called name.
func (s *Service[T]) Get(_ context.Context, name domain.RegisterName) (domain.Register, error) {
	return s.load(name)
}

// List returns all registers sorted by name.
func (s *Service[T]) List(_ context.Context) ([]domain.Register, error) {
	return s.regs.ListRegisters()
}

// Delete removes the register called name.
func (s *Service[T]) Delete(ctx context.Context, name domain.RegisterName) error {
	ok, err := s.regs.DeleteRegister(name)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(domain.ErrRegisterNotFound, "%q", name)
	}
	ctxlog.FromContext(ctx).Debug("delete", "register", name)
	return nil
}

// apply runs op with operand on q. A zero divisor is rejected here since
// some scalars (decimal) panic on it.
func (s *Service[T]) apply(q quantity.Quantity[T], op domain.Op, operand domain.Operand) (quantity.Quantity[T], error) {
	v, err := s.kind.Parse(operand.Value)
	if err != nil {
		return quantity.Quantity[T]{}, err
	}
	if op == domain.OpDiv && s.kind.IsZero(v) {
		return quantity.Quantity[T]{}, domain.ErrDivisionByZero
	}

	if operand.IsScalar() {
		switch op {
		case domain.OpAdd:
			return q.AddScalar(v), nil
		case domain.OpSub:
			return q.SubScalar(v), nil
		case domain.OpMul:
			return q.MulScalar(v), nil
		case domain.OpDiv:
			return q.DivScalar(v), nil
		}
		return quantity.Quantity[T]{}, &domain.OpError{Op: string(op)}
	}

	rhs, err := quantity.New(v, operand.Unit)
	if err != nil {
		return quantity.Quantity[T]{}, err
	}
	switch op {
	case domain.OpAdd:
		return q.Add(rhs)
	case domain.OpSub:
		return q.Sub(rhs)
	case domain.OpMul:
		return q.Mul(rhs), nil
	case domain.OpDiv:
		return q.Div(rhs), nil
	}
	return quantity.Quantity[T]{}, &domain.OpError{Op: string(op)}
}

// quantity builds a quantity from an operand; no unit means dimensionless.
func (s *Service[T]) quantity(o domain.Operand) (quantity.Quantity[T], error) {
	v, err := s.kind.Parse(o.Value)
	if err != nil {
		return quantity.Quantity[T]{}, err
	}
	if o.IsScalar() {
		return quantity.FromExpression(v, units.Expression{}), nil
	}
	return quantity.New(v, o.Unit)
}

func (s *Service[T]) load(name domain.RegisterName) (domain.Register, error) {
	reg, ok, err := s.regs.LoadRegister(name)
	if err != nil {
		return domain.Register{}, err
	}
	if !ok {
		return domain.Register{}, errors.Wrapf(domain.ErrRegisterNotFound, "%q", name)
	}
	return reg, nil
}

func (s *Service[T]) fromRegister(reg domain.Register) (quantity.Quantity[T], error) {
	if reg.Kind != s.kind.Name {
		return quantity.Quantity[T]{}, errors.Wrapf(domain.ErrKindMismatch,
			"%q holds %s, configured %s", reg.Name, reg.Kind, s.kind.Name)
	}
	v, err := s.kind.Parse(reg.Value)
	if err != nil {
		return quantity.Quantity[T]{}, errors.Wrapf(err, "register %q", reg.Name)
	}
	return quantity.FromExpression(v, reg.Units), nil
}

func (s *Service[T]) save(name domain.RegisterName, q quantity.Quantity[T]) (domain.Register, error) {
	reg := domain.Register{
		Name:      name,
		Kind:      s.kind.Name,
		Value:     q.Value().String(),
		Units:     q.Units(),
		UpdatedAt: s.now().UTC(),
	}
	if err := s.regs.SaveRegister(reg); err != nil {
		return domain.Register{}, err
	}
	return reg, nil
}

var _ domain.Calculator = (*Service[quantity.Float])(nil)
