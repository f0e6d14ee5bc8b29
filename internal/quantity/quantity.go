package quantity

import "dimcalc/internal/units"

// Quantity is a scalar value tagged with a unit expression.
// Every operation returns a new Quantity; none modifies its operands.
type Quantity[T Scalar[T]] struct {
	value T
	units units.Expression
}

// New parses unit and pairs it with value. Repeated atoms are merged, so
// "m/m" gives {m:0} and "m*m" gives {m:2}.
func New[T Scalar[T]](value T, unit string) (Quantity[T], error) {
	e, err := units.Parse(unit)
	if err != nil {
		return Quantity[T]{}, err
	}
	return FromExpression(value, e), nil
}

// MustNew is like New but panics on a malformed unit string.
func MustNew[T Scalar[T]](value T, unit string) Quantity[T] {
	q, err := New(value, unit)
	if err != nil {
		panic(err)
	}
	return q
}

// FromExpression pairs value with e, merging repeated atoms.
// An empty expression gives a dimensionless quantity.
func FromExpression[T Scalar[T]](value T, e units.Expression) Quantity[T] {
	return Quantity[T]{value: value, units: units.Expression{}.Mul(e)}
}

// Value returns the bare scalar, dropping the units.
func (q Quantity[T]) Value() T { return q.value }

// Units returns the unit expression.
func (q Quantity[T]) Units() units.Expression { return q.units }

// Add returns q+o. Units must be equal; the result keeps q's term order.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	if err := q.sameUnits("add", o); err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: q.value.Add(o.value), units: q.units}, nil
}

// Sub returns q-o. Units must be equal; the result keeps q's term order.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	if err := q.sameUnits("sub", o); err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: q.value.Sub(o.value), units: q.units}, nil
}

// Mul returns q·o with combined units.
func (q Quantity[T]) Mul(o Quantity[T]) Quantity[T] {
	return Quantity[T]{value: q.value.Mul(o.value), units: q.units.Mul(o.units)}
}

// Div returns q/o with combined units.
func (q Quantity[T]) Div(o Quantity[T]) Quantity[T] {
	return Quantity[T]{value: q.value.Quo(o.value), units: q.units.Div(o.units)}
}

// AddScalar adds v to the value; the units are unchanged.
func (q Quantity[T]) AddScalar(v T) Quantity[T] {
	return Quantity[T]{value: q.value.Add(v), units: q.units}
}

// SubScalar subtracts v from the value; the units are unchanged.
func (q Quantity[T]) SubScalar(v T) Quantity[T] {
	return Quantity[T]{value: q.value.Sub(v), units: q.units}
}

// MulScalar multiplies the value by v; the units are unchanged.
func (q Quantity[T]) MulScalar(v T) Quantity[T] {
	return Quantity[T]{value: q.value.Mul(v), units: q.units}
}

// DivScalar divides the value by v; the units are unchanged.
func (q Quantity[T]) DivScalar(v T) Quantity[T] {
	return Quantity[T]{value: q.value.Quo(v), units: q.units}
}

// String renders the value immediately followed by the units, e.g. "2m^1".
func (q Quantity[T]) String() string {
	return q.value.String() + q.units.String()
}

func (q Quantity[T]) sameUnits(op string, o Quantity[T]) error {
	if q.units.Equal(o.units) {
		return nil
	}
	return &UnitMismatchError{Op: op, Left: q.units.String(), Right: o.units.String()}
}
