package quantity

import (
	"strconv"

	sdkmath "cosmossdk.io/math"
	"github.com/pkg/errors"
)

// Scalar is the arithmetic a quantity's value must support.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	String() string
}

// Float is a float64 scalar.
type Float float64

func (f Float) Add(o Float) Float { return f + o }
func (f Float) Sub(o Float) Float { return f - o }
func (f Float) Mul(o Float) Float { return f * o }
func (f Float) Quo(o Float) Float { return f / o }

// String uses the shortest representation that parses back to f.
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Kind describes a scalar type to code that only handles strings:
// the register store, the scenario runner and the CLI.
type Kind[T Scalar[T]] struct {
	Name   string
	Parse  func(string) (T, error)
	IsZero func(T) bool
}

// FloatKind is the float64 scalar kind.
var FloatKind = Kind[Float]{
	Name: "float",
	Parse: func(s string) (Float, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid float %q", s)
		}
		return Float(v), nil
	},
	IsZero: func(f Float) bool { return f == 0 },
}

// DecimalKind is the fixed-point decimal scalar kind (18 fractional digits).
var DecimalKind = Kind[sdkmath.LegacyDec]{
	Name: "decimal",
	Parse: func(s string) (sdkmath.LegacyDec, error) {
		d, err := sdkmath.LegacyNewDecFromStr(s)
		if err != nil {
			return sdkmath.LegacyDec{}, errors.Wrapf(err, "invalid decimal %q", s)
		}
		return d, nil
	},
	IsZero: func(d sdkmath.LegacyDec) bool { return d.IsZero() },
}
