package units_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dimcalc/internal/units"
)

func TestAtom_Equal(t *testing.T) {
	require.True(t, units.NewAtom("m").Equal(units.NewAtom("m")))
	require.False(t, units.NewAtom("m").Equal(units.NewAtom("M")))
	require.False(t, units.NewAtom("m").Equal(units.NewAtom("meter")))
}

func TestTerm_Equal(t *testing.T) {
	require.True(t, units.NewTerm("s", -1).Equal(units.NewTerm("s", -1)))
	require.False(t, units.NewTerm("s", -1).Equal(units.NewTerm("s", 1)))
	require.False(t, units.NewTerm("s", 1).Equal(units.NewTerm("m", 1)))
	require.Equal(t, "s^-1", units.NewTerm("s", -1).String())
}

func TestExpression_EqualIgnoresOrder(t *testing.T) {
	require.True(t, units.MustParse("m*s").Equal(units.MustParse("s*m")))
	require.True(t, units.MustParse("m2/s*kg").Equal(units.MustParse("kg/s*m2")))
	require.False(t, units.MustParse("m*s").Equal(units.MustParse("m/s")))
	require.False(t, units.MustParse("m").Equal(units.MustParse("m*s")))
	require.False(t, units.MustParse("m*s").Equal(units.MustParse("m")))
}

func TestExpression_MulCommutes(t *testing.T) {
	cases := [][2]string{
		{"m", "s"},
		{"m/s", "m"},
		{"kg*m/s2", "s2/kg"},
		{"a*b*c", "c/b"},
	}
	for _, c := range cases {
		a, b := units.MustParse(c[0]), units.MustParse(c[1])
		require.True(t, a.Mul(b).Equal(b.Mul(a)), "%s * %s", c[0], c[1])
	}
}

func TestExpression_DivUndoesMul(t *testing.T) {
	cases := [][2]string{
		{"m", "s"},
		{"m/s", "m"},
		{"kg*m/s2", "m*s"},
	}
	for _, c := range cases {
		a, b := units.MustParse(c[0]), units.MustParse(c[1])
		back := a.Mul(b).Div(b)

		// atoms only present in b stay behind with exponent 0
		for _, term := range back.Terms() {
			orig, ok := a.Lookup(term.Atom.Name())
			if ok {
				require.Equal(t, orig.Exponent, term.Exponent)
			} else {
				require.Zero(t, term.Exponent)
			}
		}
	}

	a, b := units.MustParse("m/s"), units.MustParse("m")
	require.True(t, a.Mul(b).Div(b).Equal(a))
}

func TestExpression_CombineKeepsZero(t *testing.T) {
	e := units.MustParse("m/m")
	require.Equal(t, 2, e.Len())

	merged := units.Expression{}.Mul(e)
	require.Equal(t, []units.Term{units.NewTerm("m", 0)}, merged.Terms())
	require.Equal(t, "m^0", merged.String())
	require.False(t, merged.IsEmpty())
	require.False(t, merged.Equal(units.Expression{}))
}

func TestExpression_CombineOrder(t *testing.T) {
	e := units.MustParse("m2").Div(units.MustParse("m/s"))
	require.Equal(t, "m^1*s^1", e.String())

	e = units.MustParse("m").Div(units.MustParse("m/s"))
	require.Equal(t, "m^0*s^1", e.String())
}

func TestExpression_CombineDoesNotMutate(t *testing.T) {
	a := units.MustParse("m")
	b := units.MustParse("m/s")
	before := a.String()

	_ = a.Mul(b)
	_ = a.Div(b)
	require.Equal(t, before, a.String())
	require.Equal(t, "m^1*s^-1", b.String())

	// appending to a result must not leak into a sibling result
	base := units.NewExpression(units.NewTerm("m", 1))
	x := base.Mul(units.MustParse("s"))
	y := base.Mul(units.MustParse("kg"))
	require.Equal(t, "m^1*s^1", x.String())
	require.Equal(t, "m^1*kg^1", y.String())
}

func TestExpression_Empty(t *testing.T) {
	var e units.Expression
	require.True(t, e.IsEmpty())
	require.Equal(t, "", e.String())
	require.True(t, e.Equal(units.NewExpression()))
	require.True(t, e.Mul(e).IsEmpty())
}

func TestExpression_TermsIsCopy(t *testing.T) {
	e := units.MustParse("m")
	ts := e.Terms()
	ts[0] = units.NewTerm("s", 3)
	require.Equal(t, "m^1", e.String())
}

func TestExpression_JSON(t *testing.T) {
	e := units.MustParse("m").Div(units.MustParse("m/s"))

	b, err := json.Marshal(e)
	require.NoError(t, err)
	require.JSONEq(t, `[{"atom":"m","exp":0},{"atom":"s","exp":1}]`, string(b))

	var back units.Expression
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, e.Terms(), back.Terms())

	require.ErrorIs(t, json.Unmarshal([]byte(`[{"atom":"","exp":1}]`), &back), units.ErrEmptyUnitName)
}

func TestExpression_EqualRepeatedAtoms(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"m*m", "m*s", false},
		{"m*m*s", "m*s*s", false},
		{"m*m", "m2", true},
		{"m*s*m", "s*m2", true},
		{"m/m", "m0", true},
		{"m*s", "s*m", true},
		{"m2/s*kg", "kg/s*m2", true},
		{"m", "m*s", false},
	}
	for _, tt := range tests {
		a, b := units.MustParse(tt.a), units.MustParse(tt.b)
		require.Equal(t, tt.want, a.Equal(b), "%s == %s", tt.a, tt.b)
		require.Equal(t, tt.want, b.Equal(a), "%s == %s", tt.b, tt.a)
	}

	require.False(t, units.MustParse("m/m").Equal(units.Expression{}))
	require.False(t, units.Expression{}.Equal(units.MustParse("m/m")))
}

func TestExpression_CombineMergesRepeatedAtoms(t *testing.T) {
	tests := []struct {
		a, b string
		div  bool
		want string
	}{
		{"m*m", "m", false, "m^3"},
		{"m*m", "m", true, "m^1"},
		{"m*s*m", "s", false, "m^2*s^2"},
		{"m/m", "s", false, "m^0*s^1"},
		{"kg", "m*m", false, "kg^1*m^2"},
		{"kg", "m*m", true, "kg^1*m^-2"},
	}
	for _, tt := range tests {
		a, b := units.MustParse(tt.a), units.MustParse(tt.b)
		got := a.Combine(b, tt.div)
		require.Equal(t, tt.want, got.String(), "%s combine %s (invert=%v)", tt.a, tt.b, tt.div)

		// raw parse results are left as written
		require.Equal(t, units.MustParse(tt.a).Terms(), a.Terms())
	}
}
