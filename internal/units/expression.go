package units

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Expression is a product of unit terms, e.g. m^1*s^-1.
//
// Terms keep the order in which they were parsed or combined. Equality
// ignores that order. The zero value is the empty (dimensionless) expression.
type Expression struct {
	terms []Term
}

// NewExpression builds an expression from terms as given. Terms sharing an
// atom are not merged; use Mul on an empty expression for that.
func NewExpression(terms ...Term) Expression {
	if len(terms) == 0 {
		return Expression{}
	}
	return Expression{terms: append([]Term(nil), terms...)}
}

// Terms returns a copy of the terms in internal order.
func (e Expression) Terms() []Term {
	return append([]Term(nil), e.terms...)
}

// Len returns the number of terms, zero-exponent terms included.
func (e Expression) Len() int { return len(e.terms) }

// IsEmpty reports whether the expression has no terms at all.
// {m:0} is not empty.
func (e Expression) IsEmpty() bool { return len(e.terms) == 0 }

// Lookup returns the first term for the named atom.
func (e Expression) Lookup(name string) (Term, bool) {
	if i := e.index(NewAtom(name)); i >= 0 {
		return e.terms[i], true
	}
	return Term{}, false
}

func (e Expression) index(a Atom) int {
	for i, t := range e.terms {
		if t.Atom.Equal(a) {
			return i
		}
	}
	return -1
}

// Combine merges b into e and returns the result. Terms of e that repeat an
// atom are merged first, then for each term of b the exponent is added to
// the matching term (subtracted when invert is set), or the term is appended
// when no such atom exists yet. The result holds at most one term per atom,
// in first-seen order. Exponents that reach zero stay.
func (e Expression) Combine(b Expression, invert bool) Expression {
	res := Expression{terms: make([]Term, 0, len(e.terms)+len(b.terms))}
	res.fold(e.terms, false)
	res.fold(b.terms, invert)
	if len(res.terms) == 0 {
		return Expression{}
	}
	return res
}

func (e *Expression) fold(terms []Term, invert bool) {
	for _, t := range terms {
		exp := t.Exponent
		if invert {
			exp = -exp
		}
		if i := e.index(t.Atom); i >= 0 {
			e.terms[i].Exponent += exp
			continue
		}
		e.terms = append(e.terms, Term{Atom: t.Atom, Exponent: exp})
	}
}

// Mul returns the unit expression of a product e·b.
func (e Expression) Mul(b Expression) Expression { return e.Combine(b, false) }

// Div returns the unit expression of a quotient e/b.
func (e Expression) Div(b Expression) Expression { return e.Combine(b, true) }

// Equal reports whether e and b hold the same terms, in any order.
//
// Both sides are compared in merged form (one term per atom), so an
// unmerged Parse result such as "m*m" equals "m2" and never "m*s".
func (e Expression) Equal(b Expression) bool {
	e, b = e.merged(), b.merged()
	if len(e.terms) != len(b.terms) {
		return false
	}
	for _, t := range e.terms {
		if !b.contains(t) {
			return false
		}
	}
	return true
}

// merged returns e with repeated atoms folded together. e is returned as is
// when no atom repeats.
func (e Expression) merged() Expression {
	for i, t := range e.terms {
		for _, o := range e.terms[i+1:] {
			if o.Atom.Equal(t.Atom) {
				return Expression{}.Combine(e, false)
			}
		}
	}
	return e
}

func (e Expression) contains(t Term) bool {
	for _, o := range e.terms {
		if o.Equal(t) {
			return true
		}
	}
	return false
}

// String renders the expression as atom^exp joined by "*", in internal order.
// The empty expression renders as "".
func (e Expression) String() string {
	if len(e.terms) == 0 {
		return ""
	}
	parts := make([]string, len(e.terms))
	for i, t := range e.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, "*")
}

type jsonTerm struct {
	Atom string `json:"atom"`
	Exp  int    `json:"exp"`
}

// MarshalJSON encodes the expression as an ordered list of {atom, exp}.
func (e Expression) MarshalJSON() ([]byte, error) {
	out := make([]jsonTerm, len(e.terms))
	for i, t := range e.terms {
		out[i] = jsonTerm{Atom: t.Atom.name, Exp: t.Exponent}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the list form written by MarshalJSON.
func (e *Expression) UnmarshalJSON(b []byte) error {
	var in []jsonTerm
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	terms := make([]Term, 0, len(in))
	for i, t := range in {
		if t.Atom == "" {
			return fmt.Errorf("units: term %d: %w", i, ErrEmptyUnitName)
		}
		terms = append(terms, NewTerm(t.Atom, t.Exp))
	}
	*e = NewExpression(terms...)
	return nil
}
