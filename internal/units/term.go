package units

import "strconv"

// Term is an atom raised to an integer exponent.
type Term struct {
	Atom     Atom
	Exponent int
}

// NewTerm returns name^exp.
func NewTerm(name string, exp int) Term {
	return Term{Atom: NewAtom(name), Exponent: exp}
}

// Equal reports whether both the atom and the exponent match.
func (t Term) Equal(other Term) bool {
	return t.Exponent == other.Exponent && t.Atom.Equal(other.Atom)
}

// String renders the term as name^exp.
func (t Term) String() string {
	return t.Atom.name + "^" + strconv.Itoa(t.Exponent)
}
