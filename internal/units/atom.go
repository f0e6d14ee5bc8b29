package units

// Atom is an indivisible named base unit such as "m" or "s".
// Two atoms are the same unit iff their names match exactly.
type Atom struct {
	name string
}

// NewAtom returns the atom called name.
func NewAtom(name string) Atom { return Atom{name: name} }

// Name returns the unit name.
func (a Atom) Name() string { return a.name }

// Equal reports whether a and other name the same unit.
// Derived units (an atom expanding into other atoms) are not resolved.
func (a Atom) Equal(other Atom) bool { return a.name == other.name }

// String returns the unit name.
func (a Atom) String() string { return a.name }
