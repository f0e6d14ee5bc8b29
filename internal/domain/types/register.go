package types

import (
	"time"

	"dimcalc/internal/units"
)

// RegisterName names a stored quantity.
type RegisterName string

// String returns the string form of the register name.
func (n RegisterName) String() string { return string(n) }

// Register is a named quantity kept between invocations. Value is the
// scalar's string form for Kind; Units keeps its term order and zero terms.
type Register struct {
	Name      RegisterName     `json:"name"`
	Kind      string           `json:"kind"`
	Value     string           `json:"value"`
	Units     units.Expression `json:"units"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// String renders the register the way a quantity renders, e.g. "2m^1".
func (r Register) String() string { return r.Value + r.Units.String() }
