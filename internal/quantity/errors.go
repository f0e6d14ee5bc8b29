package quantity

import "fmt"

// UnitMismatchError is returned by Add and Sub when the operands carry
// different unit expressions. Left and Right are their canonical strings.
type UnitMismatchError struct {
	Op    string
	Left  string
	Right string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("units %s and %s are not the same", e.Left, e.Right)
}
