package units

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput        = errors.New("unit string is empty")
	ErrEmptyUnitName     = errors.New("unit name is empty")
	ErrTrailingOperator  = errors.New("unit name is empty; string ends with '*' or '/'")
	ErrDuplicateExponent = errors.New("term has more than one exponent")
	ErrMissingExponent   = errors.New("'^' is not followed by digits")
	ErrExponentRange     = errors.New("exponent out of range")
)

// ParseError reports a malformed unit string. Err is one of the Err* sentinels.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("units: invalid unit string %q at offset %d: %v", e.Input, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
