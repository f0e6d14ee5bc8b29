package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOp is wrapped by OpError.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrRegisterNotFound means no register exists under the requested name.
	ErrRegisterNotFound = errors.New("register not found")
	// ErrDivisionByZero is returned before a zero divisor reaches the scalar.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrKindMismatch means a stored register was written with another scalar kind.
	ErrKindMismatch = errors.New("register scalar kind differs from the configured kind")
)

// OpError reports an operation string ParseOp does not know.
type OpError struct {
	Op string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("unknown operation %q; want + - * / or add sub mul div", e.Op)
}

func (e *OpError) Unwrap() error { return ErrUnknownOp }
