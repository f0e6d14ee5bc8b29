package types

import "strings"

// Op is an arithmetic operation on quantities.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

// ParseOp accepts either the operator symbol or the operation name.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add":
		return OpAdd, nil
	case "-", "sub":
		return OpSub, nil
	case "*", "x", "mul":
		return OpMul, nil
	case "/", "div":
		return OpDiv, nil
	}
	return "", &OpError{Op: s}
}

// Symbol returns the operator character.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Operand is the textual right-hand side of an operation. An empty Unit
// means a bare scalar: the target's units are left as they are.
type Operand struct {
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// IsScalar reports whether the operand carries no unit string.
func (o Operand) IsScalar() bool { return o.Unit == "" }

// String renders the operand as "value unit".
func (o Operand) String() string {
	if o.IsScalar() {
		return o.Value
	}
	return o.Value + " " + o.Unit
}
