package domain

import (
	interfaces "dimcalc/internal/domain/interfaces"
	types "dimcalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	RegisterName = types.RegisterName
	Register     = types.Register
	Op           = types.Op
	Operand      = types.Operand
	OpError      = types.OpError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RegisterStore = interfaces.RegisterStore
	Calculator    = interfaces.Calculator
)

const (
	OpAdd = types.OpAdd
	OpSub = types.OpSub
	OpMul = types.OpMul
	OpDiv = types.OpDiv
)

var (
	ParseOp = types.ParseOp

	ErrUnknownOp        = types.ErrUnknownOp
	ErrRegisterNotFound = types.ErrRegisterNotFound
	ErrDivisionByZero   = types.ErrDivisionByZero
	ErrKindMismatch     = types.ErrKindMismatch
)
