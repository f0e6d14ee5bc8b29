package interfaces

import (
	"context"

	domaintypes "dimcalc/internal/domain/types"
)

// Calculator evaluates quantity arithmetic for one scalar kind and keeps
// registers in a RegisterStore.
type Calculator interface {
	Kind() string

	// Calc evaluates left op right without touching any register.
	// A left operand without a unit is dimensionless.
	Calc(
		ctx context.Context,
		left domaintypes.Operand,
		op domaintypes.Op,
		right domaintypes.Operand,
	) (string, error)

	Set(
		ctx context.Context,
		name domaintypes.RegisterName,
		value domaintypes.Operand,
	) (domaintypes.Register, error)
	Apply(
		ctx context.Context,
		name domaintypes.RegisterName,
		op domaintypes.Op,
		operand domaintypes.Operand,
	) (domaintypes.Register, error)
	Get(ctx context.Context, name domaintypes.RegisterName) (domaintypes.Register, error)
	List(ctx context.Context) ([]domaintypes.Register, error)
	Delete(ctx context.Context, name domaintypes.RegisterName) error
}
