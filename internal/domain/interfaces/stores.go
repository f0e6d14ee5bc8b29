package interfaces

import domaintypes "dimcalc/internal/domain/types"

// RegisterStore persists named quantities.
type RegisterStore interface {
	SaveRegister(reg domaintypes.Register) error
	LoadRegister(name domaintypes.RegisterName) (domaintypes.Register, bool, error)
	ListRegisters() ([]domaintypes.Register, error)
	DeleteRegister(name domaintypes.RegisterName) (bool, error)
}
