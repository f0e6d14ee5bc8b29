package store

import (
	"sync"

	"dimcalc/internal/domain"
)

// MemoryStore keeps registers in memory only. Scenario runs use it so that
// scripts never touch the register file.
type MemoryStore struct {
	mu   sync.RWMutex
	regs map[domain.RegisterName]domain.Register
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{regs: make(map[domain.RegisterName]domain.Register)}
}

func (s *MemoryStore) SaveRegister(reg domain.Register) error {
	s.mu.Lock()
	s.regs[reg.Name] = reg
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadRegister(name domain.RegisterName) (domain.Register, bool, error) {
	s.mu.RLock()
	reg, ok := s.regs[name]
	s.mu.RUnlock()
	return reg, ok, nil
}

func (s *MemoryStore) ListRegisters() ([]domain.Register, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedRegisters(s.regs), nil
}

func (s *MemoryStore) DeleteRegister(name domain.RegisterName) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.regs[name]
	delete(s.regs, name)
	return ok, nil
}

var _ domain.RegisterStore = (*MemoryStore)(nil)
