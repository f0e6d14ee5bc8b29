package store

import (
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"dimcalc/internal/domain"
)

const registersFilename = "registers.json"

// ErrChecksum means the register file was modified outside dimcalc or is truncated.
var ErrChecksum = errors.New("register file checksum mismatch")

type registerFile struct {
	Registers map[domain.RegisterName]domain.Register `json:"registers"`
	Checksum  string                                  `json:"checksum"`
}

// RegisterFileStore persists registers to a single JSON file under dir.
type RegisterFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewRegisterFileStore returns a RegisterFileStore rooted at dir.
func NewRegisterFileStore(dir string) *RegisterFileStore {
	return &RegisterFileStore{dir: dir}
}

// Path returns the location of the register file.
func (s *RegisterFileStore) Path() string {
	return filepath.Join(s.dir, registersFilename)
}

// SaveRegister creates or replaces reg.
func (s *RegisterFileStore) SaveRegister(reg domain.Register) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs, err := s.load()
	if err != nil {
		return err
	}
	regs[reg.Name] = reg
	return s.store(regs)
}

// LoadRegister retrieves the register called name.
func (s *RegisterFileStore) LoadRegister(name domain.RegisterName) (domain.Register, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs, err := s.load()
	if err != nil {
		return domain.Register{}, false, err
	}
	reg, ok := regs[name]
	return reg, ok, nil
}

// ListRegisters returns every register sorted by name.
func (s *RegisterFileStore) ListRegisters() ([]domain.Register, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs, err := s.load()
	if err != nil {
		return nil, err
	}
	return sortedRegisters(regs), nil
}

// DeleteRegister removes name and reports whether it existed.
func (s *RegisterFileStore) DeleteRegister(name domain.RegisterName) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := regs[name]; !ok {
		return false, nil
	}
	delete(regs, name)
	return true, s.store(regs)
}

func (s *RegisterFileStore) load() (map[domain.RegisterName]domain.Register, error) {
	var f registerFile
	found, err := readJSON(s.Path(), &f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.Path())
	}
	if !found || f.Registers == nil {
		return map[domain.RegisterName]domain.Register{}, nil
	}

	sum, err := checksum(f.Registers)
	if err != nil {
		return nil, err
	}
	if sum != f.Checksum {
		return nil, errors.Wrapf(ErrChecksum, "%s", s.Path())
	}
	return f.Registers, nil
}

func (s *RegisterFileStore) store(regs map[domain.RegisterName]domain.Register) error {
	sum, err := checksum(regs)
	if err != nil {
		return err
	}
	if err := writeJSON(s.Path(), registerFile{Registers: regs, Checksum: sum}, 0o600); err != nil {
		return errors.Wrapf(err, "write %s", s.Path())
	}
	return nil
}

// checksum hashes the compact JSON form; map keys marshal sorted.
func checksum(regs map[domain.RegisterName]domain.Register) (string, error) {
	b, err := json.Marshal(regs)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func sortedRegisters(regs map[domain.RegisterName]domain.Register) []domain.Register {
	out := make([]domain.Register, 0, len(regs))
	for _, r := range regs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Compile-time assertion that RegisterFileStore implements domain.RegisterStore.
var _ domain.RegisterStore = (*RegisterFileStore)(nil)
