package scenario

import (
	_ "embed"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pkg/errors"
)

//go:embed demo.hcl
var demoSrc []byte

// File is the decoded form of a scenario script.
type File struct {
	Quantities []*QuantityBlock `hcl:"quantity,block"`
	Steps      []*StepBlock     `hcl:"step,block"`
}

// QuantityBlock declares a named starting quantity.
type QuantityBlock struct {
	Name  string `hcl:"name,label"`
	Value string `hcl:"value"`
	Unit  string `hcl:"unit,optional"`
}

// StepBlock applies one operation to the quantity named by Target.
type StepBlock struct {
	Target      string `hcl:"target,label"`
	Op          string `hcl:"op"`
	Value       string `hcl:"value"`
	Unit        string `hcl:"unit,optional"`
	ExpectError bool   `hcl:"expect_error,optional"`
}

// Decode parses src. The filename extension selects the syntax: ".hcl" for
// native HCL, ".json" for its JSON variant.
func Decode(filename string, src []byte) (*File, error) {
	var f File
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return nil, errors.Wrapf(err, "decode scenario %s", filename)
	}
	return &f, nil
}

// Load reads and decodes the scenario at path.
func Load(path string) (*File, error) {
	var f File
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, errors.Wrapf(err, "load scenario %s", path)
	}
	return &f, nil
}

// Demo returns the built-in scenario: the classic distance walk-through
// ending in m^2*s^1.
func Demo() (*File, error) {
	return Decode("demo.hcl", demoSrc)
}
