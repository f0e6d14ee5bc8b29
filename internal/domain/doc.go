// Package domain defines the register model and the contracts shared by the
// CLI, the calculator service and the stores. It contains plain types and
// interfaces only; the unit engine itself lives in internal/units.
package domain
