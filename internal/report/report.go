// Package report exports scenario results as a spreadsheet.
package report

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"dimcalc/internal/scenario"
)

// SheetName is the worksheet holding the results.
const SheetName = "Scenario"

var header = []interface{}{
	"step",
	"target",
	"op",
	"operand",
	"result",
	"error",
	"expect_error",
	"ok",
}

// Build lays out one row per step below a header row.
// The caller owns the returned file and must Close it.
func Build(results []scenario.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "header row")
	}

	for i, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		row := []interface{}{
			r.Index,
			r.Target.String(),
			r.Op.Symbol(),
			r.Operand.String(),
			r.Value,
			errText,
			r.ExpectError,
			r.OK(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "row %d", i+2)
		}
	}
	return f, nil
}

// WriteXLSX saves results to path.
func WriteXLSX(path string, results []scenario.Result) error {
	f, err := Build(results)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
