package report_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dimcalc/internal/domain"
	"dimcalc/internal/report"
	"dimcalc/internal/scenario"
)

var results = []scenario.Result{
	{
		Index:   1,
		Target:  "distance",
		Op:      domain.OpMul,
		Operand: domain.Operand{Value: "1", Unit: "m"},
		Value:   "2m^2",
	},
	{
		Index:       2,
		Target:      "distance",
		Op:          domain.OpAdd,
		Operand:     domain.Operand{Value: "1", Unit: "s"},
		Err:         errors.New("units m^2 and s^1 are not the same"),
		ExpectError: true,
	},
}

func TestBuild(t *testing.T) {
	f, err := report.Build(results)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"step", "target", "op", "operand", "result", "error", "expect_error", "ok"}, rows[0])
	require.Equal(t, []string{"1", "distance", "*", "1 m", "2m^2", "", "FALSE", "TRUE"}, rows[1])
	require.Equal(t, "units m^2 and s^1 are not the same", rows[2][5])
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, report.WriteXLSX(path, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue(report.SheetName, "E2")
	require.NoError(t, err)
	require.Equal(t, "2m^2", v)
}
