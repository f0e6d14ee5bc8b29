package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dimcalc/internal/domain"
	"dimcalc/internal/scenario"
)

func execute(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	e := &env{}
	root := newRootCmd(e)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--home", home}, args...))
	err := root.ExecuteContext(context.Background())
	require.NoError(t, e.close())
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "parse", "m/s*g")
	require.NoError(t, err)
	require.Contains(t, out, "m^1*s^-1*g^1")
}

func TestCalcCommand(t *testing.T) {
	home := t.TempDir()

	out, err := execute(t, home, "calc", "10", "m", "/", "5", "m/s")
	require.NoError(t, err)
	require.Equal(t, "2m^0*s^1\n", out)

	out, err = execute(t, home, "calc", "3", "kg", "x", "2")
	require.NoError(t, err)
	require.Equal(t, "6kg^1\n", out)

	_, err = execute(t, home, "calc", "1", "m", "+", "1", "s")
	require.Error(t, err)

	_, err = execute(t, home, "calc", "1", "m", "%", "1", "m")
	require.ErrorIs(t, err, domain.ErrUnknownOp)
}

func TestRegisterCommands(t *testing.T) {
	home := t.TempDir()

	out, err := execute(t, home, "set", "distance", "1", "m")
	require.NoError(t, err)
	require.Equal(t, "distance = 1m^1\n", out)

	out, err = execute(t, home, "apply", "distance", "+", "1")
	require.NoError(t, err)
	require.Equal(t, "distance = 2m^1\n", out)

	out, err = execute(t, home, "show", "distance")
	require.NoError(t, err)
	require.Equal(t, "distance = 2m^1\n", out)

	out, err = execute(t, home, "show")
	require.NoError(t, err)
	require.Equal(t, "distance = 2m^1\n", out)

	_, err = execute(t, home, "rm", "distance")
	require.NoError(t, err)

	_, err = execute(t, home, "show", "distance")
	require.ErrorIs(t, err, domain.ErrRegisterNotFound)
}

func TestDemoCommand(t *testing.T) {
	home := t.TempDir()
	xlsx := filepath.Join(home, "demo.xlsx")

	out, err := execute(t, home, "demo", "--xlsx", xlsx)
	require.NoError(t, err)
	require.Contains(t, out, "#3 distance + 1.0 s => error (expected)")
	require.Contains(t, out, "=> 2.4m^2*s^1")
	require.FileExists(t, xlsx)
}

func TestRunCommandReportsUnexpectedSteps(t *testing.T) {
	home := t.TempDir()
	script := filepath.Join(home, "bad.hcl")
	require.NoError(t, os.WriteFile(script, []byte(`
quantity "d" {
  value = "1"
  unit  = "m"
}

step "d" {
  op    = "add"
  value = "1"
  unit  = "s"
}
`), 0o600))

	_, err := execute(t, home, "run", script)
	require.ErrorIs(t, err, scenario.ErrUnexpectedOutcome)
}
