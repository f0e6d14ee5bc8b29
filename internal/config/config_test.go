package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"dimcalc/internal/config"
)

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(config.FlagHome, "", "")
	fs.String(config.FlagScalar, "", "")
	fs.String(config.FlagEnv, "", "")
	fs.String(config.FlagMetricsFile, "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, config.ScalarFloat, c.Scalar)
	require.Equal(t, "prod", c.Env)
	require.NotEmpty(t, c.Home)
	require.Empty(t, c.MetricsFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dimcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scalar: decimal\nenv: dev\nhome: /tmp/from-file\n"), 0o600))

	t.Setenv("DIMCALC_ENV", "staging")

	c, err := config.Load(path, flagSet())
	require.NoError(t, err)
	require.Equal(t, config.ScalarDecimal, c.Scalar)
	require.Equal(t, "staging", c.Env)
	require.Equal(t, "/tmp/from-file", c.Home)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("DIMCALC_SCALAR", "float")

	fs := flagSet()
	require.NoError(t, fs.Parse([]string{"--scalar", "DECIMAL", "--metrics-file", "/tmp/m.prom"}))

	c, err := config.Load("", fs)
	require.NoError(t, err)
	require.Equal(t, config.ScalarDecimal, c.Scalar)
	require.Equal(t, "/tmp/m.prom", c.MetricsFile)
}

func TestLoad_UnknownScalar(t *testing.T) {
	t.Setenv("DIMCALC_SCALAR", "complex")

	_, err := config.Load("", nil)
	require.ErrorIs(t, err, config.ErrUnknownScalar)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}
