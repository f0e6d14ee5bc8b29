package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrUnknownScalar means the scalar setting names no supported kind.
var ErrUnknownScalar = errors.New("unknown scalar kind")

// Scalar kinds.
const (
	ScalarFloat   = "float"
	ScalarDecimal = "decimal"
)

// Flag names bound to configuration keys.
const (
	FlagHome        = "home"
	FlagScalar      = "scalar"
	FlagEnv         = "env"
	FlagMetricsFile = "metrics-file"
)

type Config struct {
	Home        string `mapstructure:"home"`
	Scalar      string `mapstructure:"scalar"`
	Env         string `mapstructure:"env"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Load merges defaults, an optional config file at path, DIMCALC_* environment
// variables and any flags set in flags, in increasing priority.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("home", defaultHome())
	v.SetDefault("scalar", ScalarFloat)
	v.SetDefault("env", "prod")
	v.SetDefault("metrics_file", "")

	v.SetEnvPrefix("DIMCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, flag := range map[string]string{
			"home":         FlagHome,
			"scalar":       FlagScalar,
			"env":          FlagEnv,
			"metrics_file": FlagMetricsFile,
		} {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, errors.Wrapf(err, "bind flag %s", flag)
				}
			}
		}
	}

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, errors.Wrapf(err, "read config %s", path)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "decode config")
	}

	c.Scalar = strings.ToLower(c.Scalar)
	switch c.Scalar {
	case ScalarFloat, ScalarDecimal:
	default:
		return c, errors.Wrapf(ErrUnknownScalar, "%q (want %s or %s)", c.Scalar, ScalarFloat, ScalarDecimal)
	}
	return c, nil
}

func defaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".dimcalc"
	}
	return filepath.Join(dir, ".dimcalc")
}
