// Package config loads dimcalc settings with viper.
//
// Sources, lowest priority first: built-in defaults, the YAML/TOML/JSON file
// passed with --config, DIMCALC_* environment variables (DIMCALC_SCALAR,
// DIMCALC_HOME, DIMCALC_ENV, DIMCALC_METRICS_FILE) and command-line flags.
package config
