// Package app wires application dependencies for the CLI.
//
// It builds the register store, the calculator for the configured scalar
// kind, the logger and the metrics registry from config.Config, exposing them
// via the Wire struct for commands to use.
package app
