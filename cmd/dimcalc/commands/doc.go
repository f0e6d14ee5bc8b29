// Package commands defines the dimcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - parse   Show how unit strings are read
//   - calc    Evaluate one operation between two quantities
//   - set     Store a named quantity (register)
//   - apply   Apply an operation to a register in place
//   - show    Print one or all registers
//   - rm      Delete a register
//   - run     Execute an HCL scenario script
//   - demo    Execute the built-in scenario
//
// # Implementation
//
// The root command loads configuration (flags, DIMCALC_* environment, optional
// config file) and builds the dependency graph before any subcommand runs.
// Metrics are flushed to --metrics-file once the command returns, including
// when it fails.
package commands
