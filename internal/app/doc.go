// Package app provides the orchestration layer for multable.
//
// # Overview
//
// This package wires configuration, preferences, logging and the UI into the
// interactive program, and offers the same table generation to the command
// line without a terminal UI.
//
// # Components
//
//   - app.go: Run, which boots the TUI, and log file setup
//   - cli.go: range flag parsing, printing and workbook export
//
// # Startup
//
//  1. Load configuration from ~/.config/multable/config.toml (or --config)
//  2. Route the standard logger to the configured log file
//  3. Load the saved theme and help mode
//  4. Start the TUI and block until the user quits or the context cancels
//
// # Range Flags
//
// The print and export commands take --cols and --rows as "min:max". Both go
// through form.Validate, so the command line rejects exactly what the form
// would: missing bounds, values outside [-50, 50] and a max below its min.
// Validation errors name the field they belong to, for example
// "maximum column: Column max must be greater than or equal to the column
// min.".
package app
