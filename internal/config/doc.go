// Package config loads the multable configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/multable/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Form: columns 1..10, rows 1..10
//   - Preview debounce: 150ms
//   - Export directory: ~/Documents/multable
//   - Log file: ~/.local/state/multable/multable.log
//
// # TOML Format
//
//	preview_debounce_ms = 150
//	export_dir = "~/Documents/multable"
//	log_file = "~/.local/state/multable/multable.log"
//
//	[defaults]
//	min_column = 1
//	max_column = 10
//	min_row = 1
//	max_row = 10
//
// Every field is optional. Form defaults are clamped to [-50, 50]; they are
// not cross-checked, so a config may start the form in an invalid state and
// the UI reports it like any other edit.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
