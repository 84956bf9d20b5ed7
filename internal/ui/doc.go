// Package ui provides the terminal interface for multable.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. Every event arrives through Update,
// so the form, the preview and the saved tables are only ever mutated on the
// Bubble Tea event loop.
//
// # Package Structure
//
//   - app.go: Model, key dispatch, and the form and tab actions
//   - view.go: header, form, preview pane, saved tables pane and footer
//   - layout.go: geometry constants and pane sizing
//   - keys.go: key bindings consumed by bubbles/help
//   - theme.go: color palettes and prebuilt lipgloss styles
//   - strings.go: ANSI-aware clipping helpers
//
// # Screen Layout
//
// From top to bottom:
//
//   - Header: the current request label, or a hint while the form is invalid
//   - Form: four labelled fields, each with a slider bar and its message
//   - Preview: the table for the current values, refreshed after a short
//     quiet period, or a placeholder while any field is invalid
//   - Saved tables: a tab bar with checkboxes and the active table
//   - Footer: transient status line and key help
//
// # Keyboard Navigation
//
// Focus cycles through the four fields and then the saved tables pane.
//
//   - tab/shift+tab, down/up: Move focus
//   - [ / ]: Nudge the focused slider by one
//   - { / }, pgdown/pgup: Nudge by ten
//   - < / >: Jump the slider to its bounds
//   - enter: Save the current table as a new tab
//   - h/l: Switch tabs (saved tables pane)
//   - x: Close the active tab
//   - space: Check the active tab; D deletes every checked tab
//   - j/k, H/L: Scroll the active table
//   - y: Copy the active table as TSV; s exports it as xlsx
//   - T: Cycle theme
//   - ?: Toggle full help
//   - ctrl+c: Quit
//
// # Themes
//
// Nightfox, Kanagawa and Slate are built in. The chosen theme and help mode
// persist through the prefs package.
package ui
