// Package tabs keeps the saved tables of a session.
//
// # Overview
//
// A Manager holds an ordered list of Tabs, the id of the active tab, and the
// set of tabs checked for bulk deletion. Each session of the UI creates its
// own Manager; nothing is shared or persisted.
//
// # Identity
//
// Tab ids are "table-tab-N" where N comes from a counter that only grows.
// Ids are never reused within a Manager, even after deletion.
//
// # Activation
//
//   - Add activates the new tab.
//   - Delete of the active tab falls back to the last remaining tab.
//   - Delete of other tabs keeps the current active tab.
//
// # Selection
//
// The bulk-delete checkboxes start unchecked after every Add or Delete.
// CanDeleteSelected is false whenever no checkbox is checked, which is how
// the UI disables its delete action.
package tabs
