// Package grid builds multiplication tables.
//
// # Overview
//
// A table is described by a Request holding a column Range and a row Range.
// Build and BuildRequest turn a request into a Table: one header row with
// the column values, one header column with the row values, and body cells
// holding row*column.
//
// # Normalization
//
//   - Inputs to Build are truncated toward zero.
//   - An axis whose min exceeds its max is swapped, so Build(4, 2, y, x) and
//     Build(2, 4, y, x) yield the same table.
//   - NaN or infinite inputs return ErrNonFinite.
//
// # Bounds
//
// The grid package does not enforce the [MinValue, MaxValue] domain itself;
// callers validate through the form package first. The largest table the
// form can request is 101x101.
//
// # Example
//
//	t, _ := grid.Build(2, 4, 1, 3)
//	v, _ := t.Cell(2, 3) // 6
package grid
