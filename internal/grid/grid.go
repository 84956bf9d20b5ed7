package grid

import (
	"errors"
	"fmt"
	"math"
)

// Bounds of every axis value the form and sliders accept.
const (
	MinValue = -50
	MaxValue = 50
)

// ErrNonFinite is returned by Build when an input is NaN or infinite.
var ErrNonFinite = errors.New("invalid range values")

// Range is one axis of a table.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Normalize returns the range with Min <= Max.
func (r Range) Normalize() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

// Len returns the number of values covered by the normalized range.
func (r Range) Len() int {
	n := r.Normalize()
	return n.Max - n.Min + 1
}

// Values returns the contiguous sequence Min..Max of the normalized range.
func (r Range) Values() []int {
	n := r.Normalize()
	out := make([]int, 0, n.Len())
	for v := n.Min; v <= n.Max; v++ {
		out = append(out, v)
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// Request describes the table to generate.
type Request struct {
	Columns Range `json:"columns" yaml:"columns"`
	Rows    Range `json:"rows" yaml:"rows"`
}

// Label is the human readable name used for tabs and exports.
func (q Request) Label() string {
	return fmt.Sprintf("Cols %s x Rows %s", q.Columns, q.Rows)
}

// Table is a generated multiplication table. Cells[i][j] is
// Rows[i] * Columns[j].
type Table struct {
	Columns []int   `json:"columns" yaml:"columns"`
	Rows    []int   `json:"rows" yaml:"rows"`
	Cells   [][]int `json:"cells" yaml:"cells"`
}

// Build produces the table for the given bounds. Inputs are truncated toward
// zero and each axis is swapped when min exceeds max.
func Build(columnMin, columnMax, rowMin, rowMax float64) (Table, error) {
	for _, v := range []float64{columnMin, columnMax, rowMin, rowMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Table{}, ErrNonFinite
		}
	}
	req := Request{
		Columns: Range{Min: int(math.Trunc(columnMin)), Max: int(math.Trunc(columnMax))},
		Rows:    Range{Min: int(math.Trunc(rowMin)), Max: int(math.Trunc(rowMax))},
	}
	return BuildRequest(req), nil
}

// BuildRequest produces the table for an integer request.
func BuildRequest(req Request) Table {
	cols := req.Columns.Values()
	rows := req.Rows.Values()

	cells := make([][]int, len(rows))
	for i, r := range rows {
		line := make([]int, len(cols))
		for j, c := range cols {
			line[j] = r * c
		}
		cells[i] = line
	}
	return Table{Columns: cols, Rows: rows, Cells: cells}
}

// Cell returns the product at row value r and column value c. The second
// result is false when either value lies outside the table.
func (t Table) Cell(r, c int) (int, bool) {
	if len(t.Rows) == 0 || len(t.Columns) == 0 {
		return 0, false
	}
	i := r - t.Rows[0]
	j := c - t.Columns[0]
	if i < 0 || i >= len(t.Rows) || j < 0 || j >= len(t.Columns) {
		return 0, false
	}
	return t.Cells[i][j], true
}

// Request returns the normalized request the table was built from.
func (t Table) Request() Request {
	var req Request
	if n := len(t.Columns); n > 0 {
		req.Columns = Range{Min: t.Columns[0], Max: t.Columns[n-1]}
	}
	if n := len(t.Rows); n > 0 {
		req.Rows = Range{Min: t.Rows[0], Max: t.Rows[n-1]}
	}
	return req
}

// Grid returns the table as strings including the header row and header
// column. The top-left corner is empty.
func (t Table) Grid() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, "")
	for _, c := range t.Columns {
		header = append(header, fmt.Sprint(c))
	}
	out = append(out, header)
	for i, r := range t.Rows {
		line := make([]string, 0, len(t.Columns)+1)
		line = append(line, fmt.Sprint(r))
		for _, v := range t.Cells[i] {
			line = append(line, fmt.Sprint(v))
		}
		out = append(out, line)
	}
	return out
}

// Clamp bounds v to [MinValue, MaxValue].
func Clamp(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
