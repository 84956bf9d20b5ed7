// Package form validates the four range fields of the table form.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/five82/multable/internal/grid"
)

// Field identifies one input of the form.
type Field int

const (
	MinColumn Field = iota
	MaxColumn
	MinRow
	MaxRow
)

// Fields lists the inputs in display order.
var Fields = [...]Field{MinColumn, MaxColumn, MinRow, MaxRow}

// Name returns the field identifier used by the form.
func (f Field) Name() string {
	switch f {
	case MinColumn:
		return "minimumColumnValue"
	case MaxColumn:
		return "maximumColumnValue"
	case MinRow:
		return "minimumRowValue"
	case MaxRow:
		return "maximumRowValue"
	default:
		return "unknown"
	}
}

// Label returns the display label for the field.
func (f Field) Label() string {
	switch f {
	case MinColumn:
		return "Minimum column"
	case MaxColumn:
		return "Maximum column"
	case MinRow:
		return "Minimum row"
	case MaxRow:
		return "Maximum row"
	default:
		return "Unknown"
	}
}

// Pair returns the min field a max field is checked against. The second
// result is false for min fields.
func (f Field) Pair() (Field, bool) {
	switch f {
	case MaxColumn:
		return MinColumn, true
	case MaxRow:
		return MinRow, true
	default:
		return f, false
	}
}

func (f Field) requiredMessage() string {
	switch f {
	case MinColumn:
		return "Please provide a minimum column value."
	case MaxColumn:
		return "Please provide a maximum column value."
	case MinRow:
		return "Please provide a minimum row value."
	default:
		return "Please provide a maximum row value."
	}
}

func (f Field) orderMessage() string {
	if f == MaxColumn {
		return "Column max must be greater than or equal to the column min."
	}
	return "Row max must be greater than or equal to the row min."
}

// RangeMessage is reported for values that are not integers in bounds.
var RangeMessage = fmt.Sprintf("Enter an integer between %d and %d.", grid.MinValue, grid.MaxValue)

// Values holds the raw text of each field.
type Values [len(Fields)]string

// Get returns the raw text of f.
func (v Values) Get(f Field) string { return v[f] }

// Result is the outcome of Validate.
type Result struct {
	ints [len(Fields)]int
	errs [len(Fields)]string
}

// Validate checks every field: required, integer within bounds, and max
// fields no smaller than their paired min field.
func Validate(values Values) Result {
	var res Result
	parsed := [len(Fields)]bool{}

	for _, f := range Fields {
		raw := strings.TrimSpace(values[f])
		if raw == "" {
			res.errs[f] = f.requiredMessage()
			continue
		}
		n, ok := ParseInt(raw)
		if !ok || n < grid.MinValue || n > grid.MaxValue {
			res.errs[f] = RangeMessage
			continue
		}
		res.ints[f] = n
		parsed[f] = true
	}

	for _, f := range Fields {
		// A min that failed its own check is not compared against, so max
		// never shows an order error beside a required or range error.
		pair, ok := f.Pair()
		if !ok || !parsed[f] || !parsed[pair] {
			continue
		}
		if res.ints[f] < res.ints[pair] {
			res.errs[f] = f.orderMessage()
		}
	}
	return res
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	for _, msg := range r.errs {
		if msg != "" {
			return false
		}
	}
	return true
}

// Error returns the message for f, empty when the field is valid.
func (r Result) Error(f Field) string {
	return r.errs[f]
}

// Request returns the typed request. The second result is false when the
// form is invalid.
func (r Result) Request() (grid.Request, bool) {
	if !r.Valid() {
		return grid.Request{}, false
	}
	return grid.Request{
		Columns: grid.Range{Min: r.ints[MinColumn], Max: r.ints[MaxColumn]},
		Rows:    grid.Range{Min: r.ints[MinRow], Max: r.ints[MaxRow]},
	}, true
}

// ParseInt parses text as an integer. Decimal forms with an integral value
// such as "7.0" or "1e1" are accepted; NaN, infinities and fractions are not.
// Integral values beyond the int32 range saturate at its bounds.
func ParseInt(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(text); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	if f < math.MinInt32 {
		return math.MinInt32, true
	}
	return int(f), true
}

// FromRequest renders a request as raw field values.
func FromRequest(req grid.Request) Values {
	return Values{
		MinColumn: strconv.Itoa(req.Columns.Min),
		MaxColumn: strconv.Itoa(req.Columns.Max),
		MinRow:    strconv.Itoa(req.Rows.Min),
		MaxRow:    strconv.Itoa(req.Rows.Max),
	}
}
