// Package preview computes the live table preview and debounces its refresh.
package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/multable/internal/form"
	"github.com/five82/multable/internal/grid"
)

// DefaultDelay is the quiet period before the preview regenerates.
const DefaultDelay = 150 * time.Millisecond

// Placeholder is shown instead of a table while the form is invalid.
const Placeholder = "Correct the highlighted values to see the table preview."

// State is a rendered preview.
type State struct {
	Request     grid.Request
	Table       grid.Table
	Placeholder string
	Err         error
}

// Ready reports whether the state holds a table.
func (s State) Ready() bool {
	return s.Placeholder == "" && s.Err == nil
}

// Compute regenerates the preview for a validation result.
func Compute(res form.Result) State {
	req, ok := res.Request()
	if !ok {
		return State{Placeholder: Placeholder}
	}
	tbl, err := grid.Build(
		float64(req.Columns.Min), float64(req.Columns.Max),
		float64(req.Rows.Min), float64(req.Rows.Max),
	)
	if err != nil {
		return State{Request: req, Err: err}
	}
	return State{Request: req, Table: tbl}
}

// FireMsg is delivered when a debounce period ends.
type FireMsg struct {
	Seq int
}

// Debouncer coalesces bursts of triggers into one trailing FireMsg. Only the
// message carrying the latest sequence is Ready; earlier ones are stale.
type Debouncer struct {
	delay time.Duration
	seq   int
}

// NewDebouncer returns a debouncer with the given quiet period. A
// non-positive delay uses DefaultDelay.
func NewDebouncer(delay time.Duration) Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Debouncer{delay: delay}
}

// Delay returns the quiet period.
func (d Debouncer) Delay() time.Duration { return d.delay }

// Trigger supersedes any pending message and schedules a new one.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return FireMsg{Seq: seq}
	})
}

// Ready reports whether msg is the latest trigger.
func (d Debouncer) Ready(msg FireMsg) bool {
	return msg.Seq == d.seq
}
