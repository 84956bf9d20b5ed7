// Package slider keeps each numeric form field and its slider consistent.
//
// Every change carries an Origin. A slider update that originates from the
// field is applied to the slider only and never echoed back into the field,
// which is what stops the two controls from feeding each other.
package slider

import (
	"strconv"

	"github.com/five82/multable/internal/form"
	"github.com/five82/multable/internal/grid"
)

// Origin tags where a change came from.
type Origin int

const (
	OriginInit Origin = iota
	OriginField
	OriginSlider
)

func (o Origin) String() string {
	switch o {
	case OriginField:
		return "field"
	case OriginSlider:
		return "slider"
	default:
		return "init"
	}
}

// Outcome describes what a change did. Notify is set when validation and the
// preview must be refreshed.
type Outcome struct {
	Notify      bool
	SliderMoved bool
	TextChanged bool
}

// Pair is one field with its slider.
type Pair struct {
	text  string
	value int
}

// NewPair clamps the stored value into range; non-integer text becomes 0.
func NewPair(raw string) Pair {
	n, ok := form.ParseInt(raw)
	if !ok {
		n = 0
	}
	n = grid.Clamp(n)
	return Pair{text: strconv.Itoa(n), value: n}
}

// Text returns the field text.
func (p Pair) Text() string { return p.text }

// Value returns the slider position.
func (p Pair) Value() int { return p.value }

// Percent returns the slider position as a fraction of its track.
func (p Pair) Percent() float64 {
	return float64(p.value-grid.MinValue) / float64(grid.MaxValue-grid.MinValue)
}

// EditField applies text typed into the field.
func (p *Pair) EditField(raw string) Outcome {
	p.text = raw
	n, ok := form.ParseInt(raw)
	if !ok {
		return Outcome{Notify: true}
	}
	clamped := grid.Clamp(n)
	out := Outcome{Notify: true}
	if clamped != n {
		p.text = strconv.Itoa(clamped)
		out.TextChanged = true
	}
	moved := p.slide(clamped, OriginField)
	out.SliderMoved = moved.SliderMoved
	return out
}

// EditSlider moves the slider as the user would.
func (p *Pair) EditSlider(v int) Outcome {
	return p.slide(v, OriginSlider)
}

// Nudge moves the slider by delta steps.
func (p *Pair) Nudge(delta int) Outcome {
	return p.slide(p.value+delta, OriginSlider)
}

// slide is the slider's change handler.
func (p *Pair) slide(v int, origin Origin) Outcome {
	v = grid.Clamp(v)
	out := Outcome{SliderMoved: v != p.value}
	p.value = v
	if origin == OriginField {
		return out
	}
	text := strconv.Itoa(v)
	out.TextChanged = text != p.text
	p.text = text
	out.Notify = true
	return out
}

// Synchronizer holds the four field/slider pairs of the form.
type Synchronizer struct {
	pairs [len(form.Fields)]Pair
}

// New builds a synchronizer from initial field values.
func New(initial form.Values) *Synchronizer {
	s := &Synchronizer{}
	for _, f := range form.Fields {
		s.pairs[f] = NewPair(initial.Get(f))
	}
	return s
}

// Pair returns a copy of the pair for f.
func (s *Synchronizer) Pair(f form.Field) Pair {
	return s.pairs[f]
}

// EditField applies typed text to f.
func (s *Synchronizer) EditField(f form.Field, raw string) Outcome {
	return s.pairs[f].EditField(raw)
}

// EditSlider moves the slider of f to v.
func (s *Synchronizer) EditSlider(f form.Field, v int) Outcome {
	return s.pairs[f].EditSlider(v)
}

// Nudge moves the slider of f by delta.
func (s *Synchronizer) Nudge(f form.Field, delta int) Outcome {
	return s.pairs[f].Nudge(delta)
}

// Values returns the current field text of every pair.
func (s *Synchronizer) Values() form.Values {
	var v form.Values
	for _, f := range form.Fields {
		v[f] = s.pairs[f].text
	}
	return v
}
