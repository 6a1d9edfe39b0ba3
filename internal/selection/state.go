// Package selection implements the click-driven range selector.
package selection

import (
	"github.com/username/range-picker/internal/daterange"
	"github.com/username/range-picker/pkg/dateutil"
)

// Phase identifies the kind of selection state
type Phase int

const (
	PhaseEmpty Phase = iota
	PhasePendingEnd
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePendingEnd:
		return "pending_end"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is one of Empty, PendingEnd or Complete
type State interface {
	Phase() Phase
}

// Empty means no date has been picked
type Empty struct{}

// PendingEnd means a start date is picked and the end is not
type PendingEnd struct {
	Start dateutil.Key
}

// Complete holds a finished range with Start <= End
type Complete struct {
	Start dateutil.Key
	End   dateutil.Key
}

func (Empty) Phase() Phase      { return PhaseEmpty }
func (PendingEnd) Phase() Phase { return PhasePendingEnd }
func (Complete) Phase() Phase   { return PhaseComplete }

// Range returns the finished range
func (c Complete) Range() daterange.Range {
	return daterange.Range{Start: c.Start, End: c.End}
}

// Reset returns the initial state
func Reset() State {
	return Empty{}
}

// Click applies a click on date to s. A result is returned only when the
// click finishes a range.
//
// From Empty or Complete the click starts a new selection. While the end
// is pending, a date before the start moves the start; any other date,
// including the start itself, finishes the range.
func Click(s State, date dateutil.Key) (State, *daterange.Result) {
	pending, ok := s.(PendingEnd)
	if !ok {
		return PendingEnd{Start: date}, nil
	}
	if date < pending.Start {
		return PendingEnd{Start: date}, nil
	}
	result := daterange.NewResult(pending.Start, date)
	return Complete{Start: pending.Start, End: date}, &result
}

// Bounds returns the start and end of s; missing endpoints are empty
func Bounds(s State) (start, end dateutil.Key) {
	switch st := s.(type) {
	case PendingEnd:
		return st.Start, ""
	case Complete:
		return st.Start, st.End
	default:
		return "", ""
	}
}

// IsEndpoint reports whether key is the start or end of s
func IsEndpoint(s State, key dateutil.Key) bool {
	if key == "" {
		return false
	}
	start, end := Bounds(s)
	return key == start || key == end
}

// InRange reports whether key lies strictly between the endpoints of a
// completed range.
func InRange(s State, key dateutil.Key) bool {
	c, ok := s.(Complete)
	if !ok || key == "" {
		return false
	}
	return c.Start < key && key < c.End
}
