package selection

import (
	"time"

	"github.com/username/range-picker/internal/calendar"
	"github.com/username/range-picker/internal/daterange"
	"github.com/username/range-picker/pkg/dateutil"
)

// Picker is the host-owned view state: the month on screen and the
// selection made in it. Methods return a new Picker and never mutate the
// receiver.
type Picker struct {
	View  calendar.View
	State State
}

// NewPicker returns an empty picker showing view
func NewPicker(view calendar.View) Picker {
	return Picker{View: view, State: Reset()}
}

// Click forwards a click on date to the selector
func (p Picker) Click(date dateutil.Key) (Picker, *daterange.Result) {
	var result *daterange.Result
	p.State, result = Click(p.state(), date)
	return p, result
}

// SetView switches to another month. Changing year or month always
// discards the selection.
func (p Picker) SetView(view calendar.View) Picker {
	if view == p.View {
		return p
	}
	return NewPicker(view)
}

// ApplyPreset selects the last n days ending today. The view is left as is.
func (p Picker) ApplyPreset(today time.Time, n int) (Picker, daterange.Result, error) {
	result, err := daterange.LastNDays(today, n)
	if err != nil {
		return p, daterange.Result{}, err
	}
	p.State = Complete{Start: result.Range.Start, End: result.Range.End}
	return p, result, nil
}

// Grid builds the month currently on screen
func (p Picker) Grid() *calendar.Month {
	return p.View.Grid()
}

func (p Picker) state() State {
	if p.State == nil {
		return Reset()
	}
	return p.State
}
