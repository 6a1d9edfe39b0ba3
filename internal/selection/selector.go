package selection

import (
	"time"

	"github.com/username/range-picker/internal/calendar"
	"github.com/username/range-picker/internal/daterange"
	"github.com/username/range-picker/pkg/dateutil"
	"go.uber.org/zap"
)

// Selector binds a Picker to a host. OnChange is called once for every
// finished selection and for every applied preset.
type Selector struct {
	picker   Picker
	onChange func(daterange.Result)
	logger   *zap.Logger
}

// NewSelector creates a selector showing view
func NewSelector(view calendar.View, onChange func(daterange.Result), logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		picker:   NewPicker(view),
		onChange: onChange,
		logger:   logger,
	}
}

// Picker returns the current view state
func (s *Selector) Picker() Picker {
	return s.picker
}

// Click handles a click on date
func (s *Selector) Click(date dateutil.Key) *daterange.Result {
	before := s.picker.state().Phase()

	var result *daterange.Result
	s.picker, result = s.picker.Click(date)

	s.logger.Debug("Date clicked",
		zap.String("date", date.String()),
		zap.Stringer("from", before),
		zap.Stringer("to", s.picker.State.Phase()))

	if result != nil {
		s.emit(*result)
	}
	return result
}

// SetView switches the visible month, resetting the selection when it changes
func (s *Selector) SetView(view calendar.View) {
	if view == s.picker.View {
		return
	}
	s.logger.Debug("View changed, selection reset",
		zap.Stringer("from", s.picker.View),
		zap.Stringer("to", view))
	s.picker = s.picker.SetView(view)
}

// ApplyPreset selects the last n days ending today
func (s *Selector) ApplyPreset(today time.Time, n int) (daterange.Result, error) {
	picker, result, err := s.picker.ApplyPreset(today, n)
	if err != nil {
		return daterange.Result{}, err
	}
	s.picker = picker
	s.logger.Debug("Preset applied", zap.Int("days", n))
	s.emit(result)
	return result, nil
}

func (s *Selector) emit(result daterange.Result) {
	s.logger.Info("Range selected",
		zap.String("start", result.Range.Start.String()),
		zap.String("end", result.Range.End.String()),
		zap.Int("weekends", len(result.Weekends)))

	if s.onChange != nil {
		s.onChange(result)
	}
}
