// Package daterange enumerates weekends inside date ranges and computes the
// predefined "last N days" ranges.
package daterange

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/range-picker/pkg/dateutil"
)

// ErrInvalidDays is returned for a non-positive day count
var ErrInvalidDays = errors.New("day count must be positive")

// Range is a closed range of dates
type Range struct {
	Start dateutil.Key
	End   dateutil.Key
}

// Contains reports whether key lies within the range, endpoints included
func (r Range) Contains(key dateutil.Key) bool {
	return r.Start <= key && key <= r.End
}

// Days returns the number of calendar days in the range, or 0 when the
// range is invalid or reversed.
func (r Range) Days() int {
	start, err := r.Start.Date()
	if err != nil {
		return 0
	}
	end, err := r.End.Date()
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// Result is what a host receives once a range is selected
type Result struct {
	Range    Range
	Weekends []dateutil.Key
}

// NewResult computes the weekends for start..end
func NewResult(start, end dateutil.Key) Result {
	return Result{
		Range:    Range{Start: start, End: end},
		Weekends: EnumerateWeekends(start, end),
	}
}

// EnumerateWeekends returns every Saturday and Sunday between start and end
// inclusive, in increasing order. A reversed range or an invalid key gives
// an empty slice.
func EnumerateWeekends(start, end dateutil.Key) []dateutil.Key {
	weekends := []dateutil.Key{}

	from, err := start.Date()
	if err != nil {
		return weekends
	}
	to, err := end.Date()
	if err != nil {
		return weekends
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if dateutil.IsWeekend(d) {
			weekends = append(weekends, dateutil.KeyOf(d))
		}
	}
	return weekends
}

// LastNDays returns the range from n days before today up to today, both
// as local dates.
func LastNDays(today time.Time, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDays, n)
	}
	today = dateutil.StartOfDay(today)
	end := dateutil.KeyOf(today)
	start := dateutil.KeyOf(today.AddDate(0, 0, -n))
	return NewResult(start, end), nil
}
