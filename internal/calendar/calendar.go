// Package calendar builds month grids for the range picker.
package calendar

import (
	"time"

	"github.com/username/range-picker/pkg/dateutil"
)

// Day is one cell of a month grid. A leading blank has Day == 0 and an
// empty Key.
type Day struct {
	Day       int
	IsWeekday bool
	Key       dateutil.Key
}

// IsBlank reports whether the cell is padding before the 1st of the month
func (d Day) IsBlank() bool {
	return d.Day == 0
}

// Month represents a rendered month with its grid and statistics
type Month struct {
	Year          int
	Month         int // zero-based, 0 = January
	Days          []Day
	LeadingBlanks int
	Weekdays      int
	Weekends      int
}

// BuildMonthGrid returns the grid cells for the given year and zero-based
// month: one blank per weekday offset of the 1st (Sunday = 0), then one
// cell per day of the month.
func BuildMonthGrid(year, month int) []Day {
	m := time.Month(month + 1)
	daysInMonth := dateutil.DaysIn(year, m)
	offset := int(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Weekday())

	days := make([]Day, offset, offset+daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
		days = append(days, Day{
			Day:       day,
			IsWeekday: dateutil.IsWeekday(date),
			Key:       dateutil.KeyOf(date),
		})
	}
	return days
}

// NewMonth builds the grid for the given year and zero-based month and
// counts its weekdays and weekends.
func NewMonth(year, month int) *Month {
	info := &Month{
		Year:  year,
		Month: month,
		Days:  BuildMonthGrid(year, month),
	}
	for _, d := range info.Days {
		switch {
		case d.IsBlank():
			info.LeadingBlanks++
		case d.IsWeekday:
			info.Weekdays++
		default:
			info.Weekends++
		}
	}
	return info
}

// Len returns the number of days in the month
func (m *Month) Len() int {
	return len(m.Days) - m.LeadingBlanks
}

// Rows splits the grid into weeks starting on Sunday. The last row is
// padded with blanks to seven cells.
func (m *Month) Rows() [][]Day {
	var rows [][]Day
	for i := 0; i < len(m.Days); i += 7 {
		row := make([]Day, 7)
		copy(row, m.Days[i:min(i+7, len(m.Days))])
		rows = append(rows, row)
	}
	return rows
}

// Find returns the cell for key if it belongs to this month
func (m *Month) Find(key dateutil.Key) (Day, bool) {
	for _, d := range m.Days[m.LeadingBlanks:] {
		if d.Key == key {
			return d, true
		}
	}
	return Day{}, false
}

// Cell returns the cell for the given day of the month (1-based)
func (m *Month) Cell(day int) (Day, bool) {
	if day < 1 || day > m.Len() {
		return Day{}, false
	}
	return m.Days[m.LeadingBlanks+day-1], true
}
