package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidView is returned when a view string cannot be parsed
var ErrInvalidView = errors.New("invalid calendar view")

// View identifies the month currently shown by a host
type View struct {
	Year  int
	Month int // zero-based, 0 = January
}

// ViewOf returns the view containing t
func ViewOf(t time.Time) View {
	return View{Year: t.Year(), Month: int(t.Month()) - 1}
}

// ParseView parses a "YYYY-MM" string (month 01..12)
func ParseView(s string) (View, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return View{}, fmt.Errorf("%w: %q", ErrInvalidView, s)
	}
	return ViewOf(t), nil
}

// Next returns the following month
func (v View) Next() View {
	return v.addMonths(1)
}

// Prev returns the preceding month
func (v View) Prev() View {
	return v.addMonths(-1)
}

// AddYears moves the view by n years, keeping the month
func (v View) AddYears(n int) View {
	return View{Year: v.Year + n, Month: v.Month}
}

func (v View) addMonths(n int) View {
	total := v.Year*12 + v.Month + n
	year, month := total/12, total%12
	if month < 0 {
		year--
		month += 12
	}
	return View{Year: year, Month: month}
}

// Grid builds the month shown by the view
func (v View) Grid() *Month {
	return NewMonth(v.Year, v.Month)
}

func (v View) String() string {
	return fmt.Sprintf("%s %d", time.Month(v.Month+1), v.Year)
}
