package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// KeyLayout is the time layout of a date key
const KeyLayout = "2006-01-02"

// ErrInvalidKey is returned when a string is not a canonical date key
var ErrInvalidKey = errors.New("invalid date key")

// Key is a zero-padded YYYY-MM-DD calendar date. Comparing two valid keys
// as strings gives the same result as comparing the dates.
//
// Keys are only defined for years 0000 through 9999. KeyOf still formats
// dates outside that range, but the result is not a valid key.
type Key string

// NewKey builds the key for the given calendar date. Out of range values
// are normalized the way time.Date normalizes them.
func NewKey(year int, month time.Month, day int) Key {
	return KeyOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// KeyOf returns the key of the calendar date of t in t's own location
func KeyOf(t time.Time) Key {
	return Key(fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day()))
}

// ParseKey validates s and returns it as a Key
func ParseKey(s string) (Key, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	// time.Parse accepts some non-padded forms for years; reject them here.
	if string(KeyOf(t)) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key(s), nil
}

// Date returns midnight UTC of the key's calendar date
func (k Key) Date() (time.Time, error) {
	t, err := time.Parse(KeyLayout, string(k))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, string(k))
	}
	return t, nil
}

// Valid reports whether k is a canonical date key
func (k Key) Valid() bool {
	_, err := ParseKey(string(k))
	return err == nil
}

// AddDays returns the key n days after k. An invalid key is returned unchanged.
func (k Key) AddDays(n int) Key {
	t, err := k.Date()
	if err != nil {
		return k
	}
	return KeyOf(t.AddDate(0, 0, n))
}

// Weekday returns the day of the week of k (Sunday for an invalid key)
func (k Key) Weekday() time.Weekday {
	t, err := k.Date()
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

func (k Key) String() string {
	return string(k)
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
