package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a year/month/day triple does not name a
// real Gregorian calendar date within the supported year range.
var ErrInvalidDate = errors.New("invalid date")

// The Gregorian computus is only meaningful from the calendar reform onward.
const (
	minYear = 1583
	maxYear = 9999
)

// NewDate validates year/month/day and returns the date anchored at midnight
// UTC. Unlike time.Date it rejects out-of-range values (month 13, Feb 30)
// instead of normalizing them into the next month.
func NewDate(year int, month time.Month, day int) (time.Time, error) {
	if year < minYear || year > maxYear {
		return time.Time{}, fmt.Errorf("%w: year %d outside [%d, %d]", ErrInvalidDate, year, minYear, maxYear)
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y2, m2, d2 := d.Date()
	if y2 != year || m2 != month || d2 != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return d, nil
}

// MustDate is NewDate for literals known to be valid; it panics otherwise.
// Intended for tables and test fixtures.
func MustDate(year int, month time.Month, day int) time.Time {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf discards the time-of-day and location of t, keeping only the
// calendar date at midnight UTC. Every engine operation normalizes its
// inputs through here so dates compare and hash consistently.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidYear reports whether year is inside the supported range.
func ValidYear(year int) bool {
	return year >= minYear && year <= maxYear
}
