// Package calendar decides whether a date is a Brazilian business day and
// performs business-day arithmetic on top of the national holiday calendar.
//
// A business day is a Monday-Friday date that is not a holiday of its year.
// All operations are pure functions of (date, holiday table); the only
// mutable state is a per-year memo of computed holiday sets, safe for
// concurrent use.
package calendar

import (
	"sort"
	"sync"
	"time"
)

// now is an indirection so tests can pin "today".
var now = time.Now

// Calendar answers business-day queries for one holiday table.
type Calendar struct {
	holidays []Holiday

	mu    sync.RWMutex
	years map[int]*yearSet
}

// yearSet is the resolved holiday set of a single year. Immutable once built.
type yearSet struct {
	dates []time.Time          // ascending, deduplicated
	names map[time.Time]string // date -> holiday name
}

// New builds a Calendar from an arbitrary holiday table.
func New(holidays []Holiday) *Calendar {
	hs := make([]Holiday, len(holidays))
	copy(hs, holidays)
	return &Calendar{
		holidays: hs,
		years:    make(map[int]*yearSet),
	}
}

// NewBrazil builds a Calendar with the Brazilian national holidays plus any
// extra entries (e.g. user-configured dates).
func NewBrazil(extra ...Holiday) *Calendar {
	return New(append(BrazilHolidays(), extra...))
}

// yearSet returns the memoized holiday set for a year, computing it on first
// use. Published sets are never mutated.
func (c *Calendar) yearSet(year int) *yearSet {
	c.mu.RLock()
	ys, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return ys
	}

	names := make(map[time.Time]string, len(c.holidays))
	for _, h := range c.holidays {
		d := h.ForYear(year)
		// On a collision (Good Friday can land on Tiradentes) the first
		// table entry keeps the name; the set stays duplicate-free.
		if _, exists := names[d]; !exists {
			names[d] = h.Name
		}
	}
	dates := make([]time.Time, 0, len(names))
	for d := range names {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	ys = &yearSet{dates: dates, names: names}

	c.mu.Lock()
	if cached, ok := c.years[year]; ok {
		ys = cached
	} else {
		c.years[year] = ys
	}
	c.mu.Unlock()
	return ys
}

// HolidaysForYear returns the holiday dates of a year in ascending order.
func (c *Calendar) HolidaysForYear(year int) []time.Time {
	ys := c.yearSet(year)
	out := make([]time.Time, len(ys.dates))
	copy(out, ys.dates)
	return out
}

// IsHoliday reports whether the date is a holiday of its year.
func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.HolidayName(date)
	return ok
}

// HolidayName returns the holiday name for the date, if it is one.
func (c *Calendar) HolidayName(date time.Time) (string, bool) {
	d := DateOf(date)
	name, ok := c.yearSet(d.Year()).names[d]
	return name, ok
}

// IsBusinessDay reports whether the date is a Monday-Friday non-holiday.
func (c *Calendar) IsBusinessDay(date time.Time) bool {
	d := DateOf(date)
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.IsHoliday(d)
}

// NextBusinessDay returns the first business day strictly after the date.
// A zero date means today.
func (c *Calendar) NextBusinessDay(date time.Time) time.Time {
	return c.step(orToday(date), +1)
}

// PreviousBusinessDay returns the last business day strictly before the date.
// A zero date means today.
func (c *Calendar) PreviousBusinessDay(date time.Time) time.Time {
	return c.step(orToday(date), -1)
}

// step walks one calendar day at a time until it hits a business day. No
// calendar in this domain has ten consecutive non-business days, so the loop
// terminates quickly; no tighter bound is assumed.
func (c *Calendar) step(d time.Time, dir int) time.Time {
	for {
		d = d.AddDate(0, 0, dir)
		if c.IsBusinessDay(d) {
			return d
		}
	}
}

// ShiftBusinessDays moves n business days from the date: n > 0 chains
// NextBusinessDay n times, n < 0 chains PreviousBusinessDay. n == 0 returns
// the date itself (normalized), whether or not it is a business day.
func (c *Calendar) ShiftBusinessDays(date time.Time, n int) time.Time {
	d := DateOf(date)
	dir := +1
	if n < 0 {
		dir, n = -1, -n
	}
	for ; n > 0; n-- {
		d = c.step(d, dir)
	}
	return d
}

// BusinessDaysBetween counts business days between a and b, signed by order:
// for a < b it is the number of business days in the half-open interval
// (a, b], for a > b the negation of the reverse count, and 0 for a == b.
//
// The half-open convention makes the count equal the number of forward
// NextBusinessDay steps needed to reach b, so
// ShiftBusinessDays(a, BusinessDaysBetween(a, b)) == b whenever b itself is
// a business day. Neither endpoint is required to be a business day.
func (c *Calendar) BusinessDaysBetween(a, b time.Time) int {
	a, b = DateOf(a), DateOf(b)
	if a.Equal(b) {
		return 0
	}
	if a.After(b) {
		return -c.BusinessDaysBetween(b, a)
	}
	n := 0
	for d := a.AddDate(0, 0, 1); !d.After(b); d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			n++
		}
	}
	return n
}

// BusinessDayRange returns, in ascending order, every business day d with
// start <= d < end (or <= end when includeEnd). It is a filter over calendar
// days: start is included only if it is itself a business day. An empty
// interval yields an empty slice, not an error.
func (c *Calendar) BusinessDayRange(start, end time.Time, includeEnd bool) []time.Time {
	start, end = DateOf(start), DateOf(end)
	out := make([]time.Time, 0)
	for d := start; d.Before(end) || (includeEnd && d.Equal(end)); d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// YearBusinessDays returns every business day of the year, ascending.
func (c *Calendar) YearBusinessDays(year int) []time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return c.BusinessDayRange(jan1, dec31, true)
}

// YearHolidays returns every holiday of the year, ascending.
func (c *Calendar) YearHolidays(year int) []time.Time {
	return c.HolidaysForYear(year)
}

func orToday(d time.Time) time.Time {
	if d.IsZero() {
		return DateOf(now())
	}
	return DateOf(d)
}

// brazil is the default national calendar backing the package-level API.
var brazil = NewBrazil()

// IsBusinessDay reports whether the date is a Brazilian business day.
func IsBusinessDay(date time.Time) bool { return brazil.IsBusinessDay(date) }

// IsHoliday reports whether the date is a Brazilian national holiday.
func IsHoliday(date time.Time) bool { return brazil.IsHoliday(date) }

// NextBusinessDay returns the first Brazilian business day strictly after
// the date (today when zero).
func NextBusinessDay(date time.Time) time.Time { return brazil.NextBusinessDay(date) }

// PreviousBusinessDay returns the last Brazilian business day strictly
// before the date (today when zero).
func PreviousBusinessDay(date time.Time) time.Time { return brazil.PreviousBusinessDay(date) }

// ShiftBusinessDays moves n Brazilian business days from the date.
func ShiftBusinessDays(date time.Time, n int) time.Time {
	return brazil.ShiftBusinessDays(date, n)
}

// BusinessDaysBetween counts Brazilian business days between a and b.
func BusinessDaysBetween(a, b time.Time) int { return brazil.BusinessDaysBetween(a, b) }

// BusinessDayRange enumerates Brazilian business days in [start, end).
func BusinessDayRange(start, end time.Time, includeEnd bool) []time.Time {
	return brazil.BusinessDayRange(start, end, includeEnd)
}

// YearBusinessDays enumerates the Brazilian business days of a year.
func YearBusinessDays(year int) []time.Time { return brazil.YearBusinessDays(year) }

// YearHolidays enumerates the Brazilian national holidays of a year.
func YearHolidays(year int) []time.Time { return brazil.YearHolidays(year) }
