package calendar

import "time"

// Holiday is one entry of a holiday table. A fixed holiday repeats on the
// same month/day every year; a movable one computes its date from the year.
// Calc takes precedence when set.
type Holiday struct {
	Name  string
	Month time.Month
	Day   int
	Calc  func(year int) time.Time
}

// ForYear resolves the holiday's date in the given year, at midnight UTC.
func (h Holiday) ForYear(year int) time.Time {
	if h.Calc != nil {
		return DateOf(h.Calc(year))
	}
	return time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC)
}

// Fixed reports whether the holiday is a fixed month/day entry.
func (h Holiday) Fixed() bool { return h.Calc == nil }

// EasterOffset builds the Calc func of a movable feast falling a fixed number
// of days from Easter Sunday (negative offsets fall before Easter).
func EasterOffset(days int) func(year int) time.Time {
	return func(year int) time.Time {
		return Easter(year).AddDate(0, 0, days)
	}
}

// brazilHolidays is the Brazilian national table: eight fixed dates plus the
// four Easter-derived feasts, twelve holidays per year.
var brazilHolidays = []Holiday{
	{Name: "Ano Novo", Month: time.January, Day: 1},
	{Name: "Segunda-feira de Carnaval", Calc: EasterOffset(-48)},
	{Name: "Terça-feira de Carnaval", Calc: EasterOffset(-47)},
	{Name: "Sexta-feira Santa", Calc: EasterOffset(-2)},
	{Name: "Tiradentes", Month: time.April, Day: 21},
	{Name: "Dia do Trabalho", Month: time.May, Day: 1},
	{Name: "Corpus Christi", Calc: EasterOffset(60)},
	{Name: "Independência do Brasil", Month: time.September, Day: 7},
	{Name: "Nossa Senhora Aparecida", Month: time.October, Day: 12},
	{Name: "Finados", Month: time.November, Day: 2},
	{Name: "Proclamação da República", Month: time.November, Day: 15},
	{Name: "Natal", Month: time.December, Day: 25},
}

// BrazilHolidays returns a copy of the national holiday table.
func BrazilHolidays() []Holiday {
	out := make([]Holiday, len(brazilHolidays))
	copy(out, brazilHolidays)
	return out
}
