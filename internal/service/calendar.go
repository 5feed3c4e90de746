package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renanmoretto/dias-uteis/internal/calendar"
	"github.com/renanmoretto/dias-uteis/internal/domain/models"
	"github.com/renanmoretto/dias-uteis/internal/logger"
	"github.com/renanmoretto/dias-uteis/internal/storage"
)

// CalendarService is the business-logic layer between the HTTP handlers and
// the calendar engine. It owns the working calendar (national table plus
// persisted custom holidays) and rebuilds it whenever custom entries change.
type CalendarService interface {
	// Pure calendar queries. A zero date on Next/Previous means today.
	BusinessDayInfo(date time.Time) (business bool, holidayName string, holiday bool)
	NextBusinessDay(date time.Time) time.Time
	PreviousBusinessDay(date time.Time) time.Time
	ShiftBusinessDays(date time.Time, n int) time.Time
	BusinessDaysBetween(a, b time.Time) int
	BusinessDayRange(start, end time.Time, includeEnd bool) []time.Time
	YearBusinessDays(year int) []time.Time
	YearHolidays(year int) []models.HolidayDate

	// Custom-holiday management (persisted).
	ListCustomHolidays(ctx context.Context) ([]models.CustomHoliday, error)
	AddCustomHoliday(ctx context.Context, name string, month, day int) (models.CustomHoliday, error)
	RemoveCustomHoliday(ctx context.Context, id int64) (bool, error)

	// Reload rebuilds the working calendar from the database.
	Reload(ctx context.Context) error
	// WarmYears precomputes the holiday sets of [from, to] concurrently.
	WarmYears(ctx context.Context, from, to int) error
}

type calendarService struct {
	repo storage.HolidaysRepository

	mu  sync.RWMutex
	cal *calendar.Calendar
}

// NewCalendarService builds a service backed by the national calendar. Call
// Reload to layer in the persisted custom holidays.
func NewCalendarService(repo storage.HolidaysRepository) CalendarService {
	return &calendarService{
		repo: repo,
		cal:  calendar.NewBrazil(),
	}
}

// calendarRef returns the current working calendar. The pointer is swapped
// atomically under the lock on reload; published calendars are immutable
// aside from their internal memo cache.
func (s *calendarService) calendarRef() *calendar.Calendar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cal
}

func (s *calendarService) BusinessDayInfo(date time.Time) (bool, string, bool) {
	cal := s.calendarRef()
	name, isHoliday := cal.HolidayName(date)
	return cal.IsBusinessDay(date), name, isHoliday
}

func (s *calendarService) NextBusinessDay(date time.Time) time.Time {
	return s.calendarRef().NextBusinessDay(date)
}

func (s *calendarService) PreviousBusinessDay(date time.Time) time.Time {
	return s.calendarRef().PreviousBusinessDay(date)
}

func (s *calendarService) ShiftBusinessDays(date time.Time, n int) time.Time {
	return s.calendarRef().ShiftBusinessDays(date, n)
}

func (s *calendarService) BusinessDaysBetween(a, b time.Time) int {
	return s.calendarRef().BusinessDaysBetween(a, b)
}

func (s *calendarService) BusinessDayRange(start, end time.Time, includeEnd bool) []time.Time {
	return s.calendarRef().BusinessDayRange(start, end, includeEnd)
}

func (s *calendarService) YearBusinessDays(year int) []time.Time {
	return s.calendarRef().YearBusinessDays(year)
}

func (s *calendarService) YearHolidays(year int) []models.HolidayDate {
	cal := s.calendarRef()
	dates := cal.HolidaysForYear(year)
	out := make([]models.HolidayDate, 0, len(dates))
	for _, d := range dates {
		name, _ := cal.HolidayName(d)
		out = append(out, models.HolidayDate{Date: d, Name: name})
	}
	return out
}

func (s *calendarService) ListCustomHolidays(ctx context.Context) ([]models.CustomHoliday, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.ListCustomHolidays()
}

func (s *calendarService) AddCustomHoliday(ctx context.Context, name string, month, day int) (models.CustomHoliday, error) {
	// Validate against a non-leap year. Feb 29 is rejected: a fixed
	// month/day holiday must exist in every year.
	if _, err := calendar.NewDate(2001, time.Month(month), day); err != nil {
		return models.CustomHoliday{}, err
	}

	h, err := s.repo.InsertCustomHoliday(name, month, day)
	if err != nil {
		return models.CustomHoliday{}, err
	}
	if err := s.Reload(ctx); err != nil {
		return models.CustomHoliday{}, fmt.Errorf("reload after insert: %w", err)
	}
	return h, nil
}

func (s *calendarService) RemoveCustomHoliday(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.DeleteCustomHoliday(id)
	if err != nil || !deleted {
		return deleted, err
	}
	if err := s.Reload(ctx); err != nil {
		return true, fmt.Errorf("reload after delete: %w", err)
	}
	return true, nil
}

// Reload reads the custom holidays from the database and swaps in a fresh
// calendar built from the national table plus those entries.
func (s *calendarService) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	customs, err := s.repo.ListCustomHolidays()
	if err != nil {
		return fmt.Errorf("load custom holidays: %w", err)
	}

	extra := make([]calendar.Holiday, 0, len(customs))
	for _, c := range customs {
		extra = append(extra, calendar.Holiday{
			Name:  c.Name,
			Month: time.Month(c.Month),
			Day:   c.Day,
		})
	}
	cal := calendar.NewBrazil(extra...)

	s.mu.Lock()
	s.cal = cal
	s.mu.Unlock()

	logger.L().Info().Int("custom_holidays", len(customs)).Msg("calendar reloaded")
	return nil
}

// WarmYears fills the per-year holiday memo for [from, to]. Purely an
// optimization; errors only surface from context cancellation.
func (s *calendarService) WarmYears(ctx context.Context, from, to int) error {
	if from > to {
		from, to = to, from
	}
	cal := s.calendarRef()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for year := from; year <= to; year++ {
		y := year
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cal.HolidaysForYear(y)
			return nil
		})
	}
	return g.Wait()
}
