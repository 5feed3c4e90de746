package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renanmoretto/dias-uteis/internal/calendar"
	"github.com/renanmoretto/dias-uteis/internal/domain/dto"
	"github.com/renanmoretto/dias-uteis/internal/domain/models"
	"github.com/renanmoretto/dias-uteis/internal/service"
	"github.com/renanmoretto/dias-uteis/internal/storage"
)

// mockCalendarService delegates the pure queries to a real national calendar
// and answers the persistence calls from canned fields.
type mockCalendarService struct {
	cal *calendar.Calendar

	customs   []models.CustomHoliday
	created   models.CustomHoliday
	deleted   bool
	customErr error
}

func newMockService() *mockCalendarService {
	return &mockCalendarService{cal: calendar.NewBrazil()}
}

func (m *mockCalendarService) BusinessDayInfo(date time.Time) (bool, string, bool) {
	name, holiday := m.cal.HolidayName(date)
	return m.cal.IsBusinessDay(date), name, holiday
}

func (m *mockCalendarService) NextBusinessDay(date time.Time) time.Time {
	return m.cal.NextBusinessDay(date)
}

func (m *mockCalendarService) PreviousBusinessDay(date time.Time) time.Time {
	return m.cal.PreviousBusinessDay(date)
}

func (m *mockCalendarService) ShiftBusinessDays(date time.Time, n int) time.Time {
	return m.cal.ShiftBusinessDays(date, n)
}

func (m *mockCalendarService) BusinessDaysBetween(a, b time.Time) int {
	return m.cal.BusinessDaysBetween(a, b)
}

func (m *mockCalendarService) BusinessDayRange(start, end time.Time, includeEnd bool) []time.Time {
	return m.cal.BusinessDayRange(start, end, includeEnd)
}

func (m *mockCalendarService) YearBusinessDays(year int) []time.Time {
	return m.cal.YearBusinessDays(year)
}

func (m *mockCalendarService) YearHolidays(year int) []models.HolidayDate {
	hs := m.cal.HolidaysForYear(year)
	out := make([]models.HolidayDate, 0, len(hs))
	for _, d := range hs {
		name, _ := m.cal.HolidayName(d)
		out = append(out, models.HolidayDate{Date: d, Name: name})
	}
	return out
}

func (m *mockCalendarService) ListCustomHolidays(_ context.Context) ([]models.CustomHoliday, error) {
	return m.customs, m.customErr
}

func (m *mockCalendarService) AddCustomHoliday(_ context.Context, name string, month, day int) (models.CustomHoliday, error) {
	if m.customErr != nil {
		return models.CustomHoliday{}, m.customErr
	}
	if _, err := calendar.NewDate(2001, time.Month(month), day); err != nil {
		return models.CustomHoliday{}, err
	}
	return m.created, nil
}

func (m *mockCalendarService) RemoveCustomHoliday(_ context.Context, _ int64) (bool, error) {
	return m.deleted, m.customErr
}

func (m *mockCalendarService) Reload(_ context.Context) error { return m.customErr }

func (m *mockCalendarService) WarmYears(_ context.Context, _, _ int) error { return nil }

var _ service.CalendarService = (*mockCalendarService)(nil)

func setupRouterWithMock(s service.CalendarService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/business-day", h.GetBusinessDay)
	v1.GET("/business-day/next", h.GetNextBusinessDay)
	v1.GET("/business-day/previous", h.GetPreviousBusinessDay)
	v1.GET("/business-day/shift", h.GetShift)
	v1.GET("/business-day/diff", h.GetDiff)
	v1.GET("/business-day/range", h.GetRange)
	v1.GET("/year/:year/business-days", h.GetYearBusinessDays)
	v1.GET("/year/:year/holidays", h.GetYearHolidays)
	v1.GET("/holidays/custom", h.ListCustomHolidays)
	v1.POST("/holidays/custom", h.AddCustomHoliday)
	v1.DELETE("/holidays/custom/:id", h.RemoveCustomHoliday)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetBusinessDay_TableDriven(t *testing.T) {
	r := setupRouterWithMock(newMockService())

	cases := []struct {
		name   string
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing date",
			query:  "/api/v1/business-day",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid format",
			query:  "/api/v1/business-day?date=08-11-2023",
			status: http.StatusBadRequest,
		},
		{
			name:   "nonexistent date",
			query:  "/api/v1/business-day?date=2023-02-30",
			status: http.StatusBadRequest,
		},
		{
			name:   "regular business day",
			query:  "/api/v1/business-day?date=2023-11-08",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.BusinessDayResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !out.BusinessDay || out.Holiday || out.Weekday != "Wednesday" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "holiday",
			query:  "/api/v1/business-day?date=2023-06-08",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.BusinessDayResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.BusinessDay || !out.Holiday || out.HolidayName != "Corpus Christi" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, tc.query, nil)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tc.status, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestStepEndpoints(t *testing.T) {
	r := setupRouterWithMock(newMockService())

	cases := []struct {
		name     string
		query    string
		wantDate string
	}{
		{"next over holiday", "/api/v1/business-day/next?date=2023-11-14", "2023-11-16"},
		{"previous over holiday", "/api/v1/business-day/previous?date=2023-11-16", "2023-11-14"},
		{"next over carnival", "/api/v1/business-day/next?date=2024-02-09", "2024-02-14"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, tc.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
			}
			var out dto.StepResponse
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if out.Date != tc.wantDate {
				t.Fatalf("date = %q, want %q", out.Date, tc.wantDate)
			}
		})
	}
}

func TestStepEndpoints_DateOptional(t *testing.T) {
	r := setupRouterWithMock(newMockService())

	w := doRequest(t, r, http.MethodGet, "/api/v1/business-day/next", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	var out dto.StepResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.From != "" {
		t.Fatalf("from = %q, want empty when date omitted", out.From)
	}
	if out.Date == "" {
		t.Fatal("date should not be empty")
	}
}

func TestGetShift(t *testing.T) {
	r := setupRouterWithMock(newMockService())

	cases := []struct {
		name   string
		query  string
		status int
		want   string
	}{
		{"forward", "/api/v1/business-day/shift?date=2023-11-08&days=5", http.StatusOK, "2023-11-16"},
		{"backward", "/api/v1/business-day/shift?date=2023-11-08&days=-2", http.StatusOK, "2023-11-06"},
		{"zero", "/api/v1/business-day/shift?date=2023-11-08&days=0", http.StatusOK, "2023-11-08"},
		{"missing days", "/api/v1/business-day/shift?date=2023-11-08", http.StatusBadRequest, ""},
		{"bad days", "/api/v1/business-day/shift?date=2023-11-08&days=abc", http.StatusBadRequest, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, tc.query, nil)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tc.status, w.Body.String())
			}
			if tc.want == "" {
				return
			}
			var out dto.ShiftResponse
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if out.Date != tc.want {
				t.Fatalf("date = %q, want %q", out.Date, tc.want)
			}
		})
	}
}

func TestGetDiff(t *testing.T) {
	r := setupRouterWithMock(newMockService())

	w := doRequest(t, r, http.MethodGet, "/api/v1/business-day/diff?from=2023-11-06&to=2023-11-16", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	var out dto.DiffResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.BusinessDays != 7 {
		t.Fatalf("business_days = %d, want 7", out.BusinessDays)
	}

	w = doRequest(t, r, http.MethodGet, "/api/v1/business-day/diff?from=2023-11-06", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing 'to' should be 400, got %d", w.Code)
	}
}

func TestGetRange(t *testing.T) {
	r := setupRouterWithMock(newMockService())

	w := doRequest(t, r, http.MethodGet, "/api/v1/business-day/range?start=2023-11-01&end=2023-11-30", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	var out dto.RangeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Count != 19 || len(out.Dates) != 19 {
		t.Fatalf("count = %d (dates %d), want 19", out.Count, len(out.Dates))
	}

	w = doRequest(t, r, http.MethodGet, "/api/v1/business-day/range?start=2023-11-01&end=2023-11-30&include_end=true", nil)
	var outEnd dto.RangeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &outEnd); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if outEnd.Count != 20 {
		t.Fatalf("count with include_end = %d, want 20", outEnd.Count)
	}

	w = doRequest(t, r, http.MethodGet, "/api/v1/business-day/range?start=2023-11-01&end=2023-11-30&include_end=maybe", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad include_end should be 400, got %d", w.Code)
	}
}

func TestYearEndpoints(t *testing.T) {
	r := setupRouterWithMock(newMockService())

	w := doRequest(t, r, http.MethodGet, "/api/v1/year/2023/business-days", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	var days dto.YearBusinessDaysResponse
	if err := json.Unmarshal(w.Body.Bytes(), &days); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if days.Count != 249 {
		t.Fatalf("count = %d, want 249", days.Count)
	}

	w = doRequest(t, r, http.MethodGet, "/api/v1/year/2023/holidays", nil)
	var hs dto.YearHolidaysResponse
	if err := json.Unmarshal(w.Body.Bytes(), &hs); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if hs.Count != 12 {
		t.Fatalf("count = %d, want 12", hs.Count)
	}
	if hs.Holidays[0].Date != "2023-01-01" || hs.Holidays[0].Name != "Ano Novo" {
		t.Fatalf("unexpected first holiday: %+v", hs.Holidays[0])
	}

	for _, bad := range []string{"/api/v1/year/abc/holidays", "/api/v1/year/1000/business-days"} {
		w = doRequest(t, r, http.MethodGet, bad, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", bad, w.Code)
		}
	}
}

func TestCustomHolidayEndpoints(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svc := newMockService()
		svc.customs = []models.CustomHoliday{{ID: 1, Name: "Consciência Negra", Month: 11, Day: 20}}
		r := setupRouterWithMock(svc)

		w := doRequest(t, r, http.MethodGet, "/api/v1/holidays/custom", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var out []models.CustomHoliday
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(out) != 1 || out[0].Name != "Consciência Negra" {
			t.Fatalf("unexpected body: %+v", out)
		}
	})

	t.Run("list error", func(t *testing.T) {
		svc := newMockService()
		svc.customErr = errors.New("db down")
		r := setupRouterWithMock(svc)

		w := doRequest(t, r, http.MethodGet, "/api/v1/holidays/custom", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
	})

	t.Run("add", func(t *testing.T) {
		svc := newMockService()
		svc.created = models.CustomHoliday{ID: 7, Name: "Consciência Negra", Month: 11, Day: 20}
		r := setupRouterWithMock(svc)

		body := []byte(`{"name":"Consciência Negra","month":11,"day":20}`)
		w := doRequest(t, r, http.MethodPost, "/api/v1/holidays/custom", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
		}
		var out models.CustomHoliday
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.ID != 7 {
			t.Fatalf("id = %d, want 7", out.ID)
		}
	})

	t.Run("add invalid body", func(t *testing.T) {
		r := setupRouterWithMock(newMockService())
		w := doRequest(t, r, http.MethodPost, "/api/v1/holidays/custom", []byte(`{"month":13}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("add nonexistent date", func(t *testing.T) {
		r := setupRouterWithMock(newMockService())
		w := doRequest(t, r, http.MethodPost, "/api/v1/holidays/custom", []byte(`{"name":"x","month":2,"day":30}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("add duplicate", func(t *testing.T) {
		svc := newMockService()
		svc.customErr = storage.ErrDuplicateHoliday
		r := setupRouterWithMock(svc)

		body := []byte(`{"name":"x","month":11,"day":20}`)
		w := doRequest(t, r, http.MethodPost, "/api/v1/holidays/custom", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		svc := newMockService()
		svc.deleted = true
		r := setupRouterWithMock(svc)

		w := doRequest(t, r, http.MethodDelete, "/api/v1/holidays/custom/7", nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		r := setupRouterWithMock(newMockService())
		w := doRequest(t, r, http.MethodDelete, "/api/v1/holidays/custom/99", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("delete bad id", func(t *testing.T) {
		r := setupRouterWithMock(newMockService())
		w := doRequest(t, r, http.MethodDelete, "/api/v1/holidays/custom/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
