package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renanmoretto/dias-uteis/internal/calendar"
	"github.com/renanmoretto/dias-uteis/internal/domain/dto"
	"github.com/renanmoretto/dias-uteis/internal/service"
	"github.com/renanmoretto/dias-uteis/internal/storage"
)

const dateLayout = "2006-01-02"

// Handler provides the HTTP handlers of the business-day endpoints.
//
// Responsibilities:
//   - Validate incoming query/path parameters
//   - Delegate to the service layer
//   - Translate results into response DTOs with appropriate status codes
type Handler struct {
	svc service.CalendarService
}

// NewHandler constructs a Handler ready to be registered with the router.
func NewHandler(svc service.CalendarService) *Handler {
	return &Handler{svc: svc}
}

// parseDateParam reads and validates a YYYY-MM-DD query parameter. When the
// parameter is absent and required is false, a zero time is returned, which
// the engine interprets as "today". Responds 400 and reports ok=false on
// malformed input.
func (h *Handler) parseDateParam(c *gin.Context, name string, required bool) (time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		if required {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("'"+name+"' is required", nil))
			return time.Time{}, false
		}
		return time.Time{}, true
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid '"+name+"' format, expected YYYY-MM-DD", err))
		return time.Time{}, false
	}
	d, err := calendar.NewDate(parsed.Year(), parsed.Month(), parsed.Day())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid '"+name+"'", err))
		return time.Time{}, false
	}
	return d, true
}

func (h *Handler) parseYearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || !calendar.ValidYear(year) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid year", err))
		return 0, false
	}
	return year, true
}

func formatDates(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}
	return out
}

// GetBusinessDay godoc
// @Summary      Check a date
// @Description  Reports whether the date is a business day and/or a national holiday
// @Tags         business-day
// @Produce      json
// @Param        date  query     string  true  "Date in YYYY-MM-DD"  example(2023-11-08)
// @Success      200   {object}  dto.BusinessDayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/business-day [get]
func (h *Handler) GetBusinessDay(c *gin.Context) {
	d, ok := h.parseDateParam(c, "date", true)
	if !ok {
		return
	}

	business, name, holiday := h.svc.BusinessDayInfo(d)
	c.JSON(http.StatusOK, dto.BusinessDayResponse{
		Date:        d.Format(dateLayout),
		Weekday:     d.Weekday().String(),
		BusinessDay: business,
		Holiday:     holiday,
		HolidayName: name,
	})
}

// GetNextBusinessDay godoc
// @Summary      Next business day
// @Description  First business day strictly after the date (today when omitted)
// @Tags         business-day
// @Produce      json
// @Param        date  query     string  false  "Date in YYYY-MM-DD"  example(2023-11-14)
// @Success      200   {object}  dto.StepResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/business-day/next [get]
func (h *Handler) GetNextBusinessDay(c *gin.Context) {
	d, ok := h.parseDateParam(c, "date", false)
	if !ok {
		return
	}

	next := h.svc.NextBusinessDay(d)
	c.JSON(http.StatusOK, dto.StepResponse{
		From: fromString(d),
		Date: next.Format(dateLayout),
	})
}

// GetPreviousBusinessDay godoc
// @Summary      Previous business day
// @Description  Last business day strictly before the date (today when omitted)
// @Tags         business-day
// @Produce      json
// @Param        date  query     string  false  "Date in YYYY-MM-DD"  example(2023-11-16)
// @Success      200   {object}  dto.StepResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/business-day/previous [get]
func (h *Handler) GetPreviousBusinessDay(c *gin.Context) {
	d, ok := h.parseDateParam(c, "date", false)
	if !ok {
		return
	}

	prev := h.svc.PreviousBusinessDay(d)
	c.JSON(http.StatusOK, dto.StepResponse{
		From: fromString(d),
		Date: prev.Format(dateLayout),
	})
}

// fromString renders the "from" date of a step response. When the caller
// omitted the date the engine anchored on today; report an empty string
// instead of recomputing it here.
func fromString(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// GetShift godoc
// @Summary      Shift business days
// @Description  Moves n business days from the date (n may be negative; 0 returns the date itself)
// @Tags         business-day
// @Produce      json
// @Param        date  query     string  true  "Date in YYYY-MM-DD"  example(2023-11-08)
// @Param        days  query     int     true  "Number of business days"  example(5)
// @Success      200   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/business-day/shift [get]
func (h *Handler) GetShift(c *gin.Context) {
	d, ok := h.parseDateParam(c, "date", true)
	if !ok {
		return
	}
	daysParam := c.Query("days")
	if daysParam == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("'days' is required", nil))
		return
	}
	n, err := strconv.Atoi(daysParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'days', expected an integer", err))
		return
	}

	shifted := h.svc.ShiftBusinessDays(d, n)
	c.JSON(http.StatusOK, dto.ShiftResponse{
		From: d.Format(dateLayout),
		Days: n,
		Date: shifted.Format(dateLayout),
	})
}

// GetDiff godoc
// @Summary      Business days between two dates
// @Description  Signed count of business days crossed going from 'from' to 'to'
// @Tags         business-day
// @Produce      json
// @Param        from  query     string  true  "Date in YYYY-MM-DD"  example(2023-11-06)
// @Param        to    query     string  true  "Date in YYYY-MM-DD"  example(2023-11-16)
// @Success      200   {object}  dto.DiffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/business-day/diff [get]
func (h *Handler) GetDiff(c *gin.Context) {
	from, ok := h.parseDateParam(c, "from", true)
	if !ok {
		return
	}
	to, ok := h.parseDateParam(c, "to", true)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.DiffResponse{
		From:         from.Format(dateLayout),
		To:           to.Format(dateLayout),
		BusinessDays: h.svc.BusinessDaysBetween(from, to),
	})
}

// GetRange godoc
// @Summary      Business days in a range
// @Description  Ascending business days in [start, end), or [start, end] with include_end=true. An empty interval yields an empty list.
// @Tags         business-day
// @Produce      json
// @Param        start        query     string  true   "Date in YYYY-MM-DD"  example(2023-11-01)
// @Param        end          query     string  true   "Date in YYYY-MM-DD"  example(2023-11-30)
// @Param        include_end  query     bool    false  "Include the end date"
// @Success      200          {object}  dto.RangeResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/v1/business-day/range [get]
func (h *Handler) GetRange(c *gin.Context) {
	start, ok := h.parseDateParam(c, "start", true)
	if !ok {
		return
	}
	end, ok := h.parseDateParam(c, "end", true)
	if !ok {
		return
	}
	includeEnd, err := strconv.ParseBool(c.DefaultQuery("include_end", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'include_end', expected a boolean", err))
		return
	}

	days := h.svc.BusinessDayRange(start, end, includeEnd)
	c.JSON(http.StatusOK, dto.RangeResponse{
		Start:      start.Format(dateLayout),
		End:        end.Format(dateLayout),
		IncludeEnd: includeEnd,
		Count:      len(days),
		Dates:      formatDates(days),
	})
}

// GetYearBusinessDays godoc
// @Summary      Business days of a year
// @Tags         year
// @Produce      json
// @Param        year  path      int  true  "Year"  example(2023)
// @Success      200   {object}  dto.YearBusinessDaysResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/year/{year}/business-days [get]
func (h *Handler) GetYearBusinessDays(c *gin.Context) {
	year, ok := h.parseYearParam(c)
	if !ok {
		return
	}

	days := h.svc.YearBusinessDays(year)
	c.JSON(http.StatusOK, dto.YearBusinessDaysResponse{
		Year:  year,
		Count: len(days),
		Dates: formatDates(days),
	})
}

// GetYearHolidays godoc
// @Summary      Holidays of a year
// @Tags         year
// @Produce      json
// @Param        year  path      int  true  "Year"  example(2023)
// @Success      200   {object}  dto.YearHolidaysResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/year/{year}/holidays [get]
func (h *Handler) GetYearHolidays(c *gin.Context) {
	year, ok := h.parseYearParam(c)
	if !ok {
		return
	}

	hs := h.svc.YearHolidays(year)
	entries := make([]dto.HolidayEntry, 0, len(hs))
	for _, hd := range hs {
		entries = append(entries, dto.HolidayEntry{
			Date: hd.Date.Format(dateLayout),
			Name: hd.Name,
		})
	}
	c.JSON(http.StatusOK, dto.YearHolidaysResponse{
		Year:     year,
		Count:    len(entries),
		Holidays: entries,
	})
}

// ListCustomHolidays godoc
// @Summary      List custom holidays
// @Tags         custom-holidays
// @Produce      json
// @Success      200  {array}   models.CustomHoliday
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/holidays/custom [get]
func (h *Handler) ListCustomHolidays(c *gin.Context) {
	hs, err := h.svc.ListCustomHolidays(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list custom holidays", err))
		return
	}
	c.JSON(http.StatusOK, hs)
}

// AddCustomHoliday godoc
// @Summary      Add a custom holiday
// @Description  Persists a fixed month/day holiday layered on top of the national calendar
// @Tags         custom-holidays
// @Accept       json
// @Produce      json
// @Param        holiday  body      dto.CustomHolidayRequest  true  "Holiday to add"
// @Success      201      {object}  models.CustomHoliday
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/holidays/custom [post]
func (h *Handler) AddCustomHoliday(c *gin.Context) {
	var req dto.CustomHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	created, err := h.svc.AddCustomHoliday(c.Request.Context(), req.Name, req.Month, req.Day)
	switch {
	case errors.Is(err, calendar.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid month/day", err))
	case errors.Is(err, storage.ErrDuplicateHoliday):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("custom holiday already exists", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to add custom holiday", err))
	default:
		c.JSON(http.StatusCreated, created)
	}
}

// RemoveCustomHoliday godoc
// @Summary      Remove a custom holiday
// @Tags         custom-holidays
// @Produce      json
// @Param        id   path      int  true  "Custom holiday id"
// @Success      204  "No Content"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/holidays/custom/{id} [delete]
func (h *Handler) RemoveCustomHoliday(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id", err))
		return
	}

	deleted, err := h.svc.RemoveCustomHoliday(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to remove custom holiday", err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("custom holiday not found", nil))
		return
	}
	c.Status(http.StatusNoContent)
}
