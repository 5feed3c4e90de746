package dto

// calendar_response.go holds the response/request DTOs of the business-day
// endpoints. Dates travel as "YYYY-MM-DD" strings; the API has no
// time-of-day concept.

// BusinessDayResponse answers "is this date a business day?".
type BusinessDayResponse struct {
	Date        string `json:"date" example:"2023-11-08"`
	Weekday     string `json:"weekday" example:"Wednesday"`
	BusinessDay bool   `json:"business_day" example:"true"`
	Holiday     bool   `json:"holiday" example:"false"`
	HolidayName string `json:"holiday_name,omitempty" example:"Corpus Christi"`
}

// StepResponse is returned by the next/previous endpoints. From is empty
// when the caller omitted the date and the engine anchored on today.
type StepResponse struct {
	From string `json:"from,omitempty" example:"2023-11-14"`
	Date string `json:"date" example:"2023-11-16"`
}

// ShiftResponse is returned by the shift endpoint.
type ShiftResponse struct {
	From string `json:"from" example:"2023-11-08"`
	Days int    `json:"days" example:"5"`
	Date string `json:"date" example:"2023-11-16"`
}

// DiffResponse is returned by the diff endpoint. BusinessDays is signed:
// negative when "to" precedes "from".
type DiffResponse struct {
	From         string `json:"from" example:"2023-11-06"`
	To           string `json:"to" example:"2023-11-16"`
	BusinessDays int    `json:"business_days" example:"7"`
}

// RangeResponse is returned by the range endpoint.
type RangeResponse struct {
	Start      string   `json:"start" example:"2023-11-01"`
	End        string   `json:"end" example:"2023-11-30"`
	IncludeEnd bool     `json:"include_end" example:"false"`
	Count      int      `json:"count" example:"19"`
	Dates      []string `json:"dates"`
}

// YearBusinessDaysResponse is returned by the per-year business-day listing.
type YearBusinessDaysResponse struct {
	Year  int      `json:"year" example:"2023"`
	Count int      `json:"count" example:"249"`
	Dates []string `json:"dates"`
}

// HolidayEntry is one named holiday occurrence.
type HolidayEntry struct {
	Date string `json:"date" example:"2023-06-08"`
	Name string `json:"name" example:"Corpus Christi"`
}

// YearHolidaysResponse is returned by the per-year holiday listing.
type YearHolidaysResponse struct {
	Year     int            `json:"year" example:"2023"`
	Count    int            `json:"count" example:"12"`
	Holidays []HolidayEntry `json:"holidays"`
}

// CustomHolidayRequest creates a user-defined fixed holiday.
type CustomHolidayRequest struct {
	Name  string `json:"name" binding:"required" example:"Consciência Negra"`
	Month int    `json:"month" binding:"required,min=1,max=12" example:"11"`
	Day   int    `json:"day" binding:"required,min=1,max=31" example:"20"`
}
