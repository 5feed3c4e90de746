package models

import "time"

// HolidayDate is a resolved holiday occurrence in a concrete year.
//
// It pairs the calendar date with the holiday's name so API responses and
// exports can label the date (e.g. 2023-06-08 / "Corpus Christi").
type HolidayDate struct {
	Date time.Time `json:"date"`
	Name string    `json:"name" example:"Corpus Christi"`
}

// CustomHoliday is a user-defined extra holiday persisted in the database.
//
// Custom holidays are fixed month/day entries layered on top of the national
// table (e.g. a company anniversary). They repeat every year.
//
// swagger:model CustomHoliday
type CustomHoliday struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Consciência Negra"`
	Month int    `json:"month" example:"11"`
	Day   int    `json:"day" example:"20"`
}
