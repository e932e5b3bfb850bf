// Package types implements value types for Santo Dinheiro.
package types

import (
	"fmt"
	"time"
)

const (
	minYear = 1970
	maxYear = 9999

	// Days before the end of a period at which the planning of
	// the next period should start.
	PlanningAlertDays = 10

	// Days before the end of a period at which the period should be reviewed.
	ReviewAlertDays = 3
)

var ErrInvalidPeriod = fmt.Errorf("the period is invalid, the month must be between 1 and 12 and the year between %d and %d", minYear, maxYear)

// Period is a calendar month in a specific year.
type Period struct {
	Year  int        `json:"year" example:"2025"`
	Month time.Month `json:"month" example:"3" swaggertype:"integer"`
}

// NewPeriod returns a new Period.
func NewPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

// PeriodOf returns the Period in which a time occurs in that time's location.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Validate returns ErrInvalidPeriod if the month or year is out of range.
func (p Period) Validate() error {
	if p.Month < time.January || p.Month > time.December || p.Year < minYear || p.Year > maxYear {
		return ErrInvalidPeriod
	}

	return nil
}

// String returns the period formatted as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Next returns the following period. December rolls over to January of the next year.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}

	return Period{Year: p.Year, Month: p.Month + 1}
}

// Before reports whether p is earlier than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}

	return p.Month < o.Month
}

// Start returns midnight of the first day of the period in loc.
func (p Period) Start(loc *time.Location) time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
}

// Contains reports whether the time instant is in the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// DaysLeft returns the number of calendar days from the day of now until
// the last day of the period. It is 0 on the last day and for past periods.
func (p Period) DaysLeft(now time.Time) int {
	if p.Before(PeriodOf(now)) {
		return 0
	}

	// Dates in UTC, days are always 24 hours long there
	last := time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return int((last.Unix() - today.Unix()) / (24 * 60 * 60))
}

// PlanningAlert reports if the current period ends within the given number
// of days, so that the next one should be planned.
func (p Period) PlanningAlert(now time.Time, days int) bool {
	left := p.DaysLeft(now)
	return p.Contains(now) && left > 0 && left <= days
}

// ReviewAlert reports if the current period is about to end.
func (p Period) ReviewAlert(now time.Time) bool {
	left := p.DaysLeft(now)
	return p.Contains(now) && left > 0 && left <= ReviewAlertDays
}
