package analyzer

import (
	"fmt"
	"time"
)

// dayLayout is the date format read from workout records. Only the first 10
// characters of a record's date are ever interpreted.
const dayLayout = "2006-01-02"

// WeekKey identifies an ISO-8601 calendar week. The year is the ISO week-year,
// which near year boundaries may differ from the calendar year of the date.
type WeekKey struct {
	Year int
	Week int
}

// String serializes the key in the "2025-W01" form used at API boundaries.
func (k WeekKey) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}

// ParseDay parses the first 10 characters of a workout date string as a
// YYYY-MM-DD calendar day in UTC.
func ParseDay(date string) (time.Time, error) {
	if len(date) > 10 {
		date = date[:10]
	}
	return time.ParseInLocation(dayLayout, date, time.UTC)
}

// WeekKeyFor returns the ISO week containing the given date string. Callers
// must skip records whose date does not parse rather than fail the analysis.
func WeekKeyFor(date string) (WeekKey, error) {
	day, err := ParseDay(date)
	if err != nil {
		return WeekKey{}, err
	}
	year, week := day.ISOWeek()
	return WeekKey{Year: year, Week: week}, nil
}

// truncateToDay drops the time-of-day component, keeping the UTC calendar day.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
