// Package calendar holds the date arithmetic shared by billing cycles and terms.
package calendar

import "time"

// AddMonths moves t by n calendar months. When the target month is shorter than the source
// day of month, the result is clamped to the last day of the target month (Jan 31 + 1 month
// is Feb 28 or 29), keeping the time of day and location.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := DaysIn(firstOfTarget.Year(), firstOfTarget.Month(), t.Location())
	if day > last {
		day = last
	}
	hour, minute, sec := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// AddYears moves t by n calendar years with the same clamping as AddMonths (Feb 29 + 1 year
// is Feb 28).
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
