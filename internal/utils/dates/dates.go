// Package dates provides calendar-correct date arithmetic for subscription
// terms and billing schedules.
package dates

import "time"

// AddMonths adds n calendar months to t, clamping the day of month to the
// last day of the target month (Jan 31 + 1 month = Feb 28/29). This is NOT
// the same as time.AddDate, which normalizes overflow into the next month.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	// First day of the target month, letting time.Date normalize the month.
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := DaysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	h, m, s := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, h, m, s, t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
