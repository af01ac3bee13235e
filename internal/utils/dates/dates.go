// Package dates provides calendar-day comparisons. Period-lock boundaries
// operate at day granularity: a timestamp anywhere inside a day compares
// equal to any other timestamp in that day.
package dates

import "time"

// DayOf truncates a timestamp to midnight UTC of its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day at midnight UTC.
func Today() time.Time {
	return DayOf(time.Now())
}

// AfterDay reports whether a falls on a later calendar day than b.
func AfterDay(a, b time.Time) bool {
	return DayOf(a).After(DayOf(b))
}

// BeforeDay reports whether a falls on an earlier calendar day than b.
func BeforeDay(a, b time.Time) bool {
	return DayOf(a).Before(DayOf(b))
}

// OnOrBeforeDay reports whether a falls on the same or an earlier calendar day than b.
func OnOrBeforeDay(a, b time.Time) bool {
	return !AfterDay(a, b)
}

// WithinDays reports whether a and b are at most window calendar days apart.
func WithinDays(a, b time.Time, window int) bool {
	da, db := DayOf(a), DayOf(b)
	diff := da.Sub(db)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(window)*24*time.Hour
}
