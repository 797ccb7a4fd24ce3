package timeutil

import (
	"time"

	"github.com/xolan/vibe/internal/entry"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive).
// A zero start or end leaves that side of the range open.
func IsInRange(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && t.After(end) {
		return false
	}
	return true
}

// CalendarDay projects the year/month/day of t onto UTC midnight.
// Two CalendarDay values are always a whole number of days apart, so day
// arithmetic is immune to DST transitions in the local zone.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from earlier to later.
// The result is negative when earlier falls after later.
func DaysBetween(later, earlier time.Time) int {
	return int(CalendarDay(later).Sub(CalendarDay(earlier)).Hours() / 24)
}

// FormatDate formats t as a journal date (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(entry.DateLayout)
}

// FormatDisplayDate renders a journal date as "Mon, Jun 10, 2024".
// Unparsable input is returned unchanged.
func FormatDisplayDate(date string) string {
	t, err := ParseISODate(date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2, 2006")
}
