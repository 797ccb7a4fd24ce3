// Package stats derives display values from the journal: total count,
// the current day streak and the mood breakdown.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/timeutil"
)

// TotalCount returns the number of entries.
func TotalCount(entries []entry.Entry) int {
	return len(entries)
}

// ComputeStreak returns the number of consecutive calendar days, ending
// today, on which at least one entry was recorded. A day without an entry
// today yields 0 even if yesterday had one. Entries dated in the future stop
// the walk, so a future entry at the head of the list yields 0.
func ComputeStreak(entries []entry.Entry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	dates := sortedDates(entries)

	streak := 0
	for _, d := range dates {
		days := timeutil.DaysBetween(today, d)
		switch {
		case days == streak:
			streak++
		case streak > 0 && days == streak-1:
			// Another entry on a day already counted
		default:
			return streak
		}
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days with
// at least one entry, anywhere in the history.
func LongestStreak(entries []entry.Entry) int {
	days := uniqueDays(entries)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if timeutil.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// DaysWithEntries returns the number of distinct dates that have entries.
func DaysWithEntries(entries []entry.Entry) int {
	return len(uniqueDays(entries))
}

// StreakLabel renders the current streak, e.g. "0 days", "1 day", "5 days".
func StreakLabel(entries []entry.Entry, today time.Time) string {
	return FormatDays(ComputeStreak(entries, today))
}

// FormatDays pluralizes a day count.
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// sortedDates parses entry dates and returns them newest first.
// Entries with an unparsable date are ignored.
func sortedDates(entries []entry.Entry) []time.Time {
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		d, err := timeutil.ParseISODate(e.Date)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.SliceStable(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})
	return dates
}

// uniqueDays returns each distinct entry date once, newest first.
func uniqueDays(entries []entry.Entry) []time.Time {
	dates := sortedDates(entries)
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if len(out) > 0 && out[len(out)-1].Equal(d) {
			continue
		}
		out = append(out, d)
	}
	return out
}
