package stats

import (
	"time"

	"github.com/xolan/vibe/internal/entry"
)

// MoodBreakdown contains statistics for a single mood
type MoodBreakdown struct {
	Mood       entry.Mood
	Count      int
	Percentage float64
}

// Summary is the render-ready projection shown under the entry list and on
// the stats screen.
type Summary struct {
	TotalCount      int
	Streak          int
	StreakLabel     string
	LongestStreak   int
	DaysWithEntries int
	Moods           []MoodBreakdown
}

// Summarize computes every statistic for entries relative to today.
func Summarize(entries []entry.Entry, today time.Time) Summary {
	streak := ComputeStreak(entries, today)
	return Summary{
		TotalCount:      TotalCount(entries),
		Streak:          streak,
		StreakLabel:     FormatDays(streak),
		LongestStreak:   LongestStreak(entries),
		DaysWithEntries: DaysWithEntries(entries),
		Moods:           CalculateMoodBreakdown(entries),
	}
}

// CalculateMoodBreakdown counts entries per mood. Every mood is present in
// the result, in display order, so charts keep a stable layout.
func CalculateMoodBreakdown(entries []entry.Entry) []MoodBreakdown {
	counts := make(map[entry.Mood]int, len(entry.Moods))
	for _, e := range entries {
		counts[e.Mood]++
	}

	breakdowns := make([]MoodBreakdown, 0, len(entry.Moods))
	for _, m := range entry.Moods {
		b := MoodBreakdown{Mood: m, Count: counts[m]}
		if len(entries) > 0 {
			b.Percentage = float64(b.Count) * 100 / float64(len(entries))
		}
		breakdowns = append(breakdowns, b)
	}
	return breakdowns
}
