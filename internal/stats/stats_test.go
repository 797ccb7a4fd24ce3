package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/vibe/internal/entry"
)

// Helper function to create test times with specific dates
func makeTime(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

// Helper function to create entries on the given dates
func makeEntries(dates ...string) []entry.Entry {
	entries := make([]entry.Entry, 0, len(dates))
	for i, d := range dates {
		entries = append(entries, entry.Entry{
			ID:   int64(len(dates) - i),
			Date: d,
			Mood: entry.MoodGood,
		})
	}
	return entries
}

var today = makeTime(2024, time.June, 10, 14, 0, 0)

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"only today", []string{"2024-06-10"}, 1},
		{"today and yesterday", []string{"2024-06-10", "2024-06-09"}, 2},
		{"gap after today", []string{"2024-06-10", "2024-06-08"}, 1},
		{"nothing today", []string{"2024-06-09", "2024-06-08"}, 0},
		{"two entries today", []string{"2024-06-10", "2024-06-10"}, 1},
		{"duplicates inside run", []string{"2024-06-10", "2024-06-09", "2024-06-09", "2024-06-08"}, 3},
		{"unsorted input", []string{"2024-06-08", "2024-06-10", "2024-06-09"}, 3},
		{"future entry at head", []string{"2024-06-12", "2024-06-10"}, 0},
		{"only tomorrow", []string{"2024-06-11"}, 0},
		{"run broken later", []string{"2024-06-10", "2024-06-09", "2024-06-07", "2024-06-06"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreak(makeEntries(tt.dates...), today))
		})
	}
}

func TestComputeStreak_TimeOfDayIgnored(t *testing.T) {
	entries := makeEntries("2024-06-10", "2024-06-09")
	assert.Equal(t, 2, ComputeStreak(entries, makeTime(2024, time.June, 10, 0, 0, 1)))
	assert.Equal(t, 2, ComputeStreak(entries, makeTime(2024, time.June, 10, 23, 59, 59)))
}

func TestComputeStreak_AcrossMonthAndYear(t *testing.T) {
	entries := makeEntries("2024-01-01", "2023-12-31", "2023-12-30")
	assert.Equal(t, 3, ComputeStreak(entries, makeTime(2024, time.January, 1, 8, 0, 0)))
}

func TestComputeStreak_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("timezone data unavailable")
	}
	orig := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })

	// Clocks moved forward on 2024-03-10.
	entries := makeEntries("2024-03-11", "2024-03-10", "2024-03-09")
	now := time.Date(2024, time.March, 11, 0, 30, 0, 0, loc)
	assert.Equal(t, 3, ComputeStreak(entries, now))
}

func TestComputeStreak_DoesNotReorderInput(t *testing.T) {
	entries := makeEntries("2024-06-08", "2024-06-10")
	ComputeStreak(entries, today)
	assert.Equal(t, "2024-06-08", entries[0].Date)
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"single", []string{"2024-01-01"}, 1},
		{"older run wins", []string{"2024-06-10", "2024-05-03", "2024-05-02", "2024-05-01"}, 3},
		{"duplicates count once", []string{"2024-06-10", "2024-06-10", "2024-06-09"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(makeEntries(tt.dates...)))
		})
	}
}

func TestStreakLabel(t *testing.T) {
	assert.Equal(t, "0 days", StreakLabel(nil, today))
	assert.Equal(t, "1 day", StreakLabel(makeEntries("2024-06-10"), today))
	assert.Equal(t, "2 days", StreakLabel(makeEntries("2024-06-10", "2024-06-09"), today))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "0 days", FormatDays(0))
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "12 days", FormatDays(12))
}

func TestTotalCount(t *testing.T) {
	assert.Equal(t, 0, TotalCount(nil))
	assert.Equal(t, 3, TotalCount(makeEntries("2024-06-10", "2024-06-10", "2024-01-01")))
}

func TestSummarize(t *testing.T) {
	entries := makeEntries("2024-06-10", "2024-06-09", "2024-06-09", "2024-06-01")
	entries[1].Mood = entry.MoodRough

	s := Summarize(entries, today)
	assert.Equal(t, 4, s.TotalCount)
	assert.Equal(t, 2, s.Streak)
	assert.Equal(t, "2 days", s.StreakLabel)
	assert.Equal(t, 2, s.LongestStreak)
	assert.Equal(t, 3, s.DaysWithEntries)

	require.Len(t, s.Moods, len(entry.Moods))
	assert.Equal(t, entry.MoodAmazing, s.Moods[0].Mood)
	assert.Equal(t, 0, s.Moods[0].Count)
	assert.Equal(t, 3, s.Moods[1].Count)
	assert.InDelta(t, 75.0, s.Moods[1].Percentage, 0.001)
	assert.Equal(t, 1, s.Moods[3].Count)
	assert.InDelta(t, 25.0, s.Moods[3].Percentage, 0.001)
}

func TestCalculateMoodBreakdown_Empty(t *testing.T) {
	breakdown := CalculateMoodBreakdown(nil)
	require.Len(t, breakdown, len(entry.Moods))
	for _, b := range breakdown {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percentage)
	}
}
