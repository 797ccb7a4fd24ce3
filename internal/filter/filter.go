package filter

import (
	"strings"
	"time"

	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/timeutil"
)

// Filter represents search and filtering criteria for journal entries.
// All filter fields are optional - empty values match all entries.
type Filter struct {
	Keyword string       // Case-insensitive substring search in entry notes
	Moods   []entry.Mood // Entry mood must be one of these (OR logic)
	Start   time.Time    // Earliest entry date (inclusive); zero means unbounded
	End     time.Time    // Latest entry date (inclusive); zero means unbounded
}

// NewFilter creates a new Filter with the given criteria.
// All parameters are optional - pass empty values to match all entries.
func NewFilter(keyword string, moods []entry.Mood, start, end time.Time) *Filter {
	return &Filter{
		Keyword: keyword,
		Moods:   moods,
		Start:   start,
		End:     end,
	}
}

// IsEmpty returns true if all filter fields are empty (matches all entries)
func (f *Filter) IsEmpty() bool {
	return f.Keyword == "" && len(f.Moods) == 0 && f.Start.IsZero() && f.End.IsZero()
}

// FilterEntries returns a new slice containing only entries that match the filter criteria.
// Order is preserved. If the filter is empty, returns all entries.
func FilterEntries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f == nil || f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the entry's notes (case-insensitive).
// An empty keyword matches all entries.
func (f *Filter) MatchesKeyword(e entry.Entry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Notes), strings.ToLower(f.Keyword))
}

// MatchesMood returns true if the entry's mood is one of the filter moods.
// An empty mood list matches all entries.
func (f *Filter) MatchesMood(e entry.Entry) bool {
	if len(f.Moods) == 0 {
		return true
	}
	for _, m := range f.Moods {
		if e.Mood == m {
			return true
		}
	}
	return false
}

// MatchesDate returns true if the entry's calendar date falls within the range.
// Entries with an unparsable date only match an unbounded range.
func (f *Filter) MatchesDate(e entry.Entry) bool {
	if f.Start.IsZero() && f.End.IsZero() {
		return true
	}
	d, err := timeutil.ParseISODate(e.Date)
	if err != nil {
		return false
	}
	return timeutil.IsInRange(d, f.Start, f.End)
}

// Matches returns true if the entry satisfies every filter criterion.
func (f *Filter) Matches(e entry.Entry) bool {
	return f.MatchesKeyword(e) && f.MatchesMood(e) && f.MatchesDate(e)
}
