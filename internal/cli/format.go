// Package cli provides output formatting shared by the vibe commands and TUI.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/storage"
	"github.com/xolan/vibe/internal/timeutil"
)

// MaxWarningContent is the number of characters of a skipped record shown in warnings
const MaxWarningContent = 50

// FormatMood renders a mood as "😄 Amazing".
func FormatMood(m entry.Mood) string {
	return fmt.Sprintf("%s %s", m.Emoji(), m.Title())
}

// FormatEntry formats an entry for a single-line listing:
// "😄 Amazing  Mon, Jun 10, 2024  notes"
func FormatEntry(e entry.Entry) string {
	line := fmt.Sprintf("%-14s %s", FormatMood(e.Mood), timeutil.FormatDisplayDate(e.Date))
	if e.HasNotes() {
		line += "  " + e.Notes
	}
	return line
}

// FormatEntryWithID prefixes FormatEntry with the entry id used by delete.
func FormatEntryWithID(e entry.Entry) string {
	return fmt.Sprintf("[%d] %s", e.ID, FormatEntry(e))
}

// FormatParseWarning formats a skipped stored record for display.
func FormatParseWarning(warning storage.ParseWarning) string {
	content := strings.Join(strings.Fields(warning.Content), " ")
	if len(content) > MaxWarningContent {
		content = content[:MaxWarningContent-3] + "..."
	}
	return fmt.Sprintf("  Record %d: %s (error: %s)", warning.Index+1, content, warning.Error)
}

// FormatFilterDescription describes active list filters, e.g.
// "mood: good, rough; search: \"gym\"; Jun 1, 2024 - Jun 10, 2024".
// Returns an empty string when nothing is filtered.
func FormatFilterDescription(moods []entry.Mood, keyword string, start, end time.Time) string {
	var parts []string
	if len(moods) > 0 {
		names := make([]string, len(moods))
		for i, m := range moods {
			names[i] = string(m)
		}
		parts = append(parts, "mood: "+strings.Join(names, ", "))
	}
	if keyword != "" {
		parts = append(parts, fmt.Sprintf("search: %q", keyword))
	}
	if !start.IsZero() || !end.IsZero() {
		parts = append(parts, FormatDateRangeForDisplay(start, end))
	}
	return strings.Join(parts, "; ")
}

// FormatDateRangeForDisplay formats a date range for human-readable display.
// A zero start or end is shown as an open side.
func FormatDateRangeForDisplay(start, end time.Time) string {
	switch {
	case start.IsZero() && end.IsZero():
		return "all time"
	case start.IsZero():
		return "until " + end.Format("Jan 2, 2006")
	case end.IsZero():
		return "since " + start.Format("Jan 2, 2006")
	}
	if start.Format(entry.DateLayout) == end.Format(entry.DateLayout) {
		return start.Format("Mon, Jan 2, 2006")
	}
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

// FormatBar renders a proportional bar of width cells for a percentage.
func FormatBar(percentage float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percentage/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if n := len(word); n > 1 && word[n-1] == 'y' && !strings.ContainsRune("aeiou", rune(word[n-2])) {
		return word[:n-1] + "ies"
	}
	return word + "s"
}

// Truncate shortens s to at most n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
