package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/timeutil"
	"github.com/xolan/vibe/internal/tui/ui"
)

// moodColumnWidth fits the longest mood ("😢 Struggling") plus padding
const moodColumnWidth = 14

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected entry index (-1 for none)
}

// RenderEntryList renders entries as aligned "date  mood  notes" rows
func RenderEntryList(entries []entry.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	dateWidth := 0
	dates := make([]string, len(entries))
	for i, e := range entries {
		dates[i] = timeutil.FormatDisplayDate(e.Date)
		dateWidth = max(dateWidth, len(dates[i]))
	}

	notesWidth := max(opts.Width-dateWidth-moodColumnWidth-6, 20)

	var b strings.Builder
	for i, e := range entries {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		dateCol := styles.EntryDate.Render(fmt.Sprintf("%-*s", dateWidth, dates[i]))
		moodCol := styles.Mood(e.Mood).Render(padRight(cli.FormatMood(e.Mood), moodColumnWidth))
		notesCol := styles.EntryNotes.Render(cli.Truncate(e.Notes, notesWidth))

		b.WriteString(style.Render(fmt.Sprintf("%s  %s %s", dateCol, moodCol, notesCol)))
		b.WriteString("\n")
	}

	return b.String()
}

// padRight pads s with spaces to width terminal cells
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderStatLine renders a "label value" row
func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}
