package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/vibe/internal/entry"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"ViewTitle", styles.ViewTitle},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusHelp", styles.StatusHelp},
		{"EntrySelected", styles.EntrySelected},
		{"EntryNormal", styles.EntryNormal},
		{"EntryDate", styles.EntryDate},
		{"EntryNotes", styles.EntryNotes},
		{"MoodOption", styles.MoodOption},
		{"MoodOptionSelected", styles.MoodOptionSelected},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"Dialog", styles.Dialog},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.style.Render("test"), "test") {
				t.Errorf("expected rendered output of style %s to contain the text", tt.name)
			}
		})
	}
}

func TestStyles_Mood(t *testing.T) {
	for _, styles := range []Styles{DefaultStyles(), NewThemeProvider("").Styles()} {
		for _, m := range entry.Moods {
			if _, ok := styles.moods[m]; !ok {
				t.Errorf("expected a style for mood %s", m)
			}
			if !strings.Contains(styles.Mood(m).Render(m.Title()), m.Title()) {
				t.Errorf("expected mood style to render %s", m.Title())
			}
		}
	}
}

func TestStyles_MoodUnknown(t *testing.T) {
	styles := DefaultStyles()
	if got := styles.Mood(entry.Mood("meh")).Render("meh"); got != "meh" {
		t.Errorf("expected unknown mood to render unstyled, got %q", got)
	}
}
