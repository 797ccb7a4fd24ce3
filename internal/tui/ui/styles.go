package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"

	"github.com/xolan/vibe/internal/entry"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Entry list
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryDate     lipgloss.Style
	EntryNotes    lipgloss.Style

	// Mood picker
	MoodOption         lipgloss.Style
	MoodOptionSelected lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	moods map[entry.Mood]lipgloss.Style
}

// palette maps semantic roles to colors
type palette struct {
	primary    lipgloss.TerminalColor
	secondary  lipgloss.TerminalColor
	muted      lipgloss.TerminalColor
	success    lipgloss.TerminalColor
	warning    lipgloss.TerminalColor
	errorColor lipgloss.TerminalColor
	fg         lipgloss.TerminalColor
	bg         lipgloss.TerminalColor
	selected   lipgloss.TerminalColor

	moods map[entry.Mood]lipgloss.TerminalColor
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:    lipgloss.Color("99"),  // Purple
		secondary:  lipgloss.Color("39"),  // Cyan
		muted:      lipgloss.Color("240"), // Gray
		success:    lipgloss.Color("82"),  // Green
		warning:    lipgloss.Color("214"), // Orange
		errorColor: lipgloss.Color("196"), // Red
		fg:         lipgloss.Color("252"),
		bg:         lipgloss.Color("236"),
		selected:   lipgloss.Color("237"),
		moods: map[entry.Mood]lipgloss.TerminalColor{
			entry.MoodAmazing:    lipgloss.Color("82"),
			entry.MoodGood:       lipgloss.Color("39"),
			entry.MoodOkay:       lipgloss.Color("220"),
			entry.MoodRough:      lipgloss.Color("208"),
			entry.MoodStruggling: lipgloss.Color("196"),
		},
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// Moods run from green (amazing) through cyan, yellow and bright red to red (struggling).
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:    r.Purple(),
		secondary:  r.Cyan(),
		muted:      r.BrightBlack(),
		success:    r.Green(),
		warning:    r.Yellow(),
		errorColor: r.Red(),
		fg:         r.Fg(),
		bg:         r.Bg(),
		selected:   r.BrightBlack(),
		moods: map[entry.Mood]lipgloss.TerminalColor{
			entry.MoodAmazing:    r.Green(),
			entry.MoodGood:       r.Cyan(),
			entry.MoodOkay:       r.Yellow(),
			entry.MoodRough:      r.BrightRed(),
			entry.MoodStruggling: r.Red(),
		},
	})
}

func newStyles(p palette) Styles {
	moods := make(map[entry.Mood]lipgloss.Style, len(p.moods))
	for m, c := range p.moods {
		moods[m] = lipgloss.NewStyle().Foreground(c)
	}

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		EntrySelected: lipgloss.NewStyle().
			Background(p.selected).
			Bold(true),
		EntryNormal: lipgloss.NewStyle(),
		EntryDate: lipgloss.NewStyle().
			Foreground(p.secondary),
		EntryNotes: lipgloss.NewStyle().
			Foreground(p.fg),

		MoodOption: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		MoodOptionSelected: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(p.errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),

		moods: moods,
	}
}

// Mood returns the style used to render m. Unknown moods are unstyled.
func (s Styles) Mood(m entry.Mood) lipgloss.Style {
	if style, ok := s.moods[m]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
