package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Tab navigation
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding

	// Actions
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding

	// Entry-specific
	New    key.Binding
	Delete key.Binding
	Clear  key.Binding
	Search key.Binding

	// Date range shortcuts
	Today     key.Binding
	LastWeek  key.Binding
	LastMonth key.Binding
	AllTime   key.Binding

	// New entry form
	NextField key.Binding
	PrevField key.Binding
}

// bind builds a binding whose help text shows helpKey
func bind(helpKey, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

// DefaultKeyMap returns the default key bindings. Vim keys work alongside
// the arrows; tab doubles as field navigation inside the new entry form.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    bind("↑/k", "up", "up", "k"),
		Down:  bind("↓/j", "down", "down", "j"),
		Left:  bind("←/h", "previous mood", "left", "h"),
		Right: bind("→/l", "next mood", "right", "l"),

		NextTab: bind("tab", "next view", "tab"),
		PrevTab: bind("shift+tab", "prev view", "shift+tab"),
		Tab1:    bind("1", "entries", "1"),
		Tab2:    bind("2", "stats", "2"),
		Tab3:    bind("3", "config", "3"),

		Select:  bind("enter", "select", "enter"),
		Back:    bind("esc", "back", "esc"),
		Quit:    bind("q", "quit", "q", "ctrl+c"),
		Help:    bind("?", "help", "?"),
		Refresh: bind("r", "refresh", "r"),

		New:    bind("n", "log a mood", "n"),
		Delete: bind("d", "delete", "d"),
		Clear:  bind("C", "clear journal", "C"),
		Search: bind("/", "search notes", "/", "s"),

		Today:     bind("t", "today", "t"),
		LastWeek:  bind("w", "last 7 days", "w"),
		LastMonth: bind("m", "last 30 days", "m"),
		AllTime:   bind("a", "all entries", "a"),

		NextField: bind("tab", "next field", "tab"),
		PrevField: bind("shift+tab", "prev field", "shift+tab"),
	}
}
