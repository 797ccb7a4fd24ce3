package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when the config names no theme or an unknown one
const DefaultTheme = "dracula"

// ThemeProvider owns the bubbletint registry backing the TUI colors
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a provider starting on initialTheme, falling back
// to DefaultTheme (or the first bundled tint) when it is empty or unknown.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	tp := &ThemeProvider{registry: tint.NewRegistry(fallback, all...)}
	if initialTheme != "" {
		tp.SetTheme(initialTheme)
	}
	return tp
}

// SetTheme switches to the named theme.
// Returns false and keeps the current theme when the name is unknown.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// Has reports whether name is a bundled theme
func (tp *ThemeProvider) Has(name string) bool {
	for _, id := range tp.registry.TintIDs() {
		if id == name {
			return true
		}
	}
	return false
}

// CurrentName returns the ID of the current theme, as stored in the config.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the human-readable name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns every theme ID, sorted.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Styles returns the TUI styles for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
