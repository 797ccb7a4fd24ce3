package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// JournalChangedMsg is broadcast after an entry is added, deleted or the
// journal is cleared, so views showing derived data can reload.
type JournalChangedMsg struct{}

// ThemeSavedMsg reports the result of persisting the theme to the config file.
type ThemeSavedMsg struct {
	Err error
}
