package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/vibe/internal/config"
	"github.com/xolan/vibe/internal/service"
	"github.com/xolan/vibe/internal/tui/ui"
)

// ConfigModel is the model for the config view
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	// UI state
	width     int
	height    int
	config    config.Config
	path      string
	exists    bool
	location  string
	themeName string
	saveErr   error

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int // For scrolling
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themes:        themeProvider.AvailableThemes(),
		themeName:     themeProvider.CurrentName(),
	}
	m.resetThemeCursor()
	return m
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// configLoadedMsg is sent when config is loaded
type configLoadedMsg struct {
	config   config.Config
	path     string
	exists   bool
	location string
}

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}

		if key.Matches(msg, m.keys.Select) || msg.String() == "t" {
			m.selectingTheme = true
			m.updateThemeOffset()
			return m, nil
		}

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists
		m.location = msg.location

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.resetThemeCursor()
		return m, nil

	case ui.ThemeSavedMsg:
		m.saveErr = msg.Err
		return m, m.loadConfig()
	}

	return m, nil
}

// handleThemeSelection handles keys when theme selector is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		if len(m.themes) == 0 {
			return m, nil
		}
		return m, requestThemeChange(m.themes[m.themeCursor])

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetThemeCursor()
	}

	return m, nil
}

// resetThemeCursor points the selector at the current theme
func (m *ConfigModel) resetThemeCursor() {
	for i, t := range m.themes {
		if t == m.themeName {
			m.themeCursor = i
			break
		}
	}
	m.updateThemeOffset()
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// requestThemeChange creates a command to request a theme change by name
func requestThemeChange(themeName string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: themeName}
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(renderStatLine(m.styles, "Config file:", m.path))
	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n")
	if m.saveErr != nil {
		b.WriteString(m.styles.Error.Render("Failed to save theme: " + m.saveErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n\n")

	b.WriteString(renderStatLine(m.styles, "backend:", m.config.Backend))
	b.WriteString(renderStatLine(m.styles, "journal:", m.location))
	b.WriteString(renderStatLine(m.styles, "slot:", m.config.Slot))
	b.WriteString(renderStatLine(m.styles, "log_level:", m.config.LogLevel))
	if m.config.LogFile != "" {
		b.WriteString(renderStatLine(m.styles, "log_file:", m.config.LogFile))
	}

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
	} else {
		b.WriteString(renderStatLine(m.styles, "theme:", m.themeName))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Width(0).Render("Press Enter or 't' to change theme"))
	}

	return b.String()
}

// renderThemeSelector renders a scrolling window over the theme list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(renderStatLine(m.styles, "theme:",
		fmt.Sprintf("Select a theme (%d/%d)", m.themeCursor+1, len(m.themes))))
	b.WriteString("\n")

	end := min(m.themeOffset+maxVisibleThemes, len(m.themes))
	for i, theme := range m.themes[m.themeOffset:end] {
		label := theme
		if theme == m.themeName {
			label += " (current)"
		}

		switch {
		case m.themeOffset+i == m.themeCursor:
			b.WriteString(m.styles.EntrySelected.Render("▸ " + label))
		case theme == m.themeName:
			b.WriteString("  " + m.styles.Success.Render(label))
		default:
			b.WriteString("  " + m.styles.StatValue.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Width(0).Render("↑/↓ navigate  Enter select  Esc cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectingTheme reports whether the theme selector is open
func (m ConfigModel) SelectingTheme() bool {
	return m.selectingTheme
}

// loadConfig creates a command to load config
func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		return configLoadedMsg{
			config:   m.services.Config.Get(),
			path:     m.services.Config.GetPath(),
			exists:   m.services.Config.Exists(),
			location: m.services.Entry.Location(),
		}
	}
}
