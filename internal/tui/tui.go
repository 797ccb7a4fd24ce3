// Package tui provides the Terminal User Interface for the vibe application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/xolan/vibe/internal/service"
	"github.com/xolan/vibe/internal/tui/ui"
	"github.com/xolan/vibe/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabEntries Tab = iota
	TabStats
	TabConfig
)

var tabNames = []string{"Entries", "Stats", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	entriesView views.EntriesModel
	statsView   views.StatsModel
	configView  views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabEntries,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		entriesView:   views.NewEntriesModel(services, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.entriesView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// modalInput blocks all global keys (new entry form);
		// capturingKeys blocks character keys but allows Tab (search input).
		modalInput := m.isModalInputMode()
		capturingKeys := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturingKeys:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturingKeys:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !modalInput:
			return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

		case key.Matches(msg, m.keys.PrevTab) && !modalInput:
			return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

		case key.Matches(msg, m.keys.Tab1) && !capturingKeys:
			return m.switchTab(TabEntries)

		case key.Matches(msg, m.keys.Tab2) && !capturingKeys:
			return m.switchTab(TabStats)

		case key.Matches(msg, m.keys.Tab3) && !capturingKeys:
			return m.switchTab(TabConfig)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.entriesView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.JournalChangedMsg:
		m.statsView, cmd = m.statsView.Update(msg)
		return m, cmd

	case ui.ThemeChangeRequestMsg:
		if !m.themeProvider.SetTheme(msg.ThemeName) {
			return m, nil
		}
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: m.themeProvider.CurrentName(),
			Styles:    m.styles,
		}
		m.entriesView, _ = m.entriesView.Update(themeMsg)
		m.statsView, _ = m.statsView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(themeMsg.ThemeName)

	case ui.ThemeSavedMsg:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd
	}

	switch m.activeTab {
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// switchTab activates tab and reloads its data
func (m Model) switchTab(tab Tab) (Model, tea.Cmd) {
	m.activeTab = tab
	return m, m.initCurrentView()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the key hints for the current view
func (m Model) renderStatusBar() string {
	var hints []key.Binding

	if m.isModalInputMode() {
		hints = []key.Binding{
			bind("←/→ 1-5", "mood"),
			m.keys.NextField,
			bind("enter", "save"),
			bind("esc", "cancel"),
		}
	} else {
		hints = append(m.viewBindings(), bind("1-3", "views"), m.keys.Help, m.keys.Quit)
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = fmt.Sprintf("%s %s",
			m.styles.StatusKey.Render(h.Help().Key),
			m.styles.StatusHelp.Render(h.Help().Desc))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// viewBindings lists the keys the active view responds to
func (m Model) viewBindings() []key.Binding {
	switch m.activeTab {
	case TabEntries:
		return []key.Binding{m.keys.New, m.keys.Delete, m.keys.Clear, m.keys.Search, bind("t/w/m/a", "range")}
	case TabStats:
		return []key.Binding{m.keys.Refresh}
	case TabConfig:
		return []key.Binding{bind("t/enter", "themes")}
	}
	return nil
}

// bind is a display-only binding for hints that span several keys
func bind(keys, desc string) key.Binding {
	return key.NewBinding(key.WithHelp(keys, desc))
}

// isModalInputMode checks if the current view is in a modal input mode
// where the user should not be able to switch views
func (m Model) isModalInputMode() bool {
	return m.activeTab == TabEntries && m.entriesView.IsInputMode()
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	return m.activeTab == TabEntries && m.entriesView.IsCapturingKeys()
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabEntries:
		return m.entriesView.Init()
	case TabStats:
		return m.statsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		err := m.services.Config.Update(cfg)
		if err != nil {
			m.services.Logger.Warn("failed to save theme", zap.String("theme", themeName), zap.Error(err))
		}
		return ui.ThemeSavedMsg{Err: err}
	}
}

// renderHelpOverlay renders the keyboard shortcuts for the active view
func (m Model) renderHelpOverlay() string {
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Global", []key.Binding{bind("tab/1-3", "switch views"), m.keys.Help, m.keys.Quit}},
		{tabNames[m.activeTab], m.overlayBindings()},
	}

	var help strings.Builder
	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n")

	for _, section := range sections {
		help.WriteString("\n")
		help.WriteString(m.styles.StatLabel.Render(section.title + ":"))
		help.WriteString("\n")
		for _, b := range section.bindings {
			help.WriteString(fmt.Sprintf("  %-10s %s\n", b.Help().Key, b.Help().Desc))
		}
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// overlayBindings is the full key list for the active view
func (m Model) overlayBindings() []key.Binding {
	switch m.activeTab {
	case TabEntries:
		return []key.Binding{
			m.keys.New, m.keys.Delete, m.keys.Clear,
			bind("/ or s", m.keys.Search.Help().Desc),
			m.keys.Today, m.keys.LastWeek, m.keys.LastMonth, m.keys.AllTime,
			bind("j/k", "move"), m.keys.Refresh,
		}
	case TabConfig:
		return []key.Binding{bind("t/enter", "open theme selector"), bind("j/k", "move"), m.keys.Select, m.keys.Back}
	}
	return m.viewBindings()
}

// Run starts the TUI application
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
