package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/service"
	"github.com/xolan/vibe/internal/stats"
	"github.com/xolan/vibe/internal/tui/ui"
)

// barWidth is the width of the mood breakdown bars
const barWidth = 20

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	summary *stats.Summary
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	summary stats.Summary
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		m.summary = &msg.summary

	case ui.JournalChangedMsg:
		return m, m.loadStats()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n\n")

	if m.summary == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	s := m.summary
	b.WriteString(renderStatLine(m.styles, "Total entries:", fmt.Sprintf("%d", s.TotalCount)))
	b.WriteString(renderStatLine(m.styles, "Current streak:", s.StreakLabel))
	b.WriteString(renderStatLine(m.styles, "Longest streak:", stats.FormatDays(s.LongestStreak)))
	b.WriteString(renderStatLine(m.styles, "Days with entries:", fmt.Sprintf("%d", s.DaysWithEntries)))

	if s.TotalCount == 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Width(0).Render("Log a mood on the Entries tab to start a streak"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ViewTitle.Render("By Mood"))
	b.WriteString("\n")
	for _, mb := range s.Moods {
		moodStyle := m.styles.Mood(mb.Mood)
		b.WriteString(fmt.Sprintf("  %s %s %3d (%5.1f%%)\n",
			moodStyle.Render(padRight(cli.FormatMood(mb.Mood), moodColumnWidth)),
			moodStyle.Render(cli.FormatBar(mb.Percentage, barWidth)),
			mb.Count,
			mb.Percentage))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to load stats
func (m StatsModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		return statsLoadedMsg{summary: m.services.Stats.Summary()}
	}
}
