package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/vibe/internal/cli"
	"github.com/xolan/vibe/internal/entry"
	"github.com/xolan/vibe/internal/filter"
	"github.com/xolan/vibe/internal/journal"
	"github.com/xolan/vibe/internal/service"
	"github.com/xolan/vibe/internal/timeutil"
	"github.com/xolan/vibe/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModeDelete
	entryModeClear
	entryModeSearch
)

// Fields of the new entry form, in tab order
const (
	fieldMood = iota
	fieldDate
	fieldNotes
	fieldCount
)

// DateRange selects which entries the list shows
type DateRange int

const (
	RangeAll DateRange = iota
	RangeToday
	RangeLastWeek
	RangeLastMonth
)

var rangeDays = map[DateRange]int{
	RangeToday:     1,
	RangeLastWeek:  7,
	RangeLastMonth: 30,
}

var rangeTitles = map[DateRange]string{
	RangeAll:       "All entries",
	RangeToday:     "Today",
	RangeLastWeek:  "Last 7 days",
	RangeLastMonth: "Last 30 days",
}

// EntriesModel is the model for the entries view
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width     int
	height    int
	cursor    int
	entries   []entry.Entry
	total     int
	streak    string
	dateRange DateRange
	err       error
	status    string
	warning   string

	// New entry form
	mode         entryMode
	moodCursor   int // -1 until a mood is picked
	focusedField int
	dateInput    textinput.Model
	notesInput   textinput.Model
	formErr      string

	// Search mode state
	searchInput   textinput.Model
	searchResults []entry.Entry
	searchCursor  int
	searched      bool
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	dateInput := textinput.New()
	dateInput.Placeholder = "today (YYYY-MM-DD or DD/MM/YYYY)"
	dateInput.CharLimit = 10
	dateInput.Width = 36

	notesInput := textinput.New()
	notesInput.Placeholder = "What's on your mind? (optional)"
	notesInput.CharLimit = 500
	notesInput.Width = 50

	searchInput := textinput.New()
	searchInput.Placeholder = "Search notes..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	return EntriesModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		moodCursor:  -1,
		dateInput:   dateInput,
		notesInput:  notesInput,
		searchInput: searchInput,
		warning:     loadWarning(services.Entry.LastLoad()),
	}
}

// loadWarning describes problems found while loading the journal
func loadWarning(result journal.LoadResult) string {
	skipped := len(result.Warnings)
	switch {
	case result.Unavailable:
		return "Journal could not be read; changes will not be saved"
	case result.Malformed:
		return "Stored journal was not a valid entry list and was ignored (a copy is kept on the next save)"
	case skipped > 0:
		return fmt.Sprintf("Skipped %d invalid %s in storage (a copy is kept on the next save)",
			skipped, cli.Pluralize("record", skipped))
	}
	return ""
}

// entriesLoadedMsg is sent when entries are loaded
type entriesLoadedMsg struct {
	entries []entry.Entry
	total   int
	streak  string
}

// entryActionMsg reports the outcome of an add, delete or clear
type entryActionMsg struct {
	status string
	err    error
}

// searchResultsMsg is sent when search results are loaded
type searchResultsMsg struct {
	results []entry.Entry
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries()
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case entryModeAdd:
			return m.handleAddMode(msg)
		case entryModeDelete:
			return m.handleDeleteMode(msg)
		case entryModeClear:
			return m.handleClearMode(msg)
		case entryModeSearch:
			return m.handleSearchMode(msg)
		}
		return m.handleNormalMode(msg)

	case entriesLoadedMsg:
		m.entries = msg.entries
		m.total = msg.total
		m.streak = msg.streak
		if m.cursor >= len(m.entries) {
			m.cursor = max(0, len(m.entries)-1)
		}
		return m, nil

	case entryActionMsg:
		m.mode = entryModeNormal
		m.err = msg.err
		m.status = msg.status
		return m, tea.Batch(m.loadEntries(), journalChanged)

	case searchResultsMsg:
		m.searched = true
		m.searchResults = msg.results
		m.searchCursor = 0
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleNormalMode handles keys while browsing the list
func (m EntriesModel) handleNormalMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Today):
		return m.setRange(RangeToday)
	case key.Matches(msg, m.keys.LastWeek):
		return m.setRange(RangeLastWeek)
	case key.Matches(msg, m.keys.LastMonth):
		return m.setRange(RangeLastMonth)
	case key.Matches(msg, m.keys.AllTime):
		return m.setRange(RangeAll)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadEntries()
	case key.Matches(msg, m.keys.New):
		return m.openForm()
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.entries) {
			m.mode = entryModeDelete
		}
	case key.Matches(msg, m.keys.Clear):
		if m.total > 0 {
			m.mode = entryModeClear
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = entryModeSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.searched = false
		m.searchResults = nil
		m.searchCursor = 0
		return m, textinput.Blink
	}
	return m, nil
}

// setRange switches the list to r and reloads
func (m EntriesModel) setRange(r DateRange) (EntriesModel, tea.Cmd) {
	m.dateRange = r
	m.cursor = 0
	return m, m.loadEntries()
}

// openForm resets and shows the new entry form with no mood selected
func (m EntriesModel) openForm() (EntriesModel, tea.Cmd) {
	m.mode = entryModeAdd
	m.moodCursor = -1
	m.focusedField = fieldMood
	m.formErr = ""
	m.status = ""
	m.err = nil
	m.dateInput.SetValue("")
	m.notesInput.SetValue("")
	m.dateInput.Blur()
	m.notesInput.Blur()
	return m, nil
}

// handleAddMode handles key events in the new entry form
func (m EntriesModel) handleAddMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		return m.submitForm()
	case key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
		m.dateInput.Blur()
		m.notesInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m.focusField((m.focusedField + 1) % fieldCount)
	case key.Matches(msg, m.keys.PrevField):
		return m.focusField((m.focusedField + fieldCount - 1) % fieldCount)
	}

	if m.focusedField == fieldMood {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.moodCursor = max(m.moodCursor-1, 0)
			m.formErr = ""
		case key.Matches(msg, m.keys.Right):
			m.moodCursor = min(m.moodCursor+1, len(entry.Moods)-1)
			m.formErr = ""
		default:
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(entry.Moods) {
				m.moodCursor = n - 1
				m.formErr = ""
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusedField == fieldDate {
		m.dateInput, cmd = m.dateInput.Update(msg)
	} else {
		m.notesInput, cmd = m.notesInput.Update(msg)
	}
	return m, cmd
}

// focusField moves input focus to field
func (m EntriesModel) focusField(field int) (EntriesModel, tea.Cmd) {
	m.focusedField = field
	m.dateInput.Blur()
	m.notesInput.Blur()
	switch field {
	case fieldDate:
		m.dateInput.Focus()
		return m, textinput.Blink
	case fieldNotes:
		m.notesInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// submitForm validates the form and saves the entry
func (m EntriesModel) submitForm() (EntriesModel, tea.Cmd) {
	if m.moodCursor < 0 {
		m.formErr = "Please select a mood"
		return m, nil
	}

	date := strings.TrimSpace(m.dateInput.Value())
	if date != "" {
		normalized, err := timeutil.NormalizeDate(date)
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		date = normalized
	}

	m.dateInput.Blur()
	m.notesInput.Blur()
	return m, m.addEntry(entry.Moods[m.moodCursor], date, m.notesInput.Value())
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m EntriesModel) handleDeleteMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.entries) {
			return m, m.deleteEntry(m.entries[m.cursor].ID)
		}
		m.mode = entryModeNormal
	case "n", "N", "esc":
		m.mode = entryModeNormal
	}
	return m, nil
}

// handleClearMode handles key events when in clear confirmation mode
func (m EntriesModel) handleClearMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.clearEntries()
	case "n", "N", "esc":
		m.mode = entryModeNormal
	}
	return m, nil
}

// handleSearchMode handles key events when in search mode
func (m EntriesModel) handleSearchMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if m.searchInput.Focused() {
			query := strings.TrimSpace(m.searchInput.Value())
			if query != "" {
				m.searchInput.Blur()
				return m, m.searchEntries(query)
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
		m.searchInput.Blur()
		m.searched = false
		m.searchResults = nil
		return m, nil
	case !m.searchInput.Focused() && key.Matches(msg, m.keys.Up):
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil
	case !m.searchInput.Focused() && key.Matches(msg, m.keys.Down):
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
		return m, nil
	case !m.searchInput.Focused() && msg.String() == "/":
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	if m.searchInput.Focused() {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m EntriesModel) View() string {
	switch m.mode {
	case entryModeAdd:
		return m.renderAddForm()
	case entryModeDelete:
		return m.renderDeleteConfirm()
	case entryModeClear:
		return m.renderClearConfirm()
	case entryModeSearch:
		return m.renderSearchView()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(rangeTitles[m.dateRange]))
	b.WriteString("\n")

	if m.warning != "" {
		b.WriteString(m.styles.Warning.Render("⚠ " + m.warning))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		if m.total == 0 {
			b.WriteString(m.styles.StatLabel.Render("No entries yet"))
		} else {
			b.WriteString(m.styles.StatLabel.Render("No entries in this range"))
		}
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press 'n' to log how you feel"))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.entries, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Showing %d of %d %s    Streak: %s",
		len(m.entries), m.total, cli.Pluralize("entry", m.total), m.streak))

	return b.String()
}

// renderAddForm renders the mood picker form
func (m EntriesModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("How are you feeling?"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldMood, "Mood (←/→ or 1-5):"))
	b.WriteString("\n")
	b.WriteString(m.renderMoodPicker())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldDate, "Date:"))
	b.WriteString("\n")
	b.WriteString(m.dateInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldNotes, "Notes:"))
	b.WriteString("\n")
	b.WriteString(m.notesInput.View())
	b.WriteString("\n\n")

	if m.formErr != "" {
		b.WriteString(m.styles.Error.Render(m.formErr))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// fieldLabel marks the focused field with an arrow
func (m EntriesModel) fieldLabel(field int, label string) string {
	if m.focusedField == field {
		label = "▸ " + label
	}
	return m.styles.StatLabel.Width(0).Render(label)
}

// renderMoodPicker renders the moods side by side, highlighting the selection
func (m EntriesModel) renderMoodPicker() string {
	options := make([]string, len(entry.Moods))
	for i, mood := range entry.Moods {
		label := fmt.Sprintf("%s\n%d %s", mood.Emoji(), i+1, mood.Title())
		if i == m.moodCursor {
			options[i] = m.styles.MoodOptionSelected.
				Foreground(m.styles.Mood(mood).GetForeground()).
				Render(label)
		} else {
			options[i] = m.styles.MoodOption.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, options...)
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m EntriesModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if m.cursor < len(m.entries) {
		e := m.entries[m.cursor]
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this entry?"))
		b.WriteString("\n\n")
		b.WriteString(renderStatLine(m.styles, "Date:", timeutil.FormatDisplayDate(e.Date)))
		b.WriteString(renderStatLine(m.styles, "Mood:", cli.FormatMood(e.Mood)))
		if e.HasNotes() {
			b.WriteString(renderStatLine(m.styles, "Notes:", e.Notes))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.StatLabel.Width(0).Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// renderClearConfirm renders the clear confirmation dialog
func (m EntriesModel) renderClearConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Clear Journal"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Warning.Render(fmt.Sprintf("Delete all %d %s?", m.total, cli.Pluralize("entry", m.total))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Width(0).Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// renderSearchView renders the search interface
func (m EntriesModel) renderSearchView() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Search Notes"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if !m.searched {
		b.WriteString(m.styles.StatLabel.Width(0).Render("Enter a search term and press Enter, Esc to return"))
		return b.String()
	}

	if len(m.searchResults) == 0 {
		b.WriteString(m.styles.StatLabel.Width(0).Render("No results found"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Width(0).Render("Press / to search again, Esc to return"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Found %d %s:\n\n", len(m.searchResults), cli.Pluralize("result", len(m.searchResults))))
	b.WriteString(RenderEntryList(m.searchResults, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.searchCursor,
	}))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Width(0).Render("j/k navigate  / search again  Esc return"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// DateRange returns the active date range
func (m EntriesModel) DateRange() DateRange {
	return m.dateRange
}

// IsInputMode returns true while the new entry form is open
func (m EntriesModel) IsInputMode() bool {
	return m.mode == entryModeAdd
}

// IsCapturingKeys returns true when typed characters belong to an input
func (m EntriesModel) IsCapturingKeys() bool {
	return m.mode == entryModeAdd || (m.mode == entryModeSearch && m.searchInput.Focused())
}

// rangeFilter returns the filter for the active date range
func (m EntriesModel) rangeFilter() *filter.Filter {
	days, ok := rangeDays[m.dateRange]
	if !ok {
		return nil
	}
	start, end, _ := timeutil.ParseDateRangeFlags("", "", days, m.services.Now())
	return filter.NewFilter("", nil, start, end)
}

// loadEntries creates a command to load entries
func (m EntriesModel) loadEntries() tea.Cmd {
	f := m.rangeFilter()
	return func() tea.Msg {
		result := m.services.Entry.List(f)
		return entriesLoadedMsg{
			entries: result.Entries,
			total:   result.Total,
			streak:  m.services.Stats.StreakLabel(),
		}
	}
}

// addEntry creates a command to save a new entry
func (m EntriesModel) addEntry(mood entry.Mood, date, notes string) tea.Cmd {
	return func() tea.Msg {
		e, err := m.services.Entry.Create(string(mood), date, notes)
		if err != nil {
			return entryActionMsg{err: err}
		}
		return entryActionMsg{status: fmt.Sprintf("Logged %s on %s", cli.FormatMood(e.Mood), timeutil.FormatDisplayDate(e.Date))}
	}
}

// deleteEntry creates a command to delete an entry
func (m EntriesModel) deleteEntry(id int64) tea.Cmd {
	return func() tea.Msg {
		e, err := m.services.Entry.Delete(id)
		if err != nil {
			return entryActionMsg{err: err}
		}
		return entryActionMsg{status: "Deleted " + cli.FormatEntry(e)}
	}
}

// clearEntries creates a command to clear the journal
func (m EntriesModel) clearEntries() tea.Cmd {
	return func() tea.Msg {
		n, err := m.services.Entry.Clear()
		if err != nil {
			return entryActionMsg{err: err}
		}
		return entryActionMsg{status: fmt.Sprintf("Cleared %d %s", n, cli.Pluralize("entry", n))}
	}
}

// searchEntries creates a command to search entry notes
func (m EntriesModel) searchEntries(query string) tea.Cmd {
	return func() tea.Msg {
		result := m.services.Entry.List(filter.NewFilter(query, nil, time.Time{}, time.Time{}))
		return searchResultsMsg{results: result.Entries}
	}
}

func journalChanged() tea.Msg {
	return ui.JournalChangedMsg{}
}
