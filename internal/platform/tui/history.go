package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/barista/internal/core"
	"github.com/vovakirdan/barista/internal/storage"
)

// History layout constants
const (
	maxHistory   = 100 // Max pours to load
	titleColMin  = 12
	titleColMax  = 32
	fixedColumns = 4 + 8 + 7 + 6 + 8 + 14 // #, Fill, Time, Spill, Rating, Date
)

// HistoryView selects which pours the journal shows.
type HistoryView int

const (
	HistoryRecent HistoryView = iota
	HistoryBest
)

func (v HistoryView) String() string {
	if v == HistoryBest {
		return "BEST POURS"
	}
	return "RECENT POURS"
}

// HistoryKeyMap defines the key bindings for the journal.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Toggle}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing the pour journal.
type HistoryModel struct {
	store    *storage.Store
	view     HistoryView
	pours    []storage.PourEntry
	summary  storage.Summary
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a new journal browser.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	// Margins plus one cell of padding on each side of every column
	titleW := core.Clamp(m.width-4-fixedColumns-2*7, titleColMin, titleColMax)
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Fill", Width: 8},
		{Title: "Time", Width: 7},
		{Title: "Spill", Width: 6},
		{Title: "Rating", Width: 8},
		{Title: "Title", Width: titleW},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, summary, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(colorCoffee).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the current view from the journal.
func (m *HistoryModel) load() {
	m.pours, m.loadErr = nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.view == HistoryBest {
		m.pours, m.loadErr = m.store.BestPours(maxHistory)
	} else {
		m.pours, m.loadErr = m.store.RecentPours(maxHistory)
	}
	if m.loadErr == nil {
		m.summary, m.loadErr = m.store.Summary()
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded pours.
func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(historyRows(m.pours))
	m.table.GotoTop()
}

// historyRows formats journal entries as table rows.
func historyRows(pours []storage.PourEntry) []table.Row {
	rows := make([]table.Row, len(pours))
	for i, p := range pours {
		spill := "no"
		if p.Stats.Spilled {
			spill = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f%%", p.Stats.FillPercentage),
			fmt.Sprintf("%.1fs", p.Stats.TimeTaken),
			spill,
			fmt.Sprintf("%d/10", p.Fortune.Rating),
			p.Fortune.Title,
			p.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.view == HistoryBest {
				m.view = HistoryRecent
			} else {
				m.view = HistoryBest
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(m.view.String())))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box.Render(m.renderTableContent())))
	b.WriteString("\n")

	if m.loadErr == nil && m.summary.Pours > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, mutedStyle.Render(summaryLine(m.summary))))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return empty.Render("The pour journal is disabled.")
	case m.loadErr != nil:
		return empty.Render("Could not read the journal:\n" + m.loadErr.Error())
	case len(m.pours) == 0:
		return empty.Render("No pours recorded yet.\nBrew a cup to start your journal!")
	}
	return m.table.View()
}

// summaryLine describes the journal totals.
func summaryLine(s storage.Summary) string {
	return fmt.Sprintf("%d pours · %d spilled · best %d/10 · avg fill %.1f%% · avg time %.1fs",
		s.Pours, s.Spills, s.BestRating, s.AvgFill, s.AvgTime)
}

// RunHistory runs the journal browser.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
