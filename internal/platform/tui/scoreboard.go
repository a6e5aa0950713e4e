package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores   = 100 // Max scores to load
	tableHeight = 8   // Rows reserved for title, tabs, stats and help
)

// ScoreFilter is one tab of the scoreboard.
type ScoreFilter struct {
	Title   string
	Outcome string // Empty matches every game
}

// ScoreFilters lists the scoreboard tabs in display order.
var ScoreFilters = []ScoreFilter{
	{Title: "All", Outcome: ""},
	{Title: "Victories", Outcome: "won"},
	{Title: "Defeats", Outcome: "lost"},
	{Title: "Abandoned", Outcome: "quit"},
}

// ScoreSource is the part of the score store the scoreboard reads.
type ScoreSource interface {
	TopScores(outcome string, limit int) ([]storage.ScoreEntry, error)
	Stats() (*storage.Stats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	source   ScoreSource
	filter   int
	scores   []storage.ScoreEntry
	stats    *storage.Stats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	theme    Theme
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Kills", Width: 5},
		{Title: "Result", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 4 - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads scores for the current filter.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.err = nil, nil
	if m.source != nil {
		m.scores, m.err = m.source.TopScores(ScoreFilters[m.filter].Outcome, maxScores)
		if m.err == nil {
			m.stats, m.err = m.source.Stats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Killed),
			s.Outcome,
			formatDuration(s.Duration),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(ScoreFilters)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter--
			if m.filter < 0 {
				m.filter = len(ScoreFilters) - 1
			}
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
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

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.MarginBottom(1).Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	tabs := make([]string, len(ScoreFilters))
	for i, f := range ScoreFilters {
		if i == m.filter {
			tabs[i] = m.theme.TabActive.Render(f.Title)
		} else {
			tabs[i] = m.theme.TabInactive.Render(f.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Box.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.stats != nil && m.stats.Games > 0 {
		b.WriteString(m.theme.Muted.Render(fmt.Sprintf(
			"%d games  %d won  %d lost  best %d  avg %.0f  %d invaders destroyed",
			m.stats.Games, m.stats.Wins, m.stats.Losses, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalKills,
		)))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Muted.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := m.theme.Muted.Italic(true).Padding(2, 4)
	if m.err != nil {
		return emptyStyle.Render("Cannot load scores:\n" + m.err.Error())
	}
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// Filter returns the active tab.
func (m ScoreboardModel) Filter() ScoreFilter {
	return ScoreFilters[m.filter]
}

// Scores returns the rows currently shown.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// IsQuitting returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source ScoreSource, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
