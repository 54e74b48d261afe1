package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-1024/internal/stats"
)

// ScoreboardKeyMap defines the key bindings for the statistics screen.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding
	Order     key.Binding
	Back      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextField, k.Order, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextField, k.Order, k.Back},
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
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sort field"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "asc/desc"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "q", "t"),
			key.WithHelp("esc/b", "back"),
		),
	}
}

// ScoreboardModel lists finished games from a recorder.
type ScoreboardModel struct {
	recorder *stats.Recorder
	records  []stats.Record
	field    stats.SortField
	order    stats.SortOrder
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	back     bool
}

// NewScoreboardModel creates a statistics screen.
func NewScoreboardModel(recorder *stats.Recorder, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		recorder: recorder,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Steps", Width: 7},
		{Title: "Board", Width: 6},
		{Title: "Result", Width: 7},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// reload pulls the current sorted records from the recorder.
func (m *ScoreboardModel) reload() {
	if m.recorder == nil {
		m.records = nil
	} else {
		m.records, m.field, m.order = m.recorder.View()
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%dx%d", r.BoardSize, r.BoardSize),
			string(r.Outcome),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil

		case key.Matches(msg, m.keys.NextField):
			if m.recorder != nil {
				m.recorder.SetField(m.field.Next())
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Order):
			if m.recorder != nil {
				m.recorder.ToggleOrder()
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Done reports whether the user left the screen.
func (m ScoreboardModel) Done() bool {
	return m.back
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	subStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("STATISTICS"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subStyle.Render(fmt.Sprintf("sorted by %s, %s", m.field, m.order)), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")
	}

	return m.table.View()
}
