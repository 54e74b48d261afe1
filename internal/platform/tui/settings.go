package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-1024/internal/engine"
)

const (
	rowBoardSize = iota
	rowTarget
	rowApply
	settingsRows
)

// SettingsModel edits board size and target score.
// It never touches the running game; the caller applies the result.
type SettingsModel struct {
	current   engine.Settings
	draft     engine.Settings
	cursor    int
	width     int
	applied   bool
	cancelled bool
}

// NewSettingsModel creates a settings editor seeded with the active settings.
func NewSettingsModel(current engine.Settings, width int) SettingsModel {
	return SettingsModel{
		current: current,
		draft:   current,
		width:   width,
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) SettingsModel {
	switch MapKeyToMenuAction(msg) {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < settingsRows-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.step(-1)
	case MenuActionRight:
		m.step(1)
	case MenuActionSelect:
		if m.cursor == rowApply {
			m.applied = true
		} else {
			m.step(1)
		}
	case MenuActionBack, MenuActionQuit:
		m.cancelled = true
	}
	return m
}

// step moves the value under the cursor, clamping board size and cycling targets.
func (m *SettingsModel) step(delta int) {
	switch m.cursor {
	case rowBoardSize:
		size := m.draft.BoardSize + delta
		if size >= engine.MinBoardSize && size <= engine.MaxBoardSize {
			m.draft.BoardSize = size
		}
	case rowTarget:
		i := slices.Index(engine.TargetScores, m.draft.TargetScore)
		if i < 0 {
			i = 0
		}
		n := len(engine.TargetScores)
		m.draft.TargetScore = engine.TargetScores[(i+delta+n)%n]
	}
}

// Done reports whether the user applied or cancelled.
func (m SettingsModel) Done() bool {
	return m.applied || m.cancelled
}

// Result returns the edited settings and whether they should be applied.
// Unchanged settings are not applied, so the running game survives.
func (m SettingsModel) Result() (engine.Settings, bool) {
	if !m.applied || m.draft == m.current {
		return m.current, false
	}
	return m.draft, true
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Board size   < %d x %d >", m.draft.BoardSize, m.draft.BoardSize),
		fmt.Sprintf("Target score < %d >", m.draft.TargetScore),
		"Apply and start new game",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("←/→: Change  |  Enter: Select  |  Esc: Back"), m.width))

	return b.String()
}
