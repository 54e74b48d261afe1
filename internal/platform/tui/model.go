// Package tui provides the Bubble Tea front-end for the game and serves it
// over SSH via Wish.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-1024/internal/engine"
	"github.com/vovakirdan/tui-1024/internal/stats"
)

type screen int

const (
	screenGame screen = iota
	screenSettings
	screenStats
)

// SettingsSaver persists settings chosen on the settings screen.
type SettingsSaver func(engine.Settings) error

// Model is the Bubble Tea model for one player's session: board, settings
// and statistics screens over a single engine.
type Model struct {
	engine   *engine.Engine
	recorder *stats.Recorder
	save     SettingsSaver
	logger   *log.Logger

	keys GameKeyMap
	help help.Model

	screen     screen
	settings   SettingsModel
	scoreboard ScoreboardModel

	lastSwipe string
	notice    string
	width     int
	height    int
	quitting  bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithSettingsSaver persists applied settings.
func WithSettingsSaver(save SettingsSaver) ModelOption {
	return func(m *Model) { m.save = save }
}

// WithModelLogger sets the logger for settings and engine errors.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a session model around an engine.
// The engine should already report results to recorder.
func NewModel(e *engine.Engine, recorder *stats.Recorder, width, height int, opts ...ModelOption) Model {
	m := Model{
		engine:   e,
		recorder: recorder,
		logger:   log.Default(),
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
	}
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenSettings:
		return m.updateSettings(msg)
	case screenStats:
		return m.updateStats(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input on the board screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dir, ok := m.keys.Direction(msg); ok {
		m.swipe(dir)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.lastSwipe = ""
		m.notice = "New game"

	case key.Matches(msg, m.keys.Settings):
		m.settings = NewSettingsModel(m.engine.Settings(), m.width)
		m.screen = screenSettings

	case key.Matches(msg, m.keys.Stats):
		m.scoreboard = NewScoreboardModel(m.recorder, m.width, m.height)
		m.screen = screenStats

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// swipe forwards a direction to the engine and records what happened.
func (m *Model) swipe(dir engine.Direction) {
	m.notice = ""
	m.lastSwipe = dir.String()

	if _, err := m.engine.Swipe(dir); err != nil {
		m.logger.Error("Swipe failed", "direction", dir, "error", err)
		m.notice = err.Error()
	}
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.settings, cmd = m.settings.Update(msg)
	if !m.settings.Done() {
		return m, cmd
	}

	m.screen = screenGame
	next, apply := m.settings.Result()
	if !apply {
		return m, cmd
	}

	if err := m.engine.ApplySettings(next); err != nil {
		m.logger.Error("Invalid settings", "error", err)
		m.notice = err.Error()
		return m, cmd
	}
	m.lastSwipe = ""
	m.notice = fmt.Sprintf("New %dx%d game, target %d", next.BoardSize, next.BoardSize, next.TargetScore)

	if m.save != nil {
		if err := m.save(next); err != nil {
			m.logger.Warn("Could not save settings", "error", err)
		}
	}
	return m, cmd
}

func (m Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)
	if m.scoreboard.Done() {
		m.screen = screenGame
	}
	return m, cmd
}

// Engine returns the engine driven by this model.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSettings:
		return m.settings.View()
	case screenStats:
		return m.scoreboard.View()
	}
	return m.viewGame()
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("220")).Padding(0, 2)
	lostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 2)
)

func (m Model) viewGame() string {
	snap := m.engine.Snapshot()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("%d", snap.TargetScore)), m.width))
	b.WriteString("\n")

	hud := fmt.Sprintf("Valid Swipes: %d   Max: %d   Board: %dx%d",
		snap.ValidSwipes, snap.MaxTile, snap.BoardSize, snap.BoardSize)
	b.WriteString(centerText(hudStyle.Render(hud), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(RenderBoard(snap.Board), m.width))
	b.WriteString("\n\n")

	switch snap.Outcome {
	case engine.Won:
		b.WriteString(centerText(wonStyle.Render(fmt.Sprintf("You reached %d! Press r for a new game", snap.TargetScore)), m.width))
	case engine.Lost:
		b.WriteString(centerText(lostStyle.Render("No moves left. Press r for a new game"), m.width))
	default:
		line := ""
		if m.lastSwipe != "" {
			line = "You swiped " + m.lastSwipe
		}
		b.WriteString(centerText(hudStyle.Render(line), m.width))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(centerText(noticeStyle.Render(m.notice), m.width))
	}
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
