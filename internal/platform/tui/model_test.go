package tui

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-1024/internal/engine"
	"github.com/vovakirdan/tui-1024/internal/stats"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newEngine(t *testing.T, seed int64, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.DefaultSettings(), rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	return e
}

func newTestModel(t *testing.T, opts ...ModelOption) (Model, *stats.Recorder) {
	t.Helper()
	quiet := log.New(io.Discard)
	rec := stats.NewRecorder(nil, stats.WithLogger(quiet))
	e := newEngine(t, 7, engine.WithResultHandler(rec.Handle))
	opts = append([]ModelOption{WithModelLogger(quiet)}, opts...)
	return NewModel(e, rec, 100, 40, opts...), rec
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

func TestDirectionKeys(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want engine.Direction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, engine.DirUp},
		{tea.KeyMsg{Type: tea.KeyDown}, engine.DirDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, engine.DirLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, engine.DirRight},
		{keyRunes("w"), engine.DirUp},
		{keyRunes("s"), engine.DirDown},
		{keyRunes("a"), engine.DirLeft},
		{keyRunes("d"), engine.DirRight},
		{keyRunes("k"), engine.DirUp},
		{keyRunes("j"), engine.DirDown},
		{keyRunes("h"), engine.DirLeft},
		{keyRunes("l"), engine.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, ok := km.Direction(tt.msg)
			if !ok || got != tt.want {
				t.Errorf("Direction(%q) = %v, %v; want %v", tt.msg.String(), got, ok, tt.want)
			}
		})
	}

	if _, ok := km.Direction(keyRunes("r")); ok {
		t.Error("r should not map to a direction")
	}
}

func TestMenuActions(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{keyRunes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{keyRunes("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{keyRunes("q"), MenuActionQuit},
		{keyRunes("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelSwipesDriveEngine(t *testing.T) {
	m, _ := newTestModel(t)
	mirror := newEngine(t, 7)

	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}, {Type: tea.KeyDown},
		keyRunes("a"), keyRunes("w"), keyRunes("d"), keyRunes("s"),
	}
	dirs := []engine.Direction{
		engine.DirLeft, engine.DirUp, engine.DirRight, engine.DirDown,
		engine.DirLeft, engine.DirUp, engine.DirRight, engine.DirDown,
	}

	for i, k := range keys {
		m, _ = send(t, m, k)
		if _, err := mirror.Swipe(dirs[i]); err != nil {
			t.Fatalf("Swipe() failed: %v", err)
		}
	}

	if !m.Engine().Grid().Equal(mirror.Grid()) {
		t.Errorf("model board\n%s\nwant\n%s", m.Engine().Grid(), mirror.Grid())
	}
	if m.Engine().ValidSwipes() != mirror.ValidSwipes() {
		t.Errorf("ValidSwipes = %d, want %d", m.Engine().ValidSwipes(), mirror.ValidSwipes())
	}
	if !strings.Contains(m.View(), "You swiped down") {
		t.Error("view should name the last swipe")
	}
}

func TestModelReset(t *testing.T) {
	m, _ := newTestModel(t)

	for range 10 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyUp})
	}
	m, _ = send(t, m, keyRunes("r"))

	snap := m.Engine().Snapshot()
	if snap.ValidSwipes != 0 || snap.Board.TileCount() != 2 {
		t.Errorf("after reset: swipes=%d tiles=%d, want 0 and 2", snap.ValidSwipes, snap.Board.TileCount())
	}
	if !strings.Contains(m.View(), "Valid Swipes: 0") {
		t.Error("view should show the reset counter")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, keyRunes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelSettingsApply(t *testing.T) {
	var saved []engine.Settings
	m, _ := newTestModel(t, WithSettingsSaver(func(s engine.Settings) error {
		saved = append(saved, s)
		return nil
	}))

	m, _ = send(t, m, keyRunes("o"))
	if !strings.Contains(m.View(), "SETTINGS") {
		t.Fatal("o should open settings")
	}

	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyRight}, // board 5
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight}, // target 4096
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	got := m.Engine().Settings()
	if got.BoardSize != 5 || got.TargetScore != 4096 {
		t.Errorf("settings = %+v, want 5/4096", got)
	}
	if m.Engine().Grid().Size() != 5 || m.Engine().Grid().TileCount() != 2 {
		t.Error("applying settings should start a fresh 5x5 game")
	}
	if len(saved) != 1 || saved[0] != got {
		t.Errorf("saver received %+v", saved)
	}
	if strings.Contains(m.View(), "SETTINGS") {
		t.Error("should return to the board after applying")
	}
}

func TestModelSettingsCancelKeepsGame(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyUp})
	before := m.Engine().Snapshot()

	m, _ = send(t, m,
		keyRunes("o"),
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEscape},
	)

	after := m.Engine().Snapshot()
	if after.BoardSize != before.BoardSize || !after.Board.Equal(before.Board) || after.ValidSwipes != before.ValidSwipes {
		t.Error("cancelling settings should leave the game untouched")
	}
}

func TestSettingsModelLimits(t *testing.T) {
	s := NewSettingsModel(engine.Settings{BoardSize: engine.MaxBoardSize, TargetScore: 8192, FourChance: 0.5}, 80)

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRight})
	if s.draft.BoardSize != engine.MaxBoardSize {
		t.Errorf("board size went past max: %d", s.draft.BoardSize)
	}

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRight})
	if s.draft.TargetScore != 1024 {
		t.Errorf("target should wrap from 8192 to 1024, got %d", s.draft.TargetScore)
	}

	// Applying unchanged settings is a no-op.
	u := NewSettingsModel(engine.DefaultSettings(), 80)
	u, _ = u.Update(tea.KeyMsg{Type: tea.KeyDown})
	u, _ = u.Update(tea.KeyMsg{Type: tea.KeyDown})
	u, _ = u.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !u.Done() {
		t.Fatal("enter on apply should finish")
	}
	if _, apply := u.Result(); apply {
		t.Error("unchanged settings should not be applied")
	}
}

func TestModelStatsScreen(t *testing.T) {
	m, rec := newTestModel(t)
	rec.Handle(engine.Result{
		Outcome:     engine.Lost,
		Steps:       33,
		Grid:        engine.GridFromRows([]int{2, 4, 2}, []int{4, 2, 4}, []int{2, 4, 64}),
		BoardSize:   3,
		TargetScore: 1024,
	})

	m, _ = send(t, m, keyRunes("t"))
	view := m.View()
	if !strings.Contains(view, "STATISTICS") || !strings.Contains(view, "sorted by steps, ascending") {
		t.Fatalf("t should open statistics, got:\n%s", view)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("o"))
	if _, field, order := rec.View(); field != stats.SortByScore || order != stats.Descending {
		t.Errorf("recorder sort = %v %v, want score descending", field, order)
	}
	if !strings.Contains(m.View(), "sorted by score, descending") {
		t.Error("view should reflect the new sort")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if strings.Contains(m.View(), "STATISTICS") {
		t.Error("esc should return to the board")
	}
}

func TestModelCtrlCQuitsFromAnyScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, keyRunes("t"))

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit from the statistics screen")
	}
}

func TestModelShowsOutcomeBanner(t *testing.T) {
	rec := stats.NewRecorder(nil, stats.WithLogger(log.New(io.Discard)))
	e, err := engine.New(engine.Settings{BoardSize: 3, TargetScore: 1024, FourChance: 0},
		rand.New(rand.NewSource(1)), engine.WithResultHandler(rec.Handle))
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	m := NewModel(e, rec, 100, 40, WithModelLogger(log.New(io.Discard)))

	keys := []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}, {Type: tea.KeyDown}}
	for i := 0; i < 20000 && !m.Engine().Outcome().Terminal(); i++ {
		m, _ = send(t, m, keys[i%len(keys)])
	}
	if !m.Engine().Outcome().Terminal() {
		t.Fatal("game did not finish")
	}

	if !strings.Contains(m.View(), "Press r for a new game") {
		t.Error("finished game should show the outcome banner")
	}
	if records, _, _ := rec.View(); len(records) != 1 {
		t.Errorf("expected one recorded game, got %d", len(records))
	}
}

func TestRenderBoard(t *testing.T) {
	g := engine.GridFromRows(
		[]int{2, 0, 0, 0},
		[]int{0, 2048, 0, 0},
		[]int{0, 0, 8192, 0},
		[]int{0, 0, 0, 4},
	)

	out := RenderBoard(g)
	lines := strings.Split(out, "\n")
	if len(lines) != 2*g.Size()+1 {
		t.Errorf("RenderBoard produced %d lines, want %d", len(lines), 2*g.Size()+1)
	}
	for _, want := range []string{"2048", "8192", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderBoard output missing %q", want)
		}
	}

	if RenderBoard(engine.Grid{}) != "" {
		t.Error("empty grid should render as empty string")
	}
}
