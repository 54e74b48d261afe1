// Package engine implements the sliding-tile merge puzzle: a square grid,
// directional compaction and merging, random tile spawning, and win/loss
// evaluation. It has no I/O; front-ends drive it through Swipe and read
// state back through plain values.
package engine

import "fmt"

// Outcome classifies a game state.
type Outcome string

const (
	InProgress Outcome = "in_progress"
	Won        Outcome = "won"
	Lost       Outcome = "lost"
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// Evaluate classifies a grid against a target. Won takes priority over
// Lost when a full, unmergeable board also holds a target tile.
func Evaluate(g Grid, target int) Outcome {
	if g.MaxTile() >= target {
		return Won
	}
	if g.IsFull() && !g.CanMerge() {
		return Lost
	}
	return InProgress
}

// Source is the randomness the engine draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Result is emitted once when a game reaches a terminal outcome.
type Result struct {
	Outcome     Outcome
	Steps       int
	Grid        Grid
	BoardSize   int
	TargetScore int
}

// ResultHandler receives the terminal result of a game.
type ResultHandler func(Result)

// Option configures an Engine.
type Option func(*Engine)

// WithResultHandler registers a callback for terminal outcomes.
func WithResultHandler(h ResultHandler) Option {
	return func(e *Engine) {
		e.onResult = h
	}
}

// Engine owns the grid and swipe counter for a single game.
// It is not safe for concurrent use.
type Engine struct {
	rng      Source
	settings Settings
	onResult ResultHandler

	grid        Grid
	validSwipes int
}

// New validates the settings and starts a fresh game with two tiles.
func New(settings Settings, rng Source, opts ...Option) (*Engine, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		rng:      rng,
		settings: settings,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.Reset()
	return e, nil
}

// Reset starts a new game with the current settings.
func (e *Engine) Reset() {
	e.grid = NewGrid(e.settings.BoardSize)
	e.validSwipes = 0

	// A fresh board always has room for the two starting tiles.
	_ = e.SpawnRandomTile()
	_ = e.SpawnRandomTile()
}

// ApplySettings validates new settings and restarts the game with them.
// On error the current game is left untouched.
func (e *Engine) ApplySettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	e.settings = settings
	e.Reset()
	return nil
}

// Swipe applies a move. It returns false without touching the board when
// the game is already over or nothing can move in that direction. A
// changing swipe counts as a valid swipe and spawns exactly one tile.
func (e *Engine) Swipe(dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidArgument, dir)
	}

	if e.Outcome().Terminal() {
		return false, nil
	}

	next, _, changed := Slide(e.grid, dir)
	if !changed {
		return false, nil
	}

	e.grid = next
	e.validSwipes++

	// A changed board always vacated or already had a free cell.
	_ = e.SpawnRandomTile()

	if outcome := e.Outcome(); outcome.Terminal() && e.onResult != nil {
		e.onResult(e.result(outcome))
	}

	return true, nil
}

// SpawnRandomTile places a 2 or 4 in a uniformly chosen empty cell.
func (e *Engine) SpawnRandomTile() error {
	empty := e.grid.EmptyCells()
	if len(empty) == 0 {
		return ErrGridFull
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.settings.FourChance {
		value = 4
	}

	e.grid[cell.Row][cell.Col] = value
	return nil
}

// Outcome returns the current classification of the game.
func (e *Engine) Outcome() Outcome {
	return Evaluate(e.grid, e.settings.TargetScore)
}

// Grid returns a copy of the board.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// ValidSwipes returns how many swipes changed the board this game.
func (e *Engine) ValidSwipes() int {
	return e.validSwipes
}

// Settings returns the active settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

func (e *Engine) result(outcome Outcome) Result {
	return Result{
		Outcome:     outcome,
		Steps:       e.validSwipes,
		Grid:        e.grid.Clone(),
		BoardSize:   e.settings.BoardSize,
		TargetScore: e.settings.TargetScore,
	}
}
