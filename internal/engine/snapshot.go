package engine

// Snapshot captures the observable game state for front-ends and replay checks.
type Snapshot struct {
	BoardSize   int
	TargetScore int
	ValidSwipes int
	Board       Grid
	MaxTile     int
	Outcome     Outcome
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		BoardSize:   e.settings.BoardSize,
		TargetScore: e.settings.TargetScore,
		ValidSwipes: e.validSwipes,
		Board:       e.grid.Clone(),
		MaxTile:     e.grid.MaxTile(),
		Outcome:     e.Outcome(),
	}
}
