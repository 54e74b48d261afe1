package engine

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidConfiguration is returned when board size or target score
	// fall outside the accepted ranges.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidArgument is returned for an unrecognized swipe direction.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrGridFull is returned when a tile is spawned on a board with no empty cell.
	ErrGridFull = errors.New("grid is full")
)

// Board size limits.
const (
	MinBoardSize = 3
	MaxBoardSize = 7
)

// Defaults used when a setting is absent.
const (
	DefaultBoardSize   = 4
	DefaultTargetScore = 2048
	DefaultFourChance  = 0.5
)

// TargetScores lists the accepted win thresholds.
var TargetScores = []int{1024, 2048, 4096, 8192}

// Settings configures a game.
type Settings struct {
	BoardSize   int
	TargetScore int

	// FourChance is the probability that a spawned tile is a 4 instead of a 2.
	FourChance float64
}

// DefaultSettings returns a 4x4 board with a 2048 target and 50/50 spawns.
func DefaultSettings() Settings {
	return Settings{
		BoardSize:   DefaultBoardSize,
		TargetScore: DefaultTargetScore,
		FourChance:  DefaultFourChance,
	}
}

// Validate checks the settings against the accepted ranges.
func (s Settings) Validate() error {
	if s.BoardSize < MinBoardSize || s.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board size %d outside [%d,%d]",
			ErrInvalidConfiguration, s.BoardSize, MinBoardSize, MaxBoardSize)
	}
	if !slices.Contains(TargetScores, s.TargetScore) {
		return fmt.Errorf("%w: target score %d not one of %v",
			ErrInvalidConfiguration, s.TargetScore, TargetScores)
	}
	if s.FourChance < 0 || s.FourChance > 1 {
		return fmt.Errorf("%w: four chance %g outside [0,1]",
			ErrInvalidConfiguration, s.FourChance)
	}
	return nil
}
