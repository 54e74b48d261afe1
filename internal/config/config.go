// Package config loads and saves game settings as YAML. Settings are an
// explicit value owned by the caller and handed to the engine; nothing in
// the engine reads them implicitly.
package config

import "github.com/vovakirdan/tui-1024/internal/engine"

// Settings is the on-disk form of the game settings.
type Settings struct {
	BoardSize   int `yaml:"board_size"`
	TargetScore int `yaml:"target_score"`

	// FourChance is a pointer so an explicit 0 (always spawn 2) survives
	// defaulting.
	FourChance *float64 `yaml:"four_chance,omitempty"`
}

// Resolve fills absent or zero values with the defaults: a 4x4 board,
// a 2048 target and 50/50 spawns.
func (s Settings) Resolve() Settings {
	if s.BoardSize == 0 {
		s.BoardSize = engine.DefaultBoardSize
	}
	if s.TargetScore == 0 {
		s.TargetScore = engine.DefaultTargetScore
	}
	if s.FourChance == nil {
		chance := engine.DefaultFourChance
		s.FourChance = &chance
	}
	return s
}

// Engine converts resolved settings into engine settings.
// Range checks happen in the engine.
func (s Settings) Engine() engine.Settings {
	r := s.Resolve()
	return engine.Settings{
		BoardSize:   r.BoardSize,
		TargetScore: r.TargetScore,
		FourChance:  *r.FourChance,
	}
}

// FromEngine converts engine settings into their on-disk form.
func FromEngine(es engine.Settings) Settings {
	chance := es.FourChance
	return Settings{
		BoardSize:   es.BoardSize,
		TargetScore: es.TargetScore,
		FourChance:  &chance,
	}
}

// Validate resolves the settings and checks them against the engine limits.
func (s Settings) Validate() error {
	return s.Engine().Validate()
}
