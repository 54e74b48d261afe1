package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-1024/internal/engine"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return FromEngine(engine.DefaultSettings())
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
