package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// settingsFile is the file name used in the user and local config directories.
const settingsFile = "settings.yaml"

// Load loads game settings.
// Search order: customPath -> ~/.t1024/settings.yaml -> ./configs/settings.yaml -> embedded default.
// The result is resolved and validated.
func Load(customPath string) (Settings, error) {
	var cfg Settings

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return checked(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return checked(cfg, userCfgPath)
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", settingsFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return checked(cfg, filepath.Join("configs", settingsFile))
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.Resolve(), nil
}

// checked resolves defaults and rejects out-of-range values.
func checked(cfg Settings, path string) (Settings, error) {
	cfg = cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes settings to path as YAML, creating parent directories.
// An empty path saves to the user config directory.
func Save(path string, cfg Settings) error {
	cfg = cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if path == "" {
		path = UserConfigPath()
		if path == "" {
			return fmt.Errorf("cannot resolve user config directory")
		}
	}
	path = ExpandHome(path)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns the path to the user settings file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t1024", settingsFile)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
