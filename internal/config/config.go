// Package config holds the application configuration: capture shortcuts and
// the default preset.
//
// Config is a plain value constructed by the assembly root and passed to
// whatever needs it; there is no process-wide singleton. Loading merges the
// saved file over the defaults so new keys pick up their default when an
// older config file is read.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the application configuration.
type Config struct {
	// Shortcuts maps action names to accelerator strings.
	Shortcuts map[string]string `json:"shortcuts"`

	// Defaults holds startup defaults.
	Defaults Defaults `json:"defaults"`
}

// Defaults are the startup defaults persisted with the config.
type Defaults struct {
	// PresetID is the preset applied on startup; empty means the built-in
	// default state.
	PresetID string `json:"preset_id"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		Shortcuts: map[string]string{
			"capture-selection": "<Primary><Shift>a",
			"capture-window":    "<Primary><Shift>b",
			"capture-screen":    "<Primary><Shift>c",
			"copy":              "<Primary>c",
			"copy-and-close":    "<Primary><Shift>Return",
		},
	}
}

// Shortcut returns the accelerator bound to an action, or "" when unbound.
func (c Config) Shortcut(action string) string {
	return c.Shortcuts[action]
}

// DefaultPath returns the config file location
// ($XDG_CONFIG_HOME/composure/config.json).
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve config directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "composure", "config.json"), nil
}

// Load reads the config at path, merged over the defaults. A missing file
// is not an error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Shortcuts map[string]string `json:"shortcuts"`
		Defaults  *Defaults         `json:"defaults"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	for action, accel := range raw.Shortcuts {
		cfg.Shortcuts[action] = accel
	}
	if raw.Defaults != nil {
		cfg.Defaults = *raw.Defaults
	}
	return cfg, nil
}

// Save writes the config to path as indented JSON, creating parent
// directories as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
