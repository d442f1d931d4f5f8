// Package preset persists named composition states as JSON files.
//
// A preset is a versioned snapshot of a CompositionState. The Manager owns
// an on-disk directory of presets under the user's config directory, seeds
// a few built-ins on first run, and keeps an in-memory index.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/composure/composure/internal/composition"
)

// Version is the current preset schema version.
const Version = 1

// Preset is a saved composition state with a display name.
type Preset struct {
	Name        string                       `json:"name"`
	Version     int                          `json:"version"`
	Composition composition.CompositionState `json:"composition"`
}

// UnmarshalJSON decodes a preset, defaulting the name, version and any
// missing composition fields. Unknown fields are ignored.
func (p *Preset) UnmarshalJSON(data []byte) error {
	p.Name = "Untitled"
	p.Version = Version
	p.Composition = composition.DefaultState()

	var raw struct {
		Name        *string          `json:"name"`
		Version     *int             `json:"version"`
		Composition *json.RawMessage `json:"composition"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name != nil {
		p.Name = *raw.Name
	}
	if raw.Version != nil {
		p.Version = *raw.Version
	}
	if raw.Composition != nil {
		if err := json.Unmarshal(*raw.Composition, &p.Composition); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the preset to path as indented JSON, creating parent
// directories as needed.
func (p Preset) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}

// Load reads a preset from path.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	return p, nil
}

// Entry is one row of a preset listing.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Manager loads and saves presets in a directory, keyed by file stem.
type Manager struct {
	dir     string
	presets map[string]Preset
}

// NewManager creates a manager over the user's preset directory
// ($XDG_CONFIG_HOME/composure/presets), seeding the built-in presets on
// first run and loading everything found there.
func NewManager() (*Manager, error) {
	dir, err := defaultDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(dir)
}

// NewManagerAt is NewManager rooted at an explicit directory.
func NewManagerAt(dir string) (*Manager, error) {
	m := &Manager{dir: dir, presets: make(map[string]Preset)}
	if err := m.ensureDefaults(); err != nil {
		return nil, err
	}
	if err := m.LoadAll(); err != nil {
		return nil, err
	}
	return m, nil
}

func defaultDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve config directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "composure", "presets"), nil
}

// ensureDefaults seeds the built-in presets that are missing.
func (m *Manager) ensureDefaults() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}

	defaults := map[string]Preset{
		"default": {Name: "Default", Version: Version, Composition: composition.DefaultState()},
		"minimal": {Name: "Minimal", Version: Version, Composition: minimalState()},
		"social":  {Name: "Social", Version: Version, Composition: socialState()},
	}
	for id, p := range defaults {
		path := filepath.Join(m.dir, id+".json")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := p.Save(path); err != nil {
			return err
		}
	}
	return nil
}

func minimalState() composition.CompositionState {
	s := composition.DefaultState()
	s.PaddingPx = 60
	s.RadiusPx = 8
	s.Shadow.Strength = 0.3
	return s
}

func socialState() composition.CompositionState {
	s := composition.DefaultState()
	s.PaddingPx = 80
	s.RadiusPx = 16
	s.Shadow.Strength = 0.7
	s.Background.PresetID = "lavender"
	return s
}

// LoadAll reloads the in-memory index from disk. Files that fail to parse
// are skipped so one corrupt preset never blocks the rest.
func (m *Manager) LoadAll() error {
	m.presets = make(map[string]Preset)

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read preset directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		p, err := Load(filepath.Join(m.dir, e.Name()))
		if err != nil {
			continue
		}
		m.presets[strings.TrimSuffix(e.Name(), ".json")] = p
	}
	return nil
}

// Get returns a preset by id.
func (m *Manager) Get(id string) (Preset, bool) {
	p, ok := m.presets[id]
	return p, ok
}

// Save persists a preset under id and updates the index.
func (m *Manager) Save(id string, p Preset) error {
	if err := p.Save(filepath.Join(m.dir, id+".json")); err != nil {
		return err
	}
	m.presets[id] = p
	return nil
}

// Delete removes a preset by id. The built-in "default" preset cannot be
// deleted; Delete reports whether a preset was removed.
func (m *Manager) Delete(id string) bool {
	if id == "default" {
		return false
	}
	path := filepath.Join(m.dir, id+".json")
	if err := os.Remove(path); err != nil {
		return false
	}
	delete(m.presets, id)
	return true
}

// List returns all presets as (id, name) entries sorted by id.
func (m *Manager) List() []Entry {
	out := make([]Entry, 0, len(m.presets))
	for id, p := range m.presets {
		out = append(out, Entry{ID: id, Name: p.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
