package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Settings is one named preset: the whole matching configuration a
// client needs to restore a session.
type Settings struct {
	LeftSheet         string   `json:"leftSheet"`
	RightSheet        string   `json:"rightSheet"`
	LeftOutputCols    []string `json:"leftOutputCols"`
	LeftMatchCols     []string `json:"leftMatchCols"`
	RightOutputCols   []string `json:"rightOutputCols"`
	RightMatchCols    []string `json:"rightMatchCols"`
	Threshold         float64  `json:"threshold"`
	IncludeUnmatched  bool     `json:"includeUnmatched"`
	PreferAccelerated bool     `json:"preferAccelerated"`
	FilterMode        string   `json:"filterMode"`
}

// Store keeps named presets in a single JSON document on disk,
// rewritten whole on every change. Writes go through a temp file and
// rename so a crash never leaves a half-written document.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// All returns every preset. A missing or unreadable file reads as an
// empty set rather than an error.
func (s *Store) All() map[string]Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get looks up one preset by name.
func (s *Store) Get(name string) (Settings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.load()[name]
	return p, ok
}

// Upsert creates or replaces a named preset.
func (s *Store) Upsert(name string, p Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.load()
	all[name] = p
	return s.save(all)
}

// Delete removes a preset, reporting whether it existed.
func (s *Store) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.load()
	if _, ok := all[name]; !ok {
		return false, nil
	}
	delete(all, name)
	return true, s.save(all)
}

func (s *Store) load() map[string]Settings {
	out := make(map[string]Settings)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		// corrupt file: start over rather than fail every request
		return make(map[string]Settings)
	}
	return out
}

func (s *Store) save(all map[string]Settings) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create preset dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".presets-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write presets: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace presets: %w", err)
	}
	return nil
}
