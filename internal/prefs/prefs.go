// Package prefs persists the single local UI preference shared by every
// presenter: the color theme.
package prefs

import (
	"fmt"
	"sync"

	"deckctl/internal/config"
	"deckctl/internal/present"
	"deckctl/internal/store"
)

type file struct {
	Theme string `json:"theme,omitempty"`
}

// Store is a present.ThemeStore backed by a JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store for the JSON file at path.
func New(path string) *Store { return &Store{path: path} }

// Default returns the store at config.PrefsPath.
func Default() (*Store, error) {
	p, err := config.PrefsPath()
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

// LoadTheme returns the stored theme. A missing file or an unknown value
// yields present.DefaultTheme together with an error describing why.
func (s *Store) LoadTheme() (present.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var f file
	found, err := store.LoadJSON(s.path, &f)
	if err != nil {
		return present.DefaultTheme, err
	}
	if !found || f.Theme == "" {
		return present.DefaultTheme, fmt.Errorf("no theme in %s", s.path)
	}
	t, ok := present.ParseTheme(f.Theme)
	if !ok {
		return present.DefaultTheme, fmt.Errorf("unknown theme %q in %s", f.Theme, s.path)
	}
	return t, nil
}

// SaveTheme writes t, keeping any other keys of the file intact.
func (s *Store) SaveTheme(t present.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := map[string]any{}
	if _, err := store.LoadJSON(s.path, &doc); err != nil {
		doc = map[string]any{}
	}
	doc["theme"] = string(t)
	if err := store.SaveJSON(s.path, doc); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
