// Package localstore is the offline adapter. When no backend is configured
// the repository contracts are served from a JSON mirror of the notes and
// categories collections under the data directory, matching the remote
// API's observable behavior closely enough for the state layer not to care.
package localstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Fixed file names of the mirror, one per collection.
const (
	notesFile      = "notes.json"
	categoriesFile = "categories.json"
)

// Store owns the data directory and serializes access to the JSON files.
// Both repositories (Notes, Categories) share one Store so that cross-entity
// operations (attaching a category to a note) see a consistent view.
type Store struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewStore creates a Store rooted at dir. The directory is created on first
// write, not here.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string { return s.dir }

// loadJSON reads a collection file into v. A missing file yields an empty
// collection, not an error.
func loadJSON[T any](path string, v *[]T) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		*v = []T{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if len(data) == 0 {
		*v = []T{}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// saveJSON writes a collection file, creating the data directory if needed.
func saveJSON[T any](path string, v []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *Store) notesPath() string      { return filepath.Join(s.dir, notesFile) }
func (s *Store) categoriesPath() string { return filepath.Join(s.dir, categoriesFile) }
