package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tokenFile is the single fixed key the token lives under. Everything that
// checks for a session (the HTTP client, the CLI's route guard) reads this
// one location.
const tokenFile = "token"

// FileStore is a TokenStore backed by a single file under dir, mode 0600.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

var _ TokenStore = (*FileStore)(nil)

// Path returns the token file location.
func (f *FileStore) Path() string {
	return filepath.Join(f.dir, tokenFile)
}

// Load returns the persisted token, or "" when none exists.
func (f *FileStore) Load() (string, error) {
	data, err := os.ReadFile(f.Path())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token with owner-only permissions.
func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(f.Path(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the token file. A missing file is not an error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
