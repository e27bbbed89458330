// Package namestore persists the locally chosen display name between runs.
// It is deliberately dumb get/set storage: the name's meaning (and its
// derived color) belongs to the identity package.
package namestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the display name at a fixed file path.
type Store struct {
	path string
}

// New creates a name store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Get returns the persisted display name, or "" if none has been chosen yet.
func (s *Store) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read name file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Set persists a new display name. An empty name is rejected: clearing the
// name would silently drop the client into read-only mode.
func (s *Store) Set(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("display name cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create name directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(name+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to persist name: %w", err)
	}
	return nil
}
