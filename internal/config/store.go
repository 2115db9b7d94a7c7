package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gumdev/gum/internal/platform"
)

// Store persists the group mapping as a TOML file
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore creates a Store at the platform config path
func DefaultStore() (*Store, error) {
	path, err := platform.ConfigPath()
	if err != nil {
		return nil, err
	}
	return NewStore(path), nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the group mapping from file. A missing file is not an error
// and yields an empty mapping.
func (s *Store) Load() (map[string]User, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		slog.Debug("config file does not exist", "path", s.path)
		return map[string]User{}, nil
	}

	var file configFile
	if _, err := toml.DecodeFile(s.path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	if file.Groups == nil {
		file.Groups = map[string]User{}
	}

	slog.Debug("loaded groups from file", "path", s.path, "count", len(file.Groups))
	return file.Groups, nil
}

// Save writes the full group mapping to file, creating the parent
// directory if absent.
func (s *Store) Save(groups map[string]User) error {
	if err := platform.MkdirSecure(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := platform.OpenFileSecure(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(configFile{Groups: groups}); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	slog.Debug("saved groups to file", "path", s.path, "count", len(groups))
	return nil
}
