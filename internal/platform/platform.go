// Package platform resolves per-OS paths and file permissions for gum.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName     = "gum"
	configFileName = "config.toml"
)

// ConfigDir returns the path to the gum config directory. It follows the
// platform convention (XDG on Linux, Application Support on macOS, AppData
// on Windows) via os.UserConfigDir.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// MkdirSecure creates a directory with appropriate permissions for the platform
func MkdirSecure(path string) error {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix permissions
		return os.MkdirAll(path, 0755)
	}
	// Unix/Linux: use restrictive permissions
	return os.MkdirAll(path, 0700)
}

// OpenFileSecure opens a file for writing with appropriate permissions
func OpenFileSecure(path string, flag int) (*os.File, error) {
	if runtime.GOOS == "windows" {
		return os.OpenFile(path, flag, 0644)
	}
	// Unix/Linux: use restrictive permissions
	return os.OpenFile(path, flag, 0600)
}
