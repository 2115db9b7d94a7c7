package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigPath(t *testing.T) {
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join("gum", "config.toml")
	if !strings.HasSuffix(path, want) {
		t.Errorf("config path %q should end with %q", path, want)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("config path should be absolute, got %q", path)
	}
}

func TestConfigPathUnderConfigDir(t *testing.T) {
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("config file %q not inside config dir %q", path, dir)
	}
}
