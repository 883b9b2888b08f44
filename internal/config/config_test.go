// ABOUTME: Tests for config load/save and path resolution.
// ABOUTME: Uses XDG env overrides to keep everything inside temp dirs.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	return tmpDir
}

func TestLoadNoFile(t *testing.T) {
	withConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir by default, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := withConfigHome(t)

	cfg := &Config{DataDir: "/tmp/unordinary-data"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "unordinary", "config.json")); err != nil {
		t.Fatalf("Config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir = %q, want %q", loaded.DataDir, cfg.DataDir)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tmpDir := withConfigHome(t)

	path := filepath.Join(tmpDir, "unordinary", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for corrupt config file")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if cfg.GetDataDir() == "" {
		t.Error("Default data dir should not be empty")
	}

	cfg = &Config{DataDir: "/explicit/dir"}
	if got := cfg.GetDataDir(); got != "/explicit/dir" {
		t.Errorf("GetDataDir = %q, want /explicit/dir", got)
	}
}

func TestOpenStorageAndSettings(t *testing.T) {
	dataDir := t.TempDir()
	cfg := &Config{DataDir: dataDir}

	db, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dataDir, "unordinary.db")); err != nil {
		t.Errorf("Database file not created: %v", err)
	}

	store, err := cfg.OpenSettings()
	if err != nil {
		t.Fatalf("OpenSettings failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(dataDir, "settings")); err != nil {
		t.Errorf("Settings directory not created: %v", err)
	}
}
