// ABOUTME: Database setup helper and connection lifecycle tests.
// ABOUTME: Verifies open/close behavior and file creation.
package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "unordinary-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "unordinary.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "unordinary-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	// Parent directory does not exist yet
	dbPath := filepath.Join(tmpDir, "nested", "unordinary.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	info, err := os.Stat(dbPath)
	if err != nil {
		t.Fatalf("Database file not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Database permissions = %o, want 0600", perm)
	}
}

func TestOpenExistingDatabase(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "unordinary-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "unordinary.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("First open failed: %v", err)
	}
	id, err := db.AddSplit("Push Pull Legs")
	if err != nil {
		t.Fatalf("AddSplit failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and read back
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Second open failed: %v", err)
	}
	defer db.Close()

	splits, err := db.GetSplits()
	if err != nil {
		t.Fatalf("GetSplits failed: %v", err)
	}
	if len(splits) != 1 || splits[0].ID != id {
		t.Errorf("Expected the split to survive reopen, got %d splits", len(splits))
	}
}
