// ABOUTME: Integration tests for unordinary CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "unordinary")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/unordinary")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Use temp data directory
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", tmpDir}, args...)
		cmd := exec.Command(binary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Create a split
	output, err := run("split", "add", "Push Pull Legs")
	if err != nil {
		t.Fatalf("Failed to add split: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added split") {
		t.Errorf("Expected 'Added split' in output, got: %s", output)
	}

	// First split becomes the default
	output, err = run("split", "list")
	if err != nil {
		t.Fatalf("Failed to list splits: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Push Pull Legs") {
		t.Errorf("Expected split name in list output, got: %s", output)
	}
	if !strings.Contains(output, "default") {
		t.Errorf("Expected first split to be default, got: %s", output)
	}

	// Add a Monday day and an exercise
	output, err = run("day", "add", "1", "monday", "Push")
	if err != nil {
		t.Fatalf("Failed to add day: %v\n%s", err, output)
	}
	output, err = run("day", "exercise", "add", "1", "Bench Press")
	if err != nil {
		t.Fatalf("Failed to add day exercise: %v\n%s", err, output)
	}

	// The split shows its structure
	output, err = run("split", "show", "1")
	if err != nil {
		t.Fatalf("Failed to show split: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Monday") || !strings.Contains(output, "Bench Press") {
		t.Errorf("Expected day and exercise in show output, got: %s", output)
	}

	// Log a workout against the default split
	output, err = run("log", "Bench Press=100x5,95x8", "--date", "2024-06-10")
	if err != nil {
		t.Fatalf("Failed to log workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged") {
		t.Errorf("Expected 'Logged' in output, got: %s", output)
	}

	// Look it up
	output, err = run("history", "2024-06-10")
	if err != nil {
		t.Fatalf("Failed to show history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench Press") {
		t.Errorf("Expected exercise in history output, got: %s", output)
	}

	// History survives deleting the split
	output, err = run("split", "delete", "1", "--force")
	if err != nil {
		t.Fatalf("Failed to delete split: %v\n%s", err, output)
	}
	output, err = run("history", "2024-06-10")
	if err != nil {
		t.Fatalf("Failed to show history after delete: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench Press") {
		t.Errorf("Expected history to survive split delete, got: %s", output)
	}
}

func TestExportWorkflow(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "unordinary-export-test")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/unordinary")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	tmpDir := t.TempDir()
	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", tmpDir}, args...)
		cmd := exec.Command(binary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	if output, err := run("split", "add", "Upper Lower"); err != nil {
		t.Fatalf("Failed to add split: %v\n%s", err, output)
	}

	exportPath := filepath.Join(tmpDir, "export.json")
	if output, err := run("export", "-o", exportPath); err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}

	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("Export file not written: %v", err)
	}
	if !strings.Contains(string(data), "Upper Lower") {
		t.Errorf("Export missing split:\n%s", data)
	}
}
