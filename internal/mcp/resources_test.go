// ABOUTME: Tests for MCP resource handlers.
// ABOUTME: Covers the schedule and splits resources.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestHandleScheduleResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	splitID, _ := db.AddSplit("PPL")
	if _, err := db.SetDefaultSplit(splitID, true); err != nil {
		t.Fatalf("SetDefaultSplit failed: %v", err)
	}
	dayID, _ := db.AddSplitDay(splitID, 0, "Push")
	if _, err := db.AddSplitDayExercise(dayID, "Bench Press", 0); err != nil {
		t.Fatalf("AddSplitDayExercise failed: %v", err)
	}

	result, err := server.handleScheduleResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleScheduleResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content, got %d", len(result.Contents))
	}

	text := result.Contents[0].Text
	if !strings.Contains(text, "Monday") {
		t.Errorf("Schedule missing weekday name:\n%s", text)
	}
	if !strings.Contains(text, "Bench Press") {
		t.Errorf("Schedule missing exercise:\n%s", text)
	}
}

func TestHandleScheduleResourceEmpty(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	result, err := server.handleScheduleResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleScheduleResource failed: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, "message") {
		t.Errorf("Expected message for empty database:\n%s", result.Contents[0].Text)
	}
}

func TestHandleSplitsResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	if _, err := db.AddSplit("PPL"); err != nil {
		t.Fatalf("AddSplit failed: %v", err)
	}

	result, err := server.handleSplitsResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleSplitsResource failed: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, "PPL") {
		t.Errorf("Splits resource missing split:\n%s", result.Contents[0].Text)
	}
}
