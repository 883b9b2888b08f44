// ABOUTME: Tests for workout history snapshots.
// ABOUTME: Covers weekday derivation, replace-on-resave, and split-delete survival.
package storage

import (
	"testing"

	"github.com/unordinary/unordinary/internal/models"
)

func benchAndSquat() []models.ExerciseLog {
	return []models.ExerciseLog{
		{
			Name: "Bench Press",
			Sets: []models.SetEntry{
				{Weight: "100", Reps: "5", Unit: "kg"},
				{Weight: "100", Reps: "5", Unit: "kg"},
				{Weight: "95", Reps: "8", Unit: "kg"},
			},
		},
		{
			Name: "Squat",
			Sets: []models.SetEntry{
				{Weight: "140", Reps: "5", Unit: "kg"},
			},
		},
	}
}

func TestSaveAndGetWorkoutHistory(t *testing.T) {
	db := setupTestDB(t)

	splitID, _ := db.AddSplit("PPL")

	// 2024-06-10 is a Monday
	if err := db.SaveWorkoutHistory(splitID, "2024-06-10", benchAndSquat(), true); err != nil {
		t.Fatalf("SaveWorkoutHistory failed: %v", err)
	}

	got, err := db.GetWorkoutHistory("2024-06-10", splitID, 0)
	if err != nil {
		t.Fatalf("GetWorkoutHistory failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a history entry, got nil")
	}

	if got.Date != "2024-06-10" {
		t.Errorf("Date = %q, want 2024-06-10", got.Date)
	}
	if got.DayOfWeek != 0 {
		t.Errorf("DayOfWeek = %d, want 0 (Monday)", got.DayOfWeek)
	}
	if !got.UseMetric {
		t.Error("UseMetric not round-tripped")
	}
	if len(got.Exercises) != 2 {
		t.Fatalf("Expected 2 exercises, got %d", len(got.Exercises))
	}
	bench := got.Exercises[0]
	if bench.Name != "Bench Press" || len(bench.Sets) != 3 {
		t.Errorf("Bench log wrong: %+v", bench)
	}
	if bench.Sets[2].Weight != "95" || bench.Sets[2].Reps != "8" {
		t.Errorf("Set values wrong: %+v", bench.Sets[2])
	}
}

func TestSaveWorkoutHistoryReplacesSameDay(t *testing.T) {
	db := setupTestDB(t)

	splitID, _ := db.AddSplit("PPL")

	if err := db.SaveWorkoutHistory(splitID, "2024-06-10", benchAndSquat(), true); err != nil {
		t.Fatalf("SaveWorkoutHistory failed: %v", err)
	}

	// Re-log the same day with a different session
	replacement := []models.ExerciseLog{
		{Name: "Deadlift", Sets: []models.SetEntry{{Weight: "180", Reps: "3", Unit: "kg"}}},
	}
	if err := db.SaveWorkoutHistory(splitID, "2024-06-10", replacement, true); err != nil {
		t.Fatalf("SaveWorkoutHistory (re-log) failed: %v", err)
	}

	all, err := db.ListWorkoutHistory()
	if err != nil {
		t.Fatalf("ListWorkoutHistory failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 entry after re-log, got %d", len(all))
	}
	if all[0].Exercises[0].Name != "Deadlift" {
		t.Errorf("Re-log did not replace: got %q", all[0].Exercises[0].Name)
	}
}

func TestSaveWorkoutHistoryInvalidDate(t *testing.T) {
	db := setupTestDB(t)

	splitID, _ := db.AddSplit("PPL")
	err := db.SaveWorkoutHistory(splitID, "June 10th", benchAndSquat(), true)
	if err == nil {
		t.Fatal("Expected error for malformed date")
	}
}

func TestGetWorkoutHistoryMiss(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.GetWorkoutHistory("2024-06-10", 1, 0)
	if err != nil {
		t.Fatalf("GetWorkoutHistory failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing entry, got %+v", got)
	}
}

func TestListWorkoutHistoryOrder(t *testing.T) {
	db := setupTestDB(t)

	splitID, _ := db.AddSplit("PPL")
	for _, date := range []string{"2024-06-10", "2024-06-14", "2024-06-12"} {
		if err := db.SaveWorkoutHistory(splitID, date, benchAndSquat(), true); err != nil {
			t.Fatalf("SaveWorkoutHistory(%s) failed: %v", date, err)
		}
	}

	all, err := db.ListWorkoutHistory()
	if err != nil {
		t.Fatalf("ListWorkoutHistory failed: %v", err)
	}
	want := []string{"2024-06-14", "2024-06-12", "2024-06-10"}
	if len(all) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(all))
	}
	for i, w := range want {
		if all[i].Date != w {
			t.Errorf("Entry %d date = %q, want %q", i, all[i].Date, w)
		}
	}
}

func TestHistorySurvivesSplitDelete(t *testing.T) {
	db := setupTestDB(t)

	splitID, _ := db.AddSplit("PPL")
	if err := db.SaveWorkoutHistory(splitID, "2024-06-10", benchAndSquat(), true); err != nil {
		t.Fatalf("SaveWorkoutHistory failed: %v", err)
	}

	if ok, err := db.DeleteSplit(splitID); err != nil || !ok {
		t.Fatalf("DeleteSplit failed: ok=%v err=%v", ok, err)
	}

	got, err := db.GetWorkoutHistory("2024-06-10", splitID, 0)
	if err != nil {
		t.Fatalf("GetWorkoutHistory failed: %v", err)
	}
	if got == nil {
		t.Fatal("History entry lost when its split was deleted")
	}
	if got.Exercises[0].Name != "Bench Press" {
		t.Errorf("Snapshot content changed: %+v", got.Exercises)
	}
}

func TestClearWorkoutHistory(t *testing.T) {
	db := setupTestDB(t)

	splitID, _ := db.AddSplit("PPL")
	if err := db.SaveWorkoutHistory(splitID, "2024-06-10", benchAndSquat(), true); err != nil {
		t.Fatalf("SaveWorkoutHistory failed: %v", err)
	}

	if err := db.ClearWorkoutHistory(); err != nil {
		t.Fatalf("ClearWorkoutHistory failed: %v", err)
	}

	all, err := db.ListWorkoutHistory()
	if err != nil {
		t.Fatalf("ListWorkoutHistory failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected no history after clear, got %d", len(all))
	}

	// Templates untouched
	splits, _ := db.GetSplits()
	if len(splits) != 1 {
		t.Errorf("Split template lost by ClearWorkoutHistory")
	}
}
