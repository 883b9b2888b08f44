// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers set notation parsing, weekday parsing, and weight display.
package main

import (
	"strings"
	"testing"

	"github.com/unordinary/unordinary/internal/models"
)

func TestParseExerciseLog(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "single set", input: "Bench Press=100x5", wantErr: false},
		{name: "multiple sets", input: "Bench Press=100x5,100x5,95x8", wantErr: false},
		{name: "decimal weight", input: "Curl=12.5x12", wantErr: false},
		{name: "spaces around sets", input: "Squat= 140x5 , 140x5", wantErr: false},
		{name: "missing equals", input: "Bench Press 100x5", wantErr: true},
		{name: "empty name", input: "=100x5", wantErr: true},
		{name: "empty sets", input: "Bench Press=", wantErr: true},
		{name: "missing reps", input: "Bench Press=100x", wantErr: true},
		{name: "missing weight", input: "Bench Press=x5", wantErr: true},
		{name: "non-numeric weight", input: "Bench Press=heavyx5", wantErr: true},
		{name: "non-numeric reps", input: "Bench Press=100xfew", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := parseExerciseLog(tt.input, "kg")
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseExerciseLog(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseExerciseLog(%q) failed: %v", tt.input, err)
				return
			}
			if log.Name == "" || len(log.Sets) == 0 {
				t.Errorf("parseExerciseLog(%q) = %+v, want name and sets", tt.input, log)
			}
			for _, set := range log.Sets {
				if set.Unit != "kg" {
					t.Errorf("Set unit = %q, want kg", set.Unit)
				}
			}
		})
	}
}

func TestParseExerciseLogValues(t *testing.T) {
	log, err := parseExerciseLog("Bench Press=100x5,95x8", "lbs")
	if err != nil {
		t.Fatalf("parseExerciseLog failed: %v", err)
	}
	if log.Name != "Bench Press" {
		t.Errorf("Name = %q, want Bench Press", log.Name)
	}
	if len(log.Sets) != 2 {
		t.Fatalf("Expected 2 sets, got %d", len(log.Sets))
	}
	if log.Sets[0].Weight != "100" || log.Sets[0].Reps != "5" {
		t.Errorf("First set = %+v", log.Sets[0])
	}
	if log.Sets[1].Weight != "95" || log.Sets[1].Reps != "8" {
		t.Errorf("Second set = %+v", log.Sets[1])
	}
	if log.Sets[0].Unit != "lbs" {
		t.Errorf("Unit = %q, want lbs", log.Sets[0].Unit)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "0", want: 0},
		{input: "6", want: 6},
		{input: "monday", want: 0},
		{input: "Monday", want: 0},
		{input: "SUNDAY", want: 6},
		{input: "friday", want: 4},
		{input: "7", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "someday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseWeekday(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseWeekday(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseWeekday(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseWeekday(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	if err != nil || id != 42 {
		t.Errorf("parseID(42) = %d, %v", id, err)
	}
	if _, err := parseID("abc"); err == nil {
		t.Error("parseID(abc) should fail")
	}
}

func TestDisplayWeight(t *testing.T) {
	// Logged metric, shown metric: no conversion
	got := displayWeight(models.SetEntry{Weight: "100"}, true, true)
	if got != "100 kg" {
		t.Errorf("displayWeight = %q, want 100 kg", got)
	}

	// Logged metric, shown imperial
	got = displayWeight(models.SetEntry{Weight: "100"}, true, false)
	if !strings.HasPrefix(got, "220.462") || !strings.HasSuffix(got, " lbs") {
		t.Errorf("displayWeight = %q, want ~220.462 lbs", got)
	}

	// Non-numeric weights pass through
	got = displayWeight(models.SetEntry{Weight: "bodyweight"}, true, false)
	if got != "bodyweight" {
		t.Errorf("displayWeight = %q, want bodyweight", got)
	}
}
