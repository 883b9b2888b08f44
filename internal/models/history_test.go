// ABOUTME: Tests for workout history helpers.
// ABOUTME: Covers Monday-based weekday derivation and day name lookup.
package models

import "testing"

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-06-10", 0}, // Monday
		{"2024-06-11", 1},
		{"2024-06-12", 2},
		{"2024-06-13", 3},
		{"2024-06-14", 4},
		{"2024-06-15", 5},
		{"2024-06-16", 6}, // Sunday
		{"2024-06-17", 0}, // next Monday
	}

	for _, tt := range tests {
		got, err := WeekdayIndex(tt.date)
		if err != nil {
			t.Errorf("WeekdayIndex(%q) failed: %v", tt.date, err)
			continue
		}
		if got != tt.want {
			t.Errorf("WeekdayIndex(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestWeekdayIndexInvalid(t *testing.T) {
	for _, date := range []string{"", "June 10th", "2024/06/10", "10-06-2024"} {
		if _, err := WeekdayIndex(date); err == nil {
			t.Errorf("WeekdayIndex(%q) should fail", date)
		}
	}
}

func TestDayName(t *testing.T) {
	if got := DayName(0); got != "Monday" {
		t.Errorf("DayName(0) = %q, want Monday", got)
	}
	if got := DayName(6); got != "Sunday" {
		t.Errorf("DayName(6) = %q, want Sunday", got)
	}
	if got := DayName(-1); got != "?" {
		t.Errorf("DayName(-1) = %q, want ?", got)
	}
	if got := DayName(7); got != "?" {
		t.Errorf("DayName(7) = %q, want ?", got)
	}
}

func TestToday(t *testing.T) {
	date := Today()
	if _, err := WeekdayIndex(date); err != nil {
		t.Errorf("Today() = %q is not a valid date: %v", date, err)
	}
}
