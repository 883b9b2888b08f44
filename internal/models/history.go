// ABOUTME: Workout history models: immutable snapshots of performed workouts.
// ABOUTME: Exercises are embedded as a self-contained document, not normalized.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for workout history keys.
const DateLayout = "2006-01-02"

// SetEntry is one performed set. Weight and reps are kept as entered
// (free-form strings); Unit records the unit label at logging time.
type SetEntry struct {
	Weight string `json:"weight" yaml:"weight"`
	Reps   string `json:"reps" yaml:"reps"`
	Unit   string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// ExerciseLog is the performed sets for one exercise within a workout.
type ExerciseLog struct {
	Name string     `json:"name" yaml:"name"`
	Sets []SetEntry `json:"sets" yaml:"sets"`
}

// WorkoutHistory is a completed-workout snapshot for one calendar date,
// split, and weekday. The exercise list is denormalized so that history
// stays stable even if the originating split is edited or deleted later.
// UseMetric records the unit system the weights were entered in; display
// conversion happens at read time using it as the source unit.
type WorkoutHistory struct {
	ID        int64         `json:"id" yaml:"id"`
	Date      string        `json:"date" yaml:"date"`
	SplitID   int64         `json:"split_id" yaml:"split_id"`
	DayOfWeek int           `json:"day_of_week" yaml:"day_of_week"`
	Exercises []ExerciseLog `json:"exercises" yaml:"exercises"`
	UseMetric bool          `json:"use_metric" yaml:"use_metric"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// Today returns the current local date in YYYY-MM-DD form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// WeekdayIndex returns the Monday-based day-of-week (0=Monday..6=Sunday)
// for a YYYY-MM-DD date.
func WeekdayIndex(date string) (int, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", date, err)
	}
	return (int(t.Weekday()) + 6) % 7, nil
}
