// ABOUTME: Split, SplitDay, and SplitDayExercise models for workout templates.
// ABOUTME: A split assigns named exercise lists to weekdays (0=Monday..6=Sunday).
package models

import "time"

// Split is a named weekly workout template. OrderIndex controls display
// order (lower first, created_at descending as tiebreak). At most one split
// is the favorite and exactly one is the default while any splits exist;
// both invariants are maintained by the storage layer.
type Split struct {
	ID         int64      `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	OrderIndex int        `json:"order_index" yaml:"order_index"`
	IsFavorite bool       `json:"is_favorite" yaml:"is_favorite"`
	IsDefault  bool       `json:"is_default" yaml:"is_default"`
	CreatedAt  time.Time  `json:"created_at" yaml:"created_at"`
	Days       []SplitDay `json:"days,omitempty" yaml:"days,omitempty"` // Populated when fetching full split
}

// SplitDay is one weekday's exercise list within a split. Owned by its
// split and removed with it.
type SplitDay struct {
	ID        int64              `json:"id" yaml:"id"`
	SplitID   int64              `json:"split_id" yaml:"split_id"`
	DayOfWeek int                `json:"day_of_week" yaml:"day_of_week"`
	Name      string             `json:"name" yaml:"name"`
	CreatedAt time.Time          `json:"created_at" yaml:"created_at"`
	Exercises []SplitDayExercise `json:"exercises,omitempty" yaml:"exercises,omitempty"`
}

// SplitDayExercise links an exercise row into a split day at a given order.
// Each link owns a uniquely created exercise row (adding the same exercise
// name twice produces two exercise rows).
type SplitDayExercise struct {
	ID         int64     `json:"id" yaml:"id"`
	SplitDayID int64     `json:"split_day_id" yaml:"split_day_id"`
	ExerciseID int64     `json:"exercise_id" yaml:"exercise_id"`
	Name       string    `json:"name" yaml:"name"`
	OrderIndex int       `json:"order_index" yaml:"order_index"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// DayNames maps day-of-week indexes to names, Monday first.
var DayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayName returns the weekday name for an index, or "?" when out of range.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "?"
	}
	return DayNames[dayOfWeek]
}
