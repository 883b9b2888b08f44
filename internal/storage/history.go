// ABOUTME: Workout history recorder: denormalized completed-workout snapshots.
// ABOUTME: One row per (date, split, weekday); re-saving replaces the row.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/unordinary/unordinary/internal/models"
)

// SaveWorkoutHistory persists a completed workout for the given calendar
// date. The weekday is derived from the date. Any existing row for the
// same (date, split, weekday) is replaced — re-logging a day wins over the
// earlier entry. The exercise list is stored as a self-contained JSON
// document together with the unit system it was entered in.
func (d *DB) SaveWorkoutHistory(splitID int64, date string, exercises []models.ExerciseLog, useMetric bool) error {
	dayOfWeek, err := models.WeekdayIndex(date)
	if err != nil {
		return fmt.Errorf("save workout history: %w", err)
	}

	blob, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("save workout history: encode exercises: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("save workout history: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"DELETE FROM workout_history WHERE date = ? AND split_id = ? AND day_of_week = ?",
		date, splitID, dayOfWeek,
	)
	if err != nil {
		return fmt.Errorf("save workout history: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO workout_history (date, split_id, day_of_week, exercises, use_metric, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		date, splitID, dayOfWeek, string(blob), boolToInt(useMetric), nowString(),
	)
	if err != nil {
		return fmt.Errorf("save workout history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save workout history: %w", err)
	}
	return nil
}

// GetWorkoutHistory looks up the snapshot for a (date, split, weekday)
// key. A missing row means no workout that day and returns nil, nil.
func (d *DB) GetWorkoutHistory(date string, splitID int64, dayOfWeek int) (*models.WorkoutHistory, error) {
	row := d.db.QueryRow(`
		SELECT id, date, split_id, day_of_week, exercises, use_metric, created_at
		FROM workout_history
		WHERE date = ? AND split_id = ? AND day_of_week = ?
	`, date, splitID, dayOfWeek)

	h, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get workout history: %w", err)
	}
	return h, nil
}

// ListWorkoutHistory returns all snapshots, most recent date first.
func (d *DB) ListWorkoutHistory() ([]*models.WorkoutHistory, error) {
	rows, err := d.db.Query(`
		SELECT id, date, split_id, day_of_week, exercises, use_metric, created_at
		FROM workout_history
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list workout history: %w", err)
	}
	defer rows.Close()

	var history []*models.WorkoutHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("list workout history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// ClearWorkoutHistory deletes every history row. Split templates are
// untouched.
func (d *DB) ClearWorkoutHistory() error {
	if _, err := d.db.Exec("DELETE FROM workout_history"); err != nil {
		return fmt.Errorf("clear workout history: %w", err)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanHistory(s scannable) (*models.WorkoutHistory, error) {
	var h models.WorkoutHistory
	var blob, createdAt string
	err := s.Scan(&h.ID, &h.Date, &h.SplitID, &h.DayOfWeek, &blob, &h.UseMetric, &createdAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(blob), &h.Exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	h.CreatedAt = parseTime(createdAt)
	return &h, nil
}
