// ABOUTME: Split repository: CRUD, ordering, and the default/favorite invariants.
// ABOUTME: Multi-statement invariant updates run as single transactions.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/unordinary/unordinary/internal/models"
)

// AddSplit creates a split at the end of the display order and returns its
// id. Name uniqueness is the caller's concern.
func (d *DB) AddSplit(name string) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("add split: %w", err)
	}
	defer tx.Rollback()

	var maxOrder int
	if err := tx.QueryRow("SELECT COALESCE(MAX(order_index), 0) FROM splits").Scan(&maxOrder); err != nil {
		return 0, fmt.Errorf("add split: %w", err)
	}

	res, err := tx.Exec(
		"INSERT INTO splits (name, order_index, created_at) VALUES (?, ?, ?)",
		name, maxOrder+1, nowString(),
	)
	if err != nil {
		return 0, fmt.Errorf("add split: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add split: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("add split: %w", err)
	}
	return id, nil
}

// UpdateSplit renames a split and, when isFavorite is non-nil, sets the
// favorite flag directly. It never touches the default flag; use
// SetDefaultSplit for that. Returns false when the split does not exist.
func (d *DB) UpdateSplit(id int64, name string, isFavorite *bool) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if isFavorite != nil {
		res, err = d.db.Exec(
			"UPDATE splits SET name = ?, is_favorite = ? WHERE id = ?",
			name, boolToInt(*isFavorite), id,
		)
	} else {
		res, err = d.db.Exec("UPDATE splits SET name = ? WHERE id = ?", name, id)
	}
	if err != nil {
		return false, fmt.Errorf("update split: %w", err)
	}
	return changed(res)
}

// SetDefaultSplit sets or clears the default flag while maintaining the
// exactly-one-default invariant. Setting true clears every other default
// first. Clearing false promotes another split before this one gives up
// the flag; if no other split exists the call fails with
// ErrCannotUnsetOnlyDefault and leaves state unchanged.
func (d *DB) SetDefaultSplit(id int64, isDefault bool) (bool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("set default split: %w", err)
	}
	defer tx.Rollback()

	if isDefault {
		if _, err := tx.Exec("UPDATE splits SET is_default = 0 WHERE id != ?", id); err != nil {
			return false, fmt.Errorf("set default split: %w", err)
		}
	} else {
		var onlyDefault bool
		err := tx.QueryRow(
			"SELECT COUNT(*) = 1 FROM splits WHERE is_default = 1 AND id = ?", id,
		).Scan(&onlyDefault)
		if err != nil {
			return false, fmt.Errorf("set default split: %w", err)
		}
		if onlyDefault {
			var other int64
			err := tx.QueryRow(
				"SELECT id FROM splits WHERE id != ? ORDER BY order_index ASC, created_at DESC LIMIT 1", id,
			).Scan(&other)
			if errors.Is(err, sql.ErrNoRows) {
				return false, ErrCannotUnsetOnlyDefault
			}
			if err != nil {
				return false, fmt.Errorf("set default split: %w", err)
			}
			if _, err := tx.Exec("UPDATE splits SET is_default = 1 WHERE id = ?", other); err != nil {
				return false, fmt.Errorf("set default split: %w", err)
			}
		}
	}

	res, err := tx.Exec("UPDATE splits SET is_default = ? WHERE id = ?", boolToInt(isDefault), id)
	if err != nil {
		return false, fmt.Errorf("set default split: %w", err)
	}
	ch, err := changed(res)
	if err != nil {
		return false, err
	}
	if !ch {
		// Unknown id: roll back so other splits keep their flags
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("set default split: %w", err)
	}
	return true, nil
}

// ToggleFavoriteSplit flips the favorite flag on a split. An already
// favorite split is simply unfavorited (zero favorites is allowed);
// otherwise every favorite is cleared and this one set, so at most one
// split is favorite at any time. Returns false for an unknown id.
func (d *DB) ToggleFavoriteSplit(id int64) (bool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("toggle favorite split: %w", err)
	}
	defer tx.Rollback()

	var isFavorite bool
	err = tx.QueryRow("SELECT is_favorite FROM splits WHERE id = ?", id).Scan(&isFavorite)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("toggle favorite split: %w", err)
	}

	if isFavorite {
		if _, err := tx.Exec("UPDATE splits SET is_favorite = 0 WHERE id = ?", id); err != nil {
			return false, fmt.Errorf("toggle favorite split: %w", err)
		}
	} else {
		if _, err := tx.Exec("UPDATE splits SET is_favorite = 0"); err != nil {
			return false, fmt.Errorf("toggle favorite split: %w", err)
		}
		if _, err := tx.Exec("UPDATE splits SET is_favorite = 1 WHERE id = ?", id); err != nil {
			return false, fmt.Errorf("toggle favorite split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("toggle favorite split: %w", err)
	}
	return true, nil
}

// DeleteSplit removes a split; its days and their exercise links cascade.
// Deleting the current default promotes the first remaining split by
// display order so exactly one default survives while any splits exist.
// Blocking deletion of the default entirely is caller policy. Underlying
// exercise rows and workout history are left intact.
func (d *DB) DeleteSplit(id int64) (bool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("delete split: %w", err)
	}
	defer tx.Rollback()

	var wasDefault bool
	err = tx.QueryRow("SELECT is_default FROM splits WHERE id = ?", id).Scan(&wasDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete split: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM splits WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("delete split: %w", err)
	}

	if wasDefault {
		_, err := tx.Exec(`
			UPDATE splits SET is_default = 1
			WHERE id = (SELECT id FROM splits ORDER BY order_index ASC, created_at DESC LIMIT 1)
		`)
		if err != nil {
			return false, fmt.Errorf("delete split: promote default: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("delete split: %w", err)
	}
	return true, nil
}

// UpdateSplitOrder sets a split's order_index directly. Renumbering the
// rest of the sequence is the caller's responsibility.
func (d *DB) UpdateSplitOrder(id int64, order int) (bool, error) {
	res, err := d.db.Exec("UPDATE splits SET order_index = ? WHERE id = ?", order, id)
	if err != nil {
		return false, fmt.Errorf("update split order: %w", err)
	}
	return changed(res)
}

// GetSplits returns all splits ordered by order_index ascending, with
// created_at descending as tiebreak.
func (d *DB) GetSplits() ([]*models.Split, error) {
	rows, err := d.db.Query(`
		SELECT id, name, order_index, is_favorite, is_default, created_at
		FROM splits
		ORDER BY order_index ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("get splits: %w", err)
	}
	defer rows.Close()

	return scanSplits(rows)
}

// GetFavoriteSplit returns the favorite split, or nil when none is set.
func (d *DB) GetFavoriteSplit() (*models.Split, error) {
	return d.getSplitWhere("is_favorite = 1")
}

// GetDefaultSplit returns the default split, or nil when no splits exist.
func (d *DB) GetDefaultSplit() (*models.Split, error) {
	return d.getSplitWhere("is_default = 1")
}

func (d *DB) getSplitWhere(where string) (*models.Split, error) {
	row := d.db.QueryRow(`
		SELECT id, name, order_index, is_favorite, is_default, created_at
		FROM splits WHERE ` + where)
	s, err := scanSplit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get split: %w", err)
	}
	return s, nil
}

// AddSplitDay creates a weekday entry for a split. The intended invariant
// of one day per (split, weekday) is a caller pre-check, not a schema
// constraint.
func (d *DB) AddSplitDay(splitID int64, dayOfWeek int, name string) (int64, error) {
	res, err := d.db.Exec(
		"INSERT INTO split_days (split_id, day_of_week, name, created_at) VALUES (?, ?, ?, ?)",
		splitID, dayOfWeek, name, nowString(),
	)
	if err != nil {
		return 0, fmt.Errorf("add split day: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add split day: %w", err)
	}
	return id, nil
}

// UpdateSplitDay moves a day entry to a different weekday.
func (d *DB) UpdateSplitDay(id int64, dayOfWeek int) (bool, error) {
	res, err := d.db.Exec("UPDATE split_days SET day_of_week = ? WHERE id = ?", dayOfWeek, id)
	if err != nil {
		return false, fmt.Errorf("update split day: %w", err)
	}
	return changed(res)
}

// DeleteSplitDay removes a day entry; its exercise links cascade.
func (d *DB) DeleteSplitDay(id int64) (bool, error) {
	res, err := d.db.Exec("DELETE FROM split_days WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete split day: %w", err)
	}
	return changed(res)
}

// AddSplitDayExercise links a new exercise into a day at the given order.
// A brand-new exercise row is always created, even when the name already
// exists elsewhere: each day entry is independently editable. Both inserts
// happen in one transaction.
func (d *DB) AddSplitDayExercise(splitDayID int64, name string, order int) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("add split day exercise: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO exercises (name, created_at) VALUES (?, ?)",
		name, nowString(),
	)
	if err != nil {
		return 0, fmt.Errorf("add split day exercise: create exercise: %w", err)
	}
	exerciseID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add split day exercise: %w", err)
	}

	res, err = tx.Exec(
		"INSERT INTO split_day_exercises (split_day_id, exercise_id, order_index, created_at) VALUES (?, ?, ?, ?)",
		splitDayID, exerciseID, order, nowString(),
	)
	if err != nil {
		return 0, fmt.Errorf("add split day exercise: link exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add split day exercise: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("add split day exercise: %w", err)
	}
	return id, nil
}

// UpdateSplitDayExercise renames the linked exercise row in place and
// updates the link's order. Returns false when the link does not exist.
func (d *DB) UpdateSplitDayExercise(id int64, name string, order int) (bool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("update split day exercise: %w", err)
	}
	defer tx.Rollback()

	var exerciseID int64
	err = tx.QueryRow("SELECT exercise_id FROM split_day_exercises WHERE id = ?", id).Scan(&exerciseID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update split day exercise: %w", err)
	}

	if _, err := tx.Exec("UPDATE exercises SET name = ? WHERE id = ?", name, exerciseID); err != nil {
		return false, fmt.Errorf("update split day exercise: rename: %w", err)
	}

	res, err := tx.Exec("UPDATE split_day_exercises SET order_index = ? WHERE id = ?", order, id)
	if err != nil {
		return false, fmt.Errorf("update split day exercise: reorder: %w", err)
	}
	ch, err := changed(res)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("update split day exercise: %w", err)
	}
	return ch, nil
}

// DeleteSplitDayExercise removes only the link row. The underlying
// exercise row is left orphaned; rows created through
// AddSplitDayExercise are not meant to be reused.
func (d *DB) DeleteSplitDayExercise(id int64) (bool, error) {
	res, err := d.db.Exec("DELETE FROM split_day_exercises WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete split day exercise: %w", err)
	}
	return changed(res)
}

// GetSplitWithDaysAndExercises returns a split with its days (ordered by
// weekday) and each day's exercises (ordered by order_index). Fails with
// ErrNotFound for an unknown id; a split with no days comes back with an
// empty Days slice.
func (d *DB) GetSplitWithDaysAndExercises(splitID int64) (*models.Split, error) {
	row := d.db.QueryRow(`
		SELECT id, name, order_index, is_favorite, is_default, created_at
		FROM splits WHERE id = ?
	`, splitID)
	split, err := scanSplit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("split %d: %w", splitID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get split: %w", err)
	}
	split.Days = []models.SplitDay{}

	rows, err := d.db.Query(`
		SELECT
			sd.id, sd.day_of_week, sd.name, sd.created_at,
			sde.id, sde.exercise_id, e.name, sde.order_index, sde.created_at
		FROM split_days sd
		LEFT JOIN split_day_exercises sde ON sde.split_day_id = sd.id
		LEFT JOIN exercises e ON e.id = sde.exercise_id
		WHERE sd.split_id = ?
		ORDER BY sd.day_of_week ASC, sde.order_index ASC
	`, splitID)
	if err != nil {
		return nil, fmt.Errorf("get split days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			day          models.SplitDay
			dayCreated   string
			linkID       sql.NullInt64
			exerciseID   sql.NullInt64
			exerciseName sql.NullString
			order        sql.NullInt64
			linkCreated  sql.NullString
		)
		err := rows.Scan(
			&day.ID, &day.DayOfWeek, &day.Name, &dayCreated,
			&linkID, &exerciseID, &exerciseName, &order, &linkCreated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan split day: %w", err)
		}

		if len(split.Days) == 0 || split.Days[len(split.Days)-1].ID != day.ID {
			day.SplitID = splitID
			day.CreatedAt = parseTime(dayCreated)
			day.Exercises = []models.SplitDayExercise{}
			split.Days = append(split.Days, day)
		}

		if linkID.Valid && exerciseName.Valid {
			cur := &split.Days[len(split.Days)-1]
			sde := models.SplitDayExercise{
				ID:         linkID.Int64,
				SplitDayID: cur.ID,
				ExerciseID: exerciseID.Int64,
				Name:       exerciseName.String,
				OrderIndex: int(order.Int64),
			}
			if linkCreated.Valid {
				sde.CreatedAt = parseTime(linkCreated.String)
			}
			cur.Exercises = append(cur.Exercises, sde)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan split days: %w", err)
	}

	return split, nil
}

// scanSplit scans a single row into a Split struct.
func scanSplit(row *sql.Row) (*models.Split, error) {
	var s models.Split
	var createdAt string
	err := row.Scan(&s.ID, &s.Name, &s.OrderIndex, &s.IsFavorite, &s.IsDefault, &createdAt)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = parseTime(createdAt)
	return &s, nil
}

// scanSplits scans multiple rows into a slice of Splits.
func scanSplits(rows *sql.Rows) ([]*models.Split, error) {
	var splits []*models.Split
	for rows.Next() {
		var s models.Split
		var createdAt string
		err := rows.Scan(&s.ID, &s.Name, &s.OrderIndex, &s.IsFavorite, &s.IsDefault, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan split: %w", err)
		}
		s.CreatedAt = parseTime(createdAt)
		splits = append(splits, &s)
	}
	return splits, rows.Err()
}

// changed reports whether an update or delete touched any rows.
func changed(res sql.Result) (bool, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
