// ABOUTME: Exercise, Collection, and SplitCollection CRUD operations.
// ABOUTME: Collection deletion unlinks exercises (SET NULL), never deletes them.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/unordinary/unordinary/internal/models"
)

// AddExercise creates a standalone exercise and returns its id.
func (d *DB) AddExercise(name string) (int64, error) {
	res, err := d.db.Exec(
		"INSERT INTO exercises (name, created_at) VALUES (?, ?)",
		name, nowString(),
	)
	if err != nil {
		return 0, fmt.Errorf("add exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add exercise: %w", err)
	}
	return id, nil
}

// GetExercises returns all exercise rows.
func (d *DB) GetExercises() ([]*models.Exercise, error) {
	rows, err := d.db.Query("SELECT id, name, collection_id, created_at FROM exercises")
	if err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		var e models.Exercise
		var collectionID sql.NullInt64
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Name, &collectionID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if collectionID.Valid {
			e.CollectionID = &collectionID.Int64
		}
		e.CreatedAt = parseTime(createdAt)
		exercises = append(exercises, &e)
	}
	return exercises, rows.Err()
}

// UpdateExercise renames an exercise.
func (d *DB) UpdateExercise(id int64, name string) (bool, error) {
	res, err := d.db.Exec("UPDATE exercises SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return false, fmt.Errorf("update exercise: %w", err)
	}
	return changed(res)
}

// SetExerciseCollection links an exercise to a collection, or unlinks it
// when collectionID is nil.
func (d *DB) SetExerciseCollection(id int64, collectionID *int64) (bool, error) {
	res, err := d.db.Exec("UPDATE exercises SET collection_id = ? WHERE id = ?", collectionID, id)
	if err != nil {
		return false, fmt.Errorf("set exercise collection: %w", err)
	}
	return changed(res)
}

// DeleteExercise removes an exercise row; any split-day links to it
// cascade away with it.
func (d *DB) DeleteExercise(id int64) (bool, error) {
	res, err := d.db.Exec("DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete exercise: %w", err)
	}
	return changed(res)
}

// AddCollection creates an exercise collection and returns its id.
func (d *DB) AddCollection(name string) (int64, error) {
	return d.addNamed("collections", "add collection", name)
}

// GetCollections returns all exercise collections.
func (d *DB) GetCollections() ([]*models.Collection, error) {
	rows, err := d.db.Query("SELECT id, name, created_at FROM collections")
	if err != nil {
		return nil, fmt.Errorf("get collections: %w", err)
	}
	defer rows.Close()

	var collections []*models.Collection
	for rows.Next() {
		var c models.Collection
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		collections = append(collections, &c)
	}
	return collections, rows.Err()
}

// UpdateCollection renames an exercise collection.
func (d *DB) UpdateCollection(id int64, name string) (bool, error) {
	res, err := d.db.Exec("UPDATE collections SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return false, fmt.Errorf("update collection: %w", err)
	}
	return changed(res)
}

// DeleteCollection removes a collection. Member exercises survive with
// collection_id cleared (ON DELETE SET NULL).
func (d *DB) DeleteCollection(id int64) (bool, error) {
	res, err := d.db.Exec("DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete collection: %w", err)
	}
	return changed(res)
}

// AddSplitCollection creates a split folder and returns its id.
func (d *DB) AddSplitCollection(name string) (int64, error) {
	return d.addNamed("split_collections", "add split collection", name)
}

// GetSplitCollections returns all split folders.
func (d *DB) GetSplitCollections() ([]*models.SplitCollection, error) {
	rows, err := d.db.Query("SELECT id, name, created_at FROM split_collections")
	if err != nil {
		return nil, fmt.Errorf("get split collections: %w", err)
	}
	defer rows.Close()

	var collections []*models.SplitCollection
	for rows.Next() {
		var c models.SplitCollection
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan split collection: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		collections = append(collections, &c)
	}
	return collections, rows.Err()
}

// UpdateSplitCollection renames a split folder.
func (d *DB) UpdateSplitCollection(id int64, name string) (bool, error) {
	res, err := d.db.Exec("UPDATE split_collections SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return false, fmt.Errorf("update split collection: %w", err)
	}
	return changed(res)
}

// DeleteSplitCollection removes a split folder.
func (d *DB) DeleteSplitCollection(id int64) (bool, error) {
	res, err := d.db.Exec("DELETE FROM split_collections WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete split collection: %w", err)
	}
	return changed(res)
}

func (d *DB) addNamed(table, op, name string) (int64, error) {
	res, err := d.db.Exec(
		fmt.Sprintf("INSERT INTO %s (name, created_at) VALUES (?, ?)", table),
		name, nowString(),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}
