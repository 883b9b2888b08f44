// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Canonical table shapes for splits, days, exercises, and history.
package storage

// initSchema creates the canonical schema if not present. Databases
// created by earlier app versions get their missing columns added by
// migrate afterwards.
//
// workout_history.split_id deliberately carries no foreign key: history
// rows are self-contained snapshots that outlive their split.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS split_collections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS splits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		is_favorite INTEGER NOT NULL DEFAULT 0,
		is_default INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS split_days (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		split_id INTEGER NOT NULL,
		day_of_week INTEGER NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		FOREIGN KEY (split_id) REFERENCES splits(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		collection_id INTEGER,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		FOREIGN KEY (collection_id) REFERENCES collections(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS split_day_exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		split_day_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		FOREIGN KEY (split_day_id) REFERENCES split_days(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS workout_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		split_id INTEGER NOT NULL,
		day_of_week INTEGER NOT NULL,
		exercises TEXT NOT NULL,
		use_metric INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`

	_, err := d.db.Exec(schema)
	return err
}

// createIndexes runs after migrate: several indexed columns (order_index,
// collection_id) do not exist yet on a legacy database when initSchema
// runs, so index DDL cannot live there.
func (d *DB) createIndexes() error {
	indexes := `
	CREATE INDEX IF NOT EXISTS idx_splits_order ON splits(order_index);
	CREATE INDEX IF NOT EXISTS idx_split_days_split ON split_days(split_id);
	CREATE INDEX IF NOT EXISTS idx_split_day_exercises_day ON split_day_exercises(split_day_id);
	CREATE INDEX IF NOT EXISTS idx_exercises_collection ON exercises(collection_id);
	CREATE INDEX IF NOT EXISTS idx_workout_history_key ON workout_history(date, split_id, day_of_week);
	`

	_, err := d.db.Exec(indexes)
	return err
}

// managedTables lists every table owned by the schema manager, children
// before parents so drops stay valid even with foreign keys enforced.
var managedTables = []string{
	"workout_history",
	"split_day_exercises",
	"split_days",
	"exercises",
	"splits",
	"split_collections",
	"collections",
}
