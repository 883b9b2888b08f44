// ABOUTME: Additive schema migrations driven by live column inspection.
// ABOUTME: Also implements the destructive full reset (drop and recreate).
package storage

import (
	"database/sql"
	"fmt"
)

// columnMigration adds one historically-introduced column when absent.
// Backfill runs only when the column was actually added, against rows
// that predate it.
type columnMigration struct {
	table    string
	column   string
	ddl      string
	backfill string
}

// columnMigrations records every column added after the first shipped
// schema. Databases created by old app versions have no version
// bookkeeping, so applicability is decided by inspecting the live column
// set rather than a version number.
var columnMigrations = []columnMigration{
	{
		table:  "splits",
		column: "order_index",
		ddl:    "ALTER TABLE splits ADD COLUMN order_index INTEGER NOT NULL DEFAULT 0",
		// Rank legacy rows by creation time so existing ordering is stable
		backfill: `
			UPDATE splits SET order_index = (
				SELECT COUNT(*) FROM splits s2
				WHERE s2.created_at < splits.created_at
				   OR (s2.created_at = splits.created_at AND s2.id < splits.id)
			) + 1`,
	},
	{
		table:  "splits",
		column: "is_favorite",
		ddl:    "ALTER TABLE splits ADD COLUMN is_favorite INTEGER NOT NULL DEFAULT 0",
	},
	{
		table:  "splits",
		column: "is_default",
		ddl:    "ALTER TABLE splits ADD COLUMN is_default INTEGER NOT NULL DEFAULT 0",
	},
	{
		table:  "exercises",
		column: "created_at",
		ddl:    "ALTER TABLE exercises ADD COLUMN created_at TEXT NOT NULL DEFAULT ''",
		backfill: `
			UPDATE exercises SET created_at = datetime('now') WHERE created_at = ''`,
	},
	{
		table:  "exercises",
		column: "collection_id",
		ddl:    "ALTER TABLE exercises ADD COLUMN collection_id INTEGER REFERENCES collections(id) ON DELETE SET NULL",
	},
	{
		table:  "workout_history",
		column: "use_metric",
		ddl:    "ALTER TABLE workout_history ADD COLUMN use_metric INTEGER NOT NULL DEFAULT 1",
	},
}

// migrate applies all pending column migrations and repairs the
// single-default invariant, all inside one transaction. Safe to run on a
// database that already has the target schema.
func (d *DB) migrate() error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, m := range columnMigrations {
		cols, err := tableColumns(tx, m.table)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", m.table, err)
		}
		if cols[m.column] {
			continue
		}
		if _, err := tx.Exec(m.ddl); err != nil {
			return fmt.Errorf("add %s.%s: %w", m.table, m.column, err)
		}
		if m.backfill != "" {
			if _, err := tx.Exec(m.backfill); err != nil {
				return fmt.Errorf("backfill %s.%s: %w", m.table, m.column, err)
			}
		}
	}

	if err := ensureDefaultSplit(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

// ensureDefaultSplit promotes the earliest-created split to default when
// splits exist but none carries the flag. Covers databases that predate
// the is_default column as well as any state left behind by a crash.
func ensureDefaultSplit(tx *sql.Tx) error {
	var defaults int
	if err := tx.QueryRow("SELECT COUNT(*) FROM splits WHERE is_default = 1").Scan(&defaults); err != nil {
		return fmt.Errorf("count default splits: %w", err)
	}
	if defaults > 0 {
		return nil
	}

	res, err := tx.Exec(`
		UPDATE splits SET is_default = 1
		WHERE id = (SELECT id FROM splits ORDER BY created_at ASC, id ASC LIMIT 1)
	`)
	if err != nil {
		return fmt.Errorf("designate default split: %w", err)
	}
	_, _ = res.RowsAffected() // zero rows when no splits exist, which is fine
	return nil
}

// tableColumns returns the live column set of a table via PRAGMA
// table_info. An empty map means the table does not exist yet.
func tableColumns(tx *sql.Tx, table string) (map[string]bool, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// Reset drops every managed table and re-initializes an empty schema.
// Destructive and irreversible; exposed for the user-triggered "clear all
// data" action. Foreign keys are disabled around the drops to avoid
// ordering errors. A failure partway through leaves the database
// unusable and is surfaced as fatal; the caller should treat it as a
// corrupted install.
func (d *DB) Reset() error {
	if _, err := d.db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("disable foreign keys: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range managedTables {
		if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}

	if _, err := d.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("re-enable foreign keys: %w", err)
	}

	if err := d.initSchema(); err != nil {
		return fmt.Errorf("reinitialize schema: %w", err)
	}
	if err := d.migrate(); err != nil {
		return err
	}
	return d.createIndexes()
}
