// ABOUTME: Timestamp helpers for rows written across app versions.
// ABOUTME: New rows use RFC3339; legacy rows carry sqlite datetime('now') text.
package storage

import "time"

const sqliteTimeLayout = "2006-01-02 15:04:05"

// nowString returns the canonical stored form of the current time.
func nowString() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTime reads a stored timestamp, tolerating the legacy layout.
func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, _ := time.Parse(sqliteTimeLayout, s)
	return t
}
