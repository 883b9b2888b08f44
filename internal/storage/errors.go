// ABOUTME: Sentinel errors for the storage layer.
// ABOUTME: Callers match with errors.Is; wrapping adds operation context.
package storage

import "errors"

var (
	// ErrNotFound is returned by lookups that expect the referenced row
	// to exist. Point lookups where absence is a normal outcome (history
	// by date) return nil instead.
	ErrNotFound = errors.New("not found")

	// ErrCannotUnsetOnlyDefault rejects clearing the default flag when no
	// other split exists to take it over. Exactly one split must remain
	// default whenever any splits exist.
	ErrCannotUnsetOnlyDefault = errors.New("cannot unset the only default split")
)
