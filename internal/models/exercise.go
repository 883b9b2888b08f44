// ABOUTME: Exercise, Collection, and SplitCollection models.
// ABOUTME: Collections group exercises; split collections group splits.
package models

import "time"

// Exercise is a named movement, optionally linked to one collection.
// Deleting the collection clears the link but keeps the exercise.
type Exercise struct {
	ID           int64     `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	CollectionID *int64    `json:"collection_id,omitempty" yaml:"collection_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// Collection groups exercises for organization. Deleting one unlinks its
// members, it never deletes them.
type Collection struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// SplitCollection is a folder for splits, with a lifecycle independent
// from Collection.
type SplitCollection struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
