// ABOUTME: Repository interface for split tracker data storage.
// ABOUTME: Defines the contract consumed by the CLI and the MCP server.
package storage

import "github.com/unordinary/unordinary/internal/models"

// Repository defines the storage interface for split tracker data.
// *DB implements it; the interface exists so consumers can be tested
// against fakes.
type Repository interface {
	// Split operations
	AddSplit(name string) (int64, error)
	UpdateSplit(id int64, name string, isFavorite *bool) (bool, error)
	SetDefaultSplit(id int64, isDefault bool) (bool, error)
	ToggleFavoriteSplit(id int64) (bool, error)
	DeleteSplit(id int64) (bool, error)
	UpdateSplitOrder(id int64, order int) (bool, error)
	GetSplits() ([]*models.Split, error)
	GetFavoriteSplit() (*models.Split, error)
	GetDefaultSplit() (*models.Split, error)
	GetSplitWithDaysAndExercises(splitID int64) (*models.Split, error)

	// Split day operations
	AddSplitDay(splitID int64, dayOfWeek int, name string) (int64, error)
	UpdateSplitDay(id int64, dayOfWeek int) (bool, error)
	DeleteSplitDay(id int64) (bool, error)
	AddSplitDayExercise(splitDayID int64, name string, order int) (int64, error)
	UpdateSplitDayExercise(id int64, name string, order int) (bool, error)
	DeleteSplitDayExercise(id int64) (bool, error)

	// Exercise and collection operations
	AddExercise(name string) (int64, error)
	GetExercises() ([]*models.Exercise, error)
	UpdateExercise(id int64, name string) (bool, error)
	SetExerciseCollection(id int64, collectionID *int64) (bool, error)
	DeleteExercise(id int64) (bool, error)
	AddCollection(name string) (int64, error)
	GetCollections() ([]*models.Collection, error)
	UpdateCollection(id int64, name string) (bool, error)
	DeleteCollection(id int64) (bool, error)
	AddSplitCollection(name string) (int64, error)
	GetSplitCollections() ([]*models.SplitCollection, error)
	UpdateSplitCollection(id int64, name string) (bool, error)
	DeleteSplitCollection(id int64) (bool, error)

	// Workout history operations
	SaveWorkoutHistory(splitID int64, date string, exercises []models.ExerciseLog, useMetric bool) error
	GetWorkoutHistory(date string, splitID int64, dayOfWeek int) (*models.WorkoutHistory, error)
	ListWorkoutHistory() ([]*models.WorkoutHistory, error)
	ClearWorkoutHistory() error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Reset() error
	Close() error
}

var _ Repository = (*DB)(nil)
