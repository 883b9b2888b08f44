// ABOUTME: Export and import functionality for split tracker data.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/unordinary/unordinary/internal/models"
)

// ExportData represents the full export format for split tracker data.
type ExportData struct {
	Version          string                    `json:"version" yaml:"version"`
	ExportedAt       time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool             string                    `json:"tool" yaml:"tool"`
	InstallID        string                    `json:"install_id,omitempty" yaml:"install_id,omitempty"`
	Splits           []*models.Split           `json:"splits" yaml:"splits"`
	Exercises        []*models.Exercise        `json:"exercises" yaml:"exercises"`
	Collections      []*models.Collection      `json:"collections" yaml:"collections"`
	SplitCollections []*models.SplitCollection `json:"split_collections" yaml:"split_collections"`
	History          []*models.WorkoutHistory  `json:"history" yaml:"history"`
}

// GetAllData retrieves all data for export. Splits come back fully
// populated with days and exercises.
func (d *DB) GetAllData() (*ExportData, error) {
	splits, err := d.GetSplits()
	if err != nil {
		return nil, fmt.Errorf("export splits: %w", err)
	}
	for i, s := range splits {
		full, err := d.GetSplitWithDaysAndExercises(s.ID)
		if err != nil {
			return nil, fmt.Errorf("export split %d: %w", s.ID, err)
		}
		splits[i] = full
	}

	exercises, err := d.GetExercises()
	if err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}
	collections, err := d.GetCollections()
	if err != nil {
		return nil, fmt.Errorf("export collections: %w", err)
	}
	splitCollections, err := d.GetSplitCollections()
	if err != nil {
		return nil, fmt.Errorf("export split collections: %w", err)
	}
	history, err := d.ListWorkoutHistory()
	if err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}

	return &ExportData{
		Version:          "1.0",
		ExportedAt:       time.Now(),
		Tool:             "unordinary",
		Splits:           splits,
		Exercises:        exercises,
		Collections:      collections,
		SplitCollections: splitCollections,
		History:          history,
	}, nil
}

// ImportData loads an export into the database. Intended for an empty
// database; imported rows get fresh ids, and split flags and ordering are
// preserved as exported.
func (d *DB) ImportData(data *ExportData) error {
	collectionIDs := make(map[int64]int64)
	for _, c := range data.Collections {
		id, err := d.AddCollection(c.Name)
		if err != nil {
			return fmt.Errorf("import collection %q: %w", c.Name, err)
		}
		collectionIDs[c.ID] = id
	}
	for _, sc := range data.SplitCollections {
		if _, err := d.AddSplitCollection(sc.Name); err != nil {
			return fmt.Errorf("import split collection %q: %w", sc.Name, err)
		}
	}

	for _, e := range data.Exercises {
		id, err := d.AddExercise(e.Name)
		if err != nil {
			return fmt.Errorf("import exercise %q: %w", e.Name, err)
		}
		if e.CollectionID != nil {
			if mapped, ok := collectionIDs[*e.CollectionID]; ok {
				if _, err := d.SetExerciseCollection(id, &mapped); err != nil {
					return fmt.Errorf("import exercise %q: %w", e.Name, err)
				}
			}
		}
	}

	splitIDs := make(map[int64]int64)
	for _, s := range data.Splits {
		id, err := d.AddSplit(s.Name)
		if err != nil {
			return fmt.Errorf("import split %q: %w", s.Name, err)
		}
		splitIDs[s.ID] = id
		if _, err := d.UpdateSplitOrder(id, s.OrderIndex); err != nil {
			return fmt.Errorf("import split %q: %w", s.Name, err)
		}
		if s.IsFavorite {
			if _, err := d.ToggleFavoriteSplit(id); err != nil {
				return fmt.Errorf("import split %q: %w", s.Name, err)
			}
		}
		if s.IsDefault {
			if _, err := d.SetDefaultSplit(id, true); err != nil {
				return fmt.Errorf("import split %q: %w", s.Name, err)
			}
		}

		for _, day := range s.Days {
			dayID, err := d.AddSplitDay(id, day.DayOfWeek, day.Name)
			if err != nil {
				return fmt.Errorf("import split day %q: %w", day.Name, err)
			}
			for _, ex := range day.Exercises {
				if _, err := d.AddSplitDayExercise(dayID, ex.Name, ex.OrderIndex); err != nil {
					return fmt.Errorf("import day exercise %q: %w", ex.Name, err)
				}
			}
		}
	}

	for _, h := range data.History {
		splitID := h.SplitID
		if mapped, ok := splitIDs[h.SplitID]; ok {
			splitID = mapped
		}
		if err := d.SaveWorkoutHistory(splitID, h.Date, h.Exercises, h.UseMetric); err != nil {
			return fmt.Errorf("import history %s: %w", h.Date, err)
		}
	}

	return nil
}

// ExportJSON exports all data as indented JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}
