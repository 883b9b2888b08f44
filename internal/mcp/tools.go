// ABOUTME: MCP tool implementations for the split tracker.
// ABOUTME: Provides split management, workout logging, and history lookup.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unordinary/unordinary/internal/models"
	"github.com/unordinary/unordinary/internal/settings"
	"github.com/unordinary/unordinary/internal/storage"
)

func (s *Server) registerTools() {
	// list_splits
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_splits",
		Description: "List all workout splits in display order",
	}, s.handleListSplits)

	// get_split
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_split",
		Description: "Get a split with its days and exercises",
	}, s.handleGetSplit)

	// add_split
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_split",
		Description: "Create a new workout split",
	}, s.handleAddSplit)

	// set_default_split
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_default_split",
		Description: "Make a split the default used for today's workout",
	}, s.handleSetDefaultSplit)

	// toggle_favorite_split
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_favorite_split",
		Description: "Toggle the favorite flag on a split",
	}, s.handleToggleFavoriteSplit)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a completed workout for a calendar date",
	}, s.handleLogWorkout)

	// get_workout_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout_history",
		Description: "Look up the logged workout for a date, if any",
	}, s.handleGetWorkoutHistory)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List all exercise rows",
	}, s.handleListExercises)
}

// Tool input/output types

type listSplitsInput struct{}

type splitSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
	IsFavorite bool   `json:"is_favorite"`
	IsDefault  bool   `json:"is_default"`
}

type getSplitInput struct {
	SplitID int64 `json:"split_id" jsonschema:"ID of the split"`
}

type addSplitInput struct {
	Name string `json:"name" jsonschema:"Name for the new split"`
}

type splitIDInput struct {
	SplitID int64 `json:"split_id" jsonschema:"ID of the split"`
}

type setEntryInput struct {
	Weight string `json:"weight" jsonschema:"Weight lifted (as entered)"`
	Reps   string `json:"reps" jsonschema:"Repetitions performed"`
}

type exerciseLogInput struct {
	Name string          `json:"name" jsonschema:"Exercise name"`
	Sets []setEntryInput `json:"sets" jsonschema:"Performed sets"`
}

type logWorkoutInput struct {
	SplitID   int64              `json:"split_id,omitempty" jsonschema:"Split the workout belongs to; defaults to the default split"`
	Date      string             `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD); defaults to today"`
	Exercises []exerciseLogInput `json:"exercises" jsonschema:"Exercises performed with their sets"`
	UseMetric *bool              `json:"use_metric,omitempty" jsonschema:"Whether weights are in kilograms (default true)"`
}

type historyInput struct {
	Date    string `json:"date" jsonschema:"Calendar date (YYYY-MM-DD)"`
	SplitID int64  `json:"split_id,omitempty" jsonschema:"Split to look up; defaults to the default split"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleListSplits(ctx context.Context, req *mcp.CallToolRequest, input listSplitsInput) (*mcp.CallToolResult, any, error) {
	splits, err := s.repo.GetSplits()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list splits: %w", err)
	}

	if len(splits) == 0 {
		return nil, map[string]any{"message": "No splits found."}, nil
	}

	out := make([]splitSummary, 0, len(splits))
	for _, sp := range splits {
		out = append(out, splitSummary{
			ID:         sp.ID,
			Name:       sp.Name,
			OrderIndex: sp.OrderIndex,
			IsFavorite: sp.IsFavorite,
			IsDefault:  sp.IsDefault,
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetSplit(ctx context.Context, req *mcp.CallToolRequest, input getSplitInput) (*mcp.CallToolResult, any, error) {
	split, err := s.repo.GetSplitWithDaysAndExercises(input.SplitID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("split %d does not exist", input.SplitID)
		}
		return nil, nil, fmt.Errorf("failed to get split: %w", err)
	}
	return nil, split, nil
}

func (s *Server) handleAddSplit(ctx context.Context, req *mcp.CallToolRequest, input addSplitInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := s.repo.AddSplit(input.Name)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add split: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added split %q (ID: %d)", input.Name, id),
	}, nil
}

func (s *Server) handleSetDefaultSplit(ctx context.Context, req *mcp.CallToolRequest, input splitIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	ok, err := s.repo.SetDefaultSplit(input.SplitID, true)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set default split: %w", err)
	}
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("split %d does not exist", input.SplitID)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Split %d is now the default", input.SplitID),
	}, nil
}

func (s *Server) handleToggleFavoriteSplit(ctx context.Context, req *mcp.CallToolRequest, input splitIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	ok, err := s.repo.ToggleFavoriteSplit(input.SplitID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("split %d does not exist", input.SplitID)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Toggled favorite on split %d", input.SplitID),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	splitID := input.SplitID
	if splitID == 0 {
		def, err := s.repo.GetDefaultSplit()
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to resolve default split: %w", err)
		}
		if def == nil {
			return nil, simpleOutput{}, fmt.Errorf("no default split; create a split first")
		}
		splitID = def.ID
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	}

	useMetric := true
	if input.UseMetric != nil {
		useMetric = *input.UseMetric
	}

	exercises := make([]models.ExerciseLog, 0, len(input.Exercises))
	for _, e := range input.Exercises {
		log := models.ExerciseLog{Name: e.Name}
		for _, set := range e.Sets {
			log.Sets = append(log.Sets, models.SetEntry{
				Weight: set.Weight,
				Reps:   set.Reps,
				Unit:   settings.UnitLabel(useMetric),
			})
		}
		exercises = append(exercises, log)
	}

	if err := s.repo.SaveWorkoutHistory(splitID, date, exercises, useMetric); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save workout: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged workout for %s (split %d, %d exercises)", date, splitID, len(exercises)),
	}, nil
}

func (s *Server) handleGetWorkoutHistory(ctx context.Context, req *mcp.CallToolRequest, input historyInput) (*mcp.CallToolResult, any, error) {
	splitID := input.SplitID
	if splitID == 0 {
		def, err := s.repo.GetDefaultSplit()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve default split: %w", err)
		}
		if def == nil {
			return nil, map[string]any{"message": "No splits exist."}, nil
		}
		splitID = def.ID
	}

	dayOfWeek, err := models.WeekdayIndex(input.Date)
	if err != nil {
		return nil, nil, err
	}

	h, err := s.repo.GetWorkoutHistory(input.Date, splitID, dayOfWeek)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workout history: %w", err)
	}
	if h == nil {
		return nil, map[string]any{"message": fmt.Sprintf("No workout logged on %s.", input.Date)}, nil
	}
	return nil, h, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listSplitsInput) (*mcp.CallToolResult, any, error) {
	exercises, err := s.repo.GetExercises()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, map[string]any{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}
