// ABOUTME: MCP resource implementations for the split tracker.
// ABOUTME: Provides unordinary://schedule and unordinary://splits resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unordinary/unordinary/internal/models"
)

func (s *Server) registerResources() {
	// unordinary://schedule - weekly schedule of the default split
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "unordinary://schedule",
		Name:        "Weekly Schedule",
		Description: "The default split's exercises by weekday",
		MIMEType:    "application/json",
	}, s.handleScheduleResource)

	// unordinary://splits - all splits with flags
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "unordinary://splits",
		Name:        "Workout Splits",
		Description: "All workout splits in display order",
		MIMEType:    "application/json",
	}, s.handleSplitsResource)
}

// Resource handlers

func (s *Server) handleScheduleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	def, err := s.repo.GetDefaultSplit()
	if err != nil {
		return nil, fmt.Errorf("failed to get default split: %w", err)
	}

	result := map[string]any{}
	if def == nil {
		result["message"] = "No splits exist yet."
	} else {
		full, err := s.repo.GetSplitWithDaysAndExercises(def.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load default split: %w", err)
		}

		schedule := map[string]any{}
		for _, day := range full.Days {
			names := make([]string, 0, len(day.Exercises))
			for _, ex := range day.Exercises {
				names = append(names, ex.Name)
			}
			schedule[models.DayName(day.DayOfWeek)] = map[string]any{
				"name":      day.Name,
				"exercises": names,
			}
		}
		result["split"] = full.Name
		result["schedule"] = schedule
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "unordinary://schedule",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSplitsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	splits, err := s.repo.GetSplits()
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}

	data, err := json.MarshalIndent(splits, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "unordinary://splits",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
