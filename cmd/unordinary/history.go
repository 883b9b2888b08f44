// ABOUTME: CLI commands for browsing logged workout history.
// ABOUTME: Weights convert to the current unit preference at display time.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/unordinary/unordinary/internal/models"
	"github.com/unordinary/unordinary/internal/settings"
)

var historyCmd = &cobra.Command{
	Use:     "history [date]",
	Aliases: []string{"h"},
	Short:   "Show logged workouts",
	Long: `Show logged workouts, newest first, or just the entries for one date
(YYYY-MM-DD).

Weights were stored in the unit system active when they were logged;
display converts them to your current preference.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := repo.ListWorkoutHistory()
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		if len(args) == 1 {
			date := args[0]
			if _, err := models.WeekdayIndex(date); err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}
			filtered := entries[:0]
			for _, e := range entries {
				if e.Date == date {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
		}

		if len(entries) == 0 {
			fmt.Println("No workouts logged.")
			return nil
		}

		store, err := openSettings()
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		defer store.Close()
		useMetric, err := store.UseMetric()
		if err != nil {
			return fmt.Errorf("failed to read unit preference: %w", err)
		}

		for i, e := range entries {
			if i > 0 {
				fmt.Println()
			}
			printHistoryEntry(e, useMetric)
		}
		return nil
	},
}

func printHistoryEntry(e *models.WorkoutHistory, useMetric bool) {
	faint := color.New(color.Faint)
	fmt.Printf("%s %s %s\n",
		color.New(color.Bold).Sprint(e.Date),
		models.DayName(e.DayOfWeek),
		faint.Sprintf("(split #%d)", e.SplitID))

	for _, ex := range e.Exercises {
		fmt.Printf("  %s\n", ex.Name)
		for i, set := range ex.Sets {
			fmt.Printf("    %d. %s × %s\n", i+1, displayWeight(set, e.UseMetric, useMetric), set.Reps)
		}
	}
}

// displayWeight converts a stored set weight from its logged unit system
// to the current one. Non-numeric weights pass through untouched.
func displayWeight(set models.SetEntry, loggedMetric, useMetric bool) string {
	w, err := strconv.ParseFloat(set.Weight, 64)
	if err != nil {
		return set.Weight
	}
	return settings.FormatWeight(settings.ConvertWeight(w, loggedMetric, useMetric), useMetric)
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
