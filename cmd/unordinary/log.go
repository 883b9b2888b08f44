// ABOUTME: CLI command for logging a workout against a split.
// ABOUTME: Parses "Name=WxR,WxR" set notation and snapshots the log to history.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/unordinary/unordinary/internal/models"
	"github.com/unordinary/unordinary/internal/settings"
)

var logDate string

var logCmd = &cobra.Command{
	Use:     "log [split-id] <exercise=sets>...",
	Aliases: []string{"l"},
	Short:   "Log a workout",
	Long: `Log a workout for a split on a date (today by default).

Each argument is one exercise with its sets in weight-by-reps notation:

  $ unordinary log 1 "Bench Press=100x5,100x5,95x8" "Squat=140x5,140x5"

When the split id is omitted the default split is used. Logging the same
split and date again replaces the earlier entry.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var splitID int64
		if id, err := strconv.ParseInt(args[0], 10, 64); err == nil && !strings.Contains(args[0], "=") {
			splitID = id
			args = args[1:]
		} else {
			def, err := repo.GetDefaultSplit()
			if err != nil {
				return fmt.Errorf("failed to get default split: %w", err)
			}
			if def == nil {
				return fmt.Errorf("no default split; pass a split id or create a split first")
			}
			splitID = def.ID
		}

		if len(args) == 0 {
			return fmt.Errorf("nothing to log; pass at least one 'exercise=sets' argument")
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
		unit := settings.UnitLabel(useMetric)

		exercises := make([]models.ExerciseLog, 0, len(args))
		for _, arg := range args {
			log, err := parseExerciseLog(arg, unit)
			if err != nil {
				return err
			}
			exercises = append(exercises, log)
		}

		date := logDate
		if date == "" {
			date = models.Today()
		}
		if _, err := models.WeekdayIndex(date); err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
		}

		if err := repo.SaveWorkoutHistory(splitID, date, exercises, useMetric); err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}

		sets := 0
		for _, ex := range exercises {
			sets += len(ex.Sets)
		}
		color.Green("✓ Logged %d exercise(s), %d set(s) for %s", len(exercises), sets, date)
		return nil
	},
}

// parseExerciseLog parses "Bench Press=100x5,95x8" into an exercise log.
// Weight and reps stay strings; clients format them as entered.
func parseExerciseLog(arg, unit string) (models.ExerciseLog, error) {
	name, setsPart, found := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" || strings.TrimSpace(setsPart) == "" {
		return models.ExerciseLog{}, fmt.Errorf("invalid exercise %q (want 'Name=WxR,WxR')", arg)
	}

	var sets []models.SetEntry
	for _, raw := range strings.Split(setsPart, ",") {
		weight, reps, found := strings.Cut(strings.TrimSpace(raw), "x")
		weight = strings.TrimSpace(weight)
		reps = strings.TrimSpace(reps)
		if !found || weight == "" || reps == "" {
			return models.ExerciseLog{}, fmt.Errorf("invalid set %q in %q (want 'WEIGHTxREPS')", raw, name)
		}
		if _, err := strconv.ParseFloat(weight, 64); err != nil {
			return models.ExerciseLog{}, fmt.Errorf("invalid weight %q in %q", weight, name)
		}
		if _, err := strconv.Atoi(reps); err != nil {
			return models.ExerciseLog{}, fmt.Errorf("invalid reps %q in %q", reps, name)
		}
		sets = append(sets, models.SetEntry{Weight: weight, Reps: reps, Unit: unit})
	}

	return models.ExerciseLog{Name: name, Sets: sets}, nil
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "date to log for (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(logCmd)
}
