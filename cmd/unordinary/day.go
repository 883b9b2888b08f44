// ABOUTME: CLI commands for managing split days and their exercises.
// ABOUTME: Days attach to a split by weekday; exercises attach to a day in order.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/unordinary/unordinary/internal/models"
)

var dayCmd = &cobra.Command{
	Use:     "day",
	Aliases: []string{"d"},
	Short:   "Manage split days and their exercises",
	Long: `Attach days to splits and exercises to days.

Weekdays are Monday-first: monday=0 through sunday=6. Day names are
accepted too ('unordinary day add 1 friday "Leg Day"').

COMMANDS:

  add          Add a day to a split
  move         Move a day to a different weekday
  delete       Delete a day (its exercise assignments go with it)
  exercise     Manage a day's exercises (add, rename, delete)`,
}

var dayAddCmd = &cobra.Command{
	Use:   "add <split-id> <weekday> <name>",
	Short: "Add a day to a split",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		splitID, err := parseID(args[0])
		if err != nil {
			return err
		}
		dow, err := parseWeekday(args[1])
		if err != nil {
			return err
		}

		id, err := repo.AddSplitDay(splitID, dow, args[2])
		if err != nil {
			return fmt.Errorf("failed to add day: %w", err)
		}

		color.Green("✓ Added %s (%s) to split %d", args[2], models.DayName(dow), splitID)
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var dayMoveCmd = &cobra.Command{
	Use:   "move <day-id> <weekday>",
	Short: "Move a day to a different weekday",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		dow, err := parseWeekday(args[1])
		if err != nil {
			return err
		}

		ok, err := repo.UpdateSplitDay(id, dow)
		if err != nil {
			return fmt.Errorf("failed to move day: %w", err)
		}
		if !ok {
			return fmt.Errorf("day %d does not exist", id)
		}

		color.Green("✓ Moved day %d to %s", id, models.DayName(dow))
		return nil
	},
}

var dayDeleteCmd = &cobra.Command{
	Use:     "delete <day-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a day from its split",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.DeleteSplitDay(id)
		if err != nil {
			return fmt.Errorf("failed to delete day: %w", err)
		}
		if !ok {
			return fmt.Errorf("day %d does not exist", id)
		}

		color.Yellow("✗ Deleted day %d", id)
		return nil
	},
}

var dayExerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage a day's exercises",
}

var dayExerciseAddCmd = &cobra.Command{
	Use:   "add <day-id> <name> [position]",
	Short: "Add an exercise to a day",
	Long: `Add an exercise to a day at the given position (0-based; defaults
to the end). This also records the exercise in the exercise catalog.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dayID, err := parseID(args[0])
		if err != nil {
			return err
		}

		order := -1
		if len(args) == 3 {
			order, err = strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid position: %s", args[2])
			}
		}
		if order < 0 {
			split, derr := daySplit(dayID)
			if derr != nil {
				return derr
			}
			order = 0
			for _, d := range split.Days {
				if d.ID == dayID {
					order = len(d.Exercises)
				}
			}
		}

		id, err := repo.AddSplitDayExercise(dayID, args[1], order)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s to day %d", args[1], dayID)
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var dayExerciseUpdateCmd = &cobra.Command{
	Use:   "update <id> <name> <position>",
	Short: "Rename and reposition a day exercise",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		order, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid position: %s", args[2])
		}

		ok, err := repo.UpdateSplitDayExercise(id, args[1], order)
		if err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}
		if !ok {
			return fmt.Errorf("day exercise %d does not exist", id)
		}

		color.Green("✓ Updated exercise %d", id)
		return nil
	},
}

var dayExerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Remove an exercise from its day",
	Long: `Remove an exercise assignment from a day. The exercise stays in the
exercise catalog; only the day's slot is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.DeleteSplitDayExercise(id)
		if err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		if !ok {
			return fmt.Errorf("day exercise %d does not exist", id)
		}

		color.Yellow("✗ Removed exercise %d from its day", id)
		return nil
	},
}

// daySplit finds the split containing the given day so new exercises can be
// appended after the existing ones.
func daySplit(dayID int64) (*models.Split, error) {
	splits, err := repo.GetSplits()
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	for _, s := range splits {
		full, err := repo.GetSplitWithDaysAndExercises(s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get split %d: %w", s.ID, err)
		}
		for _, d := range full.Days {
			if d.ID == dayID {
				return full, nil
			}
		}
	}
	return nil, fmt.Errorf("day %d does not exist", dayID)
}

func parseWeekday(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday out of range (0=Monday..6=Sunday): %d", n)
		}
		return n, nil
	}
	name := strings.ToLower(s)
	for i, dn := range models.DayNames {
		if strings.ToLower(dn) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday: %s", s)
}

func init() {
	dayExerciseCmd.AddCommand(dayExerciseAddCmd)
	dayExerciseCmd.AddCommand(dayExerciseUpdateCmd)
	dayExerciseCmd.AddCommand(dayExerciseDeleteCmd)

	dayCmd.AddCommand(dayAddCmd)
	dayCmd.AddCommand(dayMoveCmd)
	dayCmd.AddCommand(dayDeleteCmd)
	dayCmd.AddCommand(dayExerciseCmd)
	rootCmd.AddCommand(dayCmd)
}
