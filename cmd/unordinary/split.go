// ABOUTME: CLI commands for managing workout splits.
// ABOUTME: Supports add, list, show, rename, delete, order, favorite, default.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/unordinary/unordinary/internal/models"
	"github.com/unordinary/unordinary/internal/storage"
)

var splitDeleteForce bool

var splitCmd = &cobra.Command{
	Use:     "split",
	Aliases: []string{"s"},
	Short:   "Manage workout splits",
	Long: `Create and manage weekly workout splits.

A split assigns exercises to weekdays. One split is always the default
(used for today's workout when you don't pick one); at most one split can
be the favorite.

COMMANDS:

  add       Create a new split
  list      List splits in display order
  show      Show a split's days and exercises
  rename    Rename a split
  delete    Delete a split (days and exercises go with it)
  order     Move a split within the display order
  favorite  Toggle the favorite flag
  default   Make a split the default`,
}

var splitAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new split",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := repo.AddSplit(args[0])
		if err != nil {
			return fmt.Errorf("failed to add split: %w", err)
		}

		// First split becomes the default automatically
		def, err := repo.GetDefaultSplit()
		if err != nil {
			return fmt.Errorf("failed to check default split: %w", err)
		}
		if def == nil {
			if _, err := repo.SetDefaultSplit(id, true); err != nil {
				return fmt.Errorf("failed to set default split: %w", err)
			}
		}

		color.Green("✓ Added split %q", args[0])
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var splitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List splits",
	RunE: func(cmd *cobra.Command, args []string) error {
		splits, err := repo.GetSplits()
		if err != nil {
			return fmt.Errorf("failed to list splits: %w", err)
		}

		if len(splits) == 0 {
			fmt.Println("No splits yet. Create one with 'unordinary split add <name>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range splits {
			flags := ""
			if s.IsDefault {
				flags += " " + color.CyanString("[default]")
			}
			if s.IsFavorite {
				flags += " " + color.YellowString("★")
			}
			fmt.Printf("%s %s%s\n", faint.Sprintf("#%d", s.ID), s.Name, flags)
		}
		return nil
	},
}

var splitShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a split's days and exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		split, err := repo.GetSplitWithDaysAndExercises(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("split %d does not exist", id)
			}
			return fmt.Errorf("failed to get split: %w", err)
		}

		printSplit(split)
		return nil
	},
}

var splitRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a split",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.UpdateSplit(id, args[1], nil)
		if err != nil {
			return fmt.Errorf("failed to rename split: %w", err)
		}
		if !ok {
			return fmt.Errorf("split %d does not exist", id)
		}

		color.Green("✓ Renamed split %d to %q", id, args[1])
		return nil
	},
}

var splitDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a split",
	Long: `Delete a split along with its days and day exercises.

Workout history referencing the split is kept: history rows are
self-contained snapshots and survive template deletion.

The current default split cannot be deleted without --force; reassign the
default first with 'unordinary split default <other-id>'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if !splitDeleteForce {
			def, err := repo.GetDefaultSplit()
			if err != nil {
				return fmt.Errorf("failed to check default split: %w", err)
			}
			if def != nil && def.ID == id {
				return fmt.Errorf("split %d is the default; reassign the default first or use --force", id)
			}
		}

		ok, err := repo.DeleteSplit(id)
		if err != nil {
			return fmt.Errorf("failed to delete split: %w", err)
		}
		if !ok {
			return fmt.Errorf("split %d does not exist", id)
		}

		color.Yellow("✗ Deleted split %d", id)
		return nil
	},
}

var splitOrderCmd = &cobra.Command{
	Use:   "order <id> <position>",
	Short: "Set a split's display position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		order, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position: %s", args[1])
		}

		ok, err := repo.UpdateSplitOrder(id, order)
		if err != nil {
			return fmt.Errorf("failed to reorder split: %w", err)
		}
		if !ok {
			return fmt.Errorf("split %d does not exist", id)
		}

		color.Green("✓ Moved split %d to position %d", id, order)
		return nil
	},
}

var splitFavoriteCmd = &cobra.Command{
	Use:     "favorite <id>",
	Aliases: []string{"fav"},
	Short:   "Toggle the favorite flag on a split",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.ToggleFavoriteSplit(id)
		if err != nil {
			return fmt.Errorf("failed to toggle favorite: %w", err)
		}
		if !ok {
			return fmt.Errorf("split %d does not exist", id)
		}

		color.Green("✓ Toggled favorite on split %d", id)
		return nil
	},
}

var splitDefaultCmd = &cobra.Command{
	Use:   "default <id>",
	Short: "Make a split the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.SetDefaultSplit(id, true)
		if err != nil {
			return fmt.Errorf("failed to set default split: %w", err)
		}
		if !ok {
			return fmt.Errorf("split %d does not exist", id)
		}

		color.Green("✓ Split %d is now the default", id)
		return nil
	},
}

func printSplit(split *models.Split) {
	flags := ""
	if split.IsDefault {
		flags += " " + color.CyanString("[default]")
	}
	if split.IsFavorite {
		flags += " " + color.YellowString("★")
	}
	fmt.Printf("%s%s\n", color.New(color.Bold).Sprint(split.Name), flags)

	if len(split.Days) == 0 {
		fmt.Println("  (no days yet)")
		return
	}

	faint := color.New(color.Faint)
	for _, day := range split.Days {
		fmt.Printf("  %s — %s %s\n", models.DayName(day.DayOfWeek), day.Name, faint.Sprintf("#%d", day.ID))
		for _, ex := range day.Exercises {
			fmt.Printf("    %d. %s %s\n", ex.OrderIndex+1, ex.Name, faint.Sprintf("#%d", ex.ID))
		}
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

func init() {
	splitDeleteCmd.Flags().BoolVar(&splitDeleteForce, "force", false, "delete even if this split is the default")

	splitCmd.AddCommand(splitAddCmd)
	splitCmd.AddCommand(splitListCmd)
	splitCmd.AddCommand(splitShowCmd)
	splitCmd.AddCommand(splitRenameCmd)
	splitCmd.AddCommand(splitDeleteCmd)
	splitCmd.AddCommand(splitOrderCmd)
	splitCmd.AddCommand(splitFavoriteCmd)
	splitCmd.AddCommand(splitDefaultCmd)
	rootCmd.AddCommand(splitCmd)
}
