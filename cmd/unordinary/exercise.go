// ABOUTME: CLI commands for the standalone exercise catalog.
// ABOUTME: Catalog entries are independent of day assignments.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exerciseCollectionID int64

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise catalog",
	Long: `Manage the standalone exercise catalog.

Catalog entries can optionally belong to a collection for grouping
(e.g. "Push", "Pull"). Deleting a catalog entry does not touch any
split day that references an exercise of the same name.`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := repo.AddExercise(args[0])
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added exercise %q", args[0])
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.GetExercises()
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises yet. Add one with 'unordinary exercise add <name>'.")
			return nil
		}

		collections, err := repo.GetCollections()
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}
		names := make(map[int64]string, len(collections))
		for _, c := range collections {
			names[c.ID] = c.Name
		}

		faint := color.New(color.Faint)
		for _, ex := range exercises {
			group := ""
			if ex.CollectionID != nil {
				if name, ok := names[*ex.CollectionID]; ok {
					group = " " + faint.Sprintf("(%s)", name)
				}
			}
			fmt.Printf("%s %s%s\n", faint.Sprintf("#%d", ex.ID), ex.Name, group)
		}
		return nil
	},
}

var exerciseRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a catalog exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.UpdateExercise(id, args[1])
		if err != nil {
			return fmt.Errorf("failed to rename exercise: %w", err)
		}
		if !ok {
			return fmt.Errorf("exercise %d does not exist", id)
		}

		color.Green("✓ Renamed exercise %d to %q", id, args[1])
		return nil
	},
}

var exerciseGroupCmd = &cobra.Command{
	Use:   "group <id>",
	Short: "Assign or clear an exercise's collection",
	Long: `Assign an exercise to a collection with --collection <id>, or clear
its collection by omitting the flag.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var collectionID *int64
		if cmd.Flags().Changed("collection") {
			collectionID = &exerciseCollectionID
		}

		ok, err := repo.SetExerciseCollection(id, collectionID)
		if err != nil {
			return fmt.Errorf("failed to set collection: %w", err)
		}
		if !ok {
			return fmt.Errorf("exercise %d does not exist", id)
		}

		if collectionID == nil {
			color.Green("✓ Cleared collection on exercise %d", id)
		} else {
			color.Green("✓ Moved exercise %d to collection %d", id, *collectionID)
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a catalog exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.DeleteExercise(id)
		if err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		if !ok {
			return fmt.Errorf("exercise %d does not exist", id)
		}

		color.Yellow("✗ Deleted exercise %d", id)
		return nil
	},
}

func init() {
	exerciseGroupCmd.Flags().Int64Var(&exerciseCollectionID, "collection", 0, "collection id to assign")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseRenameCmd)
	exerciseCmd.AddCommand(exerciseGroupCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
