// ABOUTME: CLI commands for exercise collections and split collections.
// ABOUTME: Both are flat name lists managed with the same subcommand shape.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"col"},
	Short:   "Manage exercise collections",
	Long: `Group catalog exercises into collections.

Deleting a collection keeps its exercises; they just become ungrouped.`,
}

var collectionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := repo.AddCollection(args[0])
		if err != nil {
			return fmt.Errorf("failed to add collection: %w", err)
		}

		color.Green("✓ Added collection %q", args[0])
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var collectionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		collections, err := repo.GetCollections()
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}

		if len(collections) == 0 {
			fmt.Println("No collections yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range collections {
			fmt.Printf("%s %s\n", faint.Sprintf("#%d", c.ID), c.Name)
		}
		return nil
	},
}

var collectionRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.UpdateCollection(id, args[1])
		if err != nil {
			return fmt.Errorf("failed to rename collection: %w", err)
		}
		if !ok {
			return fmt.Errorf("collection %d does not exist", id)
		}

		color.Green("✓ Renamed collection %d to %q", id, args[1])
		return nil
	},
}

var collectionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a collection (exercises become ungrouped)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.DeleteCollection(id)
		if err != nil {
			return fmt.Errorf("failed to delete collection: %w", err)
		}
		if !ok {
			return fmt.Errorf("collection %d does not exist", id)
		}

		color.Yellow("✗ Deleted collection %d", id)
		return nil
	},
}

var splitCollectionCmd = &cobra.Command{
	Use:     "split-collection",
	Aliases: []string{"scol"},
	Short:   "Manage split collections",
	Long:    `Named groupings for organizing splits in client UIs.`,
}

var splitCollectionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a split collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := repo.AddSplitCollection(args[0])
		if err != nil {
			return fmt.Errorf("failed to add split collection: %w", err)
		}

		color.Green("✓ Added split collection %q", args[0])
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var splitCollectionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List split collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		collections, err := repo.GetSplitCollections()
		if err != nil {
			return fmt.Errorf("failed to list split collections: %w", err)
		}

		if len(collections) == 0 {
			fmt.Println("No split collections yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range collections {
			fmt.Printf("%s %s\n", faint.Sprintf("#%d", c.ID), c.Name)
		}
		return nil
	},
}

var splitCollectionRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a split collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.UpdateSplitCollection(id, args[1])
		if err != nil {
			return fmt.Errorf("failed to rename split collection: %w", err)
		}
		if !ok {
			return fmt.Errorf("split collection %d does not exist", id)
		}

		color.Green("✓ Renamed split collection %d to %q", id, args[1])
		return nil
	},
}

var splitCollectionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a split collection",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.DeleteSplitCollection(id)
		if err != nil {
			return fmt.Errorf("failed to delete split collection: %w", err)
		}
		if !ok {
			return fmt.Errorf("split collection %d does not exist", id)
		}

		color.Yellow("✗ Deleted split collection %d", id)
		return nil
	},
}

func init() {
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionRenameCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	rootCmd.AddCommand(collectionCmd)

	splitCollectionCmd.AddCommand(splitCollectionAddCmd)
	splitCollectionCmd.AddCommand(splitCollectionListCmd)
	splitCollectionCmd.AddCommand(splitCollectionRenameCmd)
	splitCollectionCmd.AddCommand(splitCollectionDeleteCmd)
	rootCmd.AddCommand(splitCollectionCmd)
}
