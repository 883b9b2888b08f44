// ABOUTME: CLI commands for wiping stored data.
// ABOUTME: Full reset rebuilds the schema; history reset only clears logs.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and start fresh",
	Long: `Drop every table and rebuild an empty schema. Splits, exercises,
collections, and workout history are all deleted. Settings are kept.

Asks for confirmation unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce && !confirm("This deletes ALL splits, exercises, and history. Continue?") {
			fmt.Println("Aborted.")
			return nil
		}

		if err := repo.Reset(); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}

		color.Yellow("✗ All data deleted")
		return nil
	},
}

var resetHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Delete workout history only",
	Long:  `Delete all logged workouts. Splits and exercises are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce && !confirm("This deletes all logged workouts. Continue?") {
			fmt.Println("Aborted.")
			return nil
		}

		if err := repo.ClearWorkoutHistory(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		color.Yellow("✗ Workout history deleted")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip confirmation")
	resetHistoryCmd.Flags().BoolVar(&resetForce, "force", false, "skip confirmation")

	resetCmd.AddCommand(resetHistoryCmd)
	rootCmd.AddCommand(resetCmd)
}
