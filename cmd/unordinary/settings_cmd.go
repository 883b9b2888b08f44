// ABOUTME: CLI commands for app settings stored in the local key-value store.
// ABOUTME: Covers unit system, theme, and showing current values.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage app settings",
	Long: `View and change app settings.

Settings live in a small key-value store next to the database. Changing
the unit system only affects display; logged weights keep the unit they
were entered with.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSettings()
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		defer store.Close()

		useMetric, err := store.UseMetric()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		darkMode, err := store.DarkMode()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		installID, err := store.InstallID()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		units := "metric (kg)"
		if !useMetric {
			units = "imperial (lbs)"
		}
		theme := "dark"
		if !darkMode {
			theme = "light"
		}

		fmt.Printf("Units:      %s\n", units)
		fmt.Printf("Theme:      %s\n", theme)
		fmt.Printf("Install ID: %s\n", installID)
		return nil
	},
}

var settingsUnitsCmd = &cobra.Command{
	Use:       "units <metric|imperial>",
	Short:     "Set the unit system",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"metric", "imperial"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var useMetric bool
		switch args[0] {
		case "metric":
			useMetric = true
		case "imperial":
			useMetric = false
		default:
			return fmt.Errorf("unknown unit system %q (want metric or imperial)", args[0])
		}

		store, err := openSettings()
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		defer store.Close()

		if err := store.SetUseMetric(useMetric); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		color.Green("✓ Units set to %s", args[0])
		return nil
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme <dark|light>",
	Short:     "Set the display theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"dark", "light"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var darkMode bool
		switch args[0] {
		case "dark":
			darkMode = true
		case "light":
			darkMode = false
		default:
			return fmt.Errorf("unknown theme %q (want dark or light)", args[0])
		}

		store, err := openSettings()
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		defer store.Close()

		if err := store.SetDarkMode(darkMode); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		color.Green("✓ Theme set to %s", args[0])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsUnitsCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	rootCmd.AddCommand(settingsCmd)
}
