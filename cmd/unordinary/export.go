// ABOUTME: CLI commands for exporting and importing all data.
// ABOUTME: Supports JSON and YAML, writing to stdout or a file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unordinary/unordinary/internal/storage"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export splits, exercises, collections, and workout history as JSON
or YAML. The export is stamped with this install's ID so imports can be
traced back to their source device.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "json" && exportFormat != "yaml" {
			return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
		}

		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to export data: %w", err)
		}

		if store, err := openSettings(); err == nil {
			if id, err := store.InstallID(); err == nil {
				data.InstallID = id
			}
			store.Close()
		}

		var out []byte
		if exportFormat == "json" {
			out, err = json.MarshalIndent(data, "", "  ")
		} else {
			out, err = yaml.Marshal(data)
		}
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from an export file",
	Long: `Import splits, exercises, collections, and workout history from a
JSON or YAML export. Imported rows get fresh IDs and merge with whatever
is already in the database.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			if yerr := yaml.Unmarshal(raw, &data); yerr != nil {
				return fmt.Errorf("failed to parse %s as JSON or YAML: %w", args[0], err)
			}
		}

		if err := repo.ImportData(&data); err != nil {
			return fmt.Errorf("failed to import data: %w", err)
		}

		color.Green("✓ Imported %d split(s), %d exercise(s), %d history entrie(s)",
			len(data.Splits), len(data.Exercises), len(data.History))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json or yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
