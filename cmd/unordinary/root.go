// ABOUTME: Root Cobra command for unordinary CLI.
// ABOUTME: Opens the storage database via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unordinary/unordinary/internal/config"
	"github.com/unordinary/unordinary/internal/settings"
	"github.com/unordinary/unordinary/internal/storage"
)

var (
	cfg     *config.Config
	repo    *storage.DB
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "unordinary",
	Short: "Workout split tracker",
	Long: `Unordinary tracks weekly workout splits and the workouts you log
against them.

SPLITS:

  A split is a named weekly template: each weekday (Monday through Sunday)
  gets a list of exercises. One split is always the default — the one used
  for today's workout — and at most one can be marked favorite.

QUICK START:

  $ unordinary split add "Push Pull Legs"     # Create a split
  $ unordinary day add 1 0 "Push"             # Monday = Push day
  $ unordinary day exercise add 1 "Bench Press"
  $ unordinary log 1 "Bench Press=100x5,100x5,95x8"
  $ unordinary history 2026-09-01             # Look a day up later

UNITS:

  Weights are logged in your configured unit system and stored with the
  unit they were entered in, so switching units never rewrites history.

  $ unordinary settings units imperial

MCP INTEGRATION:

  Run 'unordinary mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "unordinary": { "command": "unordinary", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in a local SQLite file at ~/.local/share/unordinary, next to
  the settings store. 'unordinary reset' wipes everything.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
}

// openSettings opens the settings store for commands that need it. The
// caller owns the returned store and must close it.
func openSettings() (*settings.Store, error) {
	if cfg == nil {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	return cfg.OpenSettings()
}
