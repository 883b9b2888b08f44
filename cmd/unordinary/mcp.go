// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/unordinary/unordinary/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants like Claude manage your splits and log workouts
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "unordinary": {
        "command": "unordinary",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_splits            List splits in display order
  get_split              Get a split with its days and exercises
  add_split              Create a split
  set_default_split      Make a split the default
  toggle_favorite_split  Toggle a split's favorite flag
  log_workout            Record a workout (defaults to today + default split)
  get_workout_history    List logged workouts
  list_exercises         List the exercise catalog

AVAILABLE RESOURCES:

  unordinary://schedule  Weekly schedule of the default split
  unordinary://splits    All splits summary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
