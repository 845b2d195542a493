// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/hoops/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to work your roster through a
standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "hoops": {
        "command": "hoops",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_player       Add a player to the roster
  add_game         Record a game stat line
  list_players     List players with game counts
  get_player       Get a player's games and shooting splits
  player_summary   Totals, averages, rating, best games
  edit_game        Edit a game (omitted fields keep their values)
  delete_game      Delete a game (confirm must be DELETE)
  sort_games       Sort a player's games by date or points
  export_csv       Export a player's game log to CSV

AVAILABLE RESOURCES:

  hoops://roster    Full roster with game logs
  hoops://summary   Per-player digest of derived stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
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
