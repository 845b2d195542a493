// ABOUTME: Root Cobra command for hoops CLI.
// ABOUTME: Handles config and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/harperreed/hoops/internal/config"
	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	store       storage.Store
	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "hoops",
	Short: "Personal basketball statistics tracker",
	Long: `Hoops is a CLI tool for tracking per-game basketball statistics.

WHAT IT TRACKS:

  Counting stats   points, rebounds, assists, steals, blocks
  Shooting splits  FGM/FGA, 3PM/3PA, FTM/FTA per game
  Derived stats    FG%/3P%/FT%, per-game averages, a simplified rating

QUICK START:

  $ hoops player add "Alex Morgan"                  # Add a player
  $ hoops game add "Alex Morgan" --points 20 \
      --rebounds 5 --fgm 8 --fga 15                 # Record a game
  $ hoops game list "Alex Morgan"                   # See the game log
  $ hoops averages "Alex Morgan"                    # Per-game averages
  $ hoops summary                                   # Every player at a glance

INTERACTIVE SHELL:

  Run 'hoops shell' for the menu-driven interface: add and edit games
  with per-field prompts, sort, chart points per game, and export.

MCP INTEGRATION:

  Run 'hoops mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "hoops": { "command": "hoops", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  By default games are saved to players_data.txt in the data directory
  (the current directory unless configured). A sqlite backend is
  available via the config file; see 'hoops migrate --help' to switch.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store setup for commands that don't touch data
		switch cmd.Name() {
		case "version", "help", "install-skill":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hoops version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hoops %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (overrides config)")
	rootCmd.AddCommand(versionCmd)
}

// loadRoster returns the stored roster, treating a never-saved store
// as an empty one.
func loadRoster() (*roster.Roster, error) {
	r, err := store.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return roster.New(), nil
		}
		return nil, fmt.Errorf("load roster: %w", err)
	}
	return r, nil
}

// findPlayer resolves a command's player argument by exact name.
func findPlayer(r *roster.Roster, name string) (*roster.Player, error) {
	p := r.FindPlayer(name)
	if p == nil {
		return nil, fmt.Errorf("player not found: %q (see 'hoops player list')", name)
	}
	return p, nil
}
