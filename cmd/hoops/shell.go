// ABOUTME: CLI command for the interactive menu shell.
// ABOUTME: Runs the session loop over stdin/stdout.
package main

import (
	"os"

	"github.com/harperreed/hoops/internal/shell"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive menu shell",
	Long: `Open the interactive menu shell.

The shell keeps one roster in memory for the session. Use the save and
load menu entries to persist it; quitting without saving discards
changes made during the session.

MAIN MENU:

  1  Add a player
  2  Select player (opens the per-player menu)
  3  Save all players
  4  Load players
  5  Export all players to individual CSV files
  6  Quick report: list all players and averages
  0  Exit

PLAYER MENU:

  Add, edit (per-field, enter keeps current value), and delete games
  (type DELETE to confirm), sort by date or points, show totals,
  averages and rating, best game(s), an ASCII points chart, and CSV
  export.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.New(os.Stdin, os.Stdout, store).Run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
