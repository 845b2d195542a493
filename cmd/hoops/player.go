// ABOUTME: CLI commands for managing roster players.
// ABOUTME: Supports add and list subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var playerCmd = &cobra.Command{
	Use:     "player",
	Aliases: []string{"p"},
	Short:   "Manage roster players",
	Long: `Manage the players on your roster.

Player names are the only key: they must be non-empty and are matched
exactly, spaces and capitalization included. Adding a name that already
exists reports the existing entry instead of duplicating it.

COMMANDS:

  add      Add a player by name
  list     List all players with their game counts`,
}

var playerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a player",
	Long: `Add a player to the roster.

Examples:
  hoops player add "Alex Morgan"
  hoops player add Sam`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])

		r, err := loadRoster()
		if err != nil {
			return err
		}

		idx, created, err := r.AddPlayer(name)
		if err != nil {
			return fmt.Errorf("add player: %w", err)
		}
		if !created {
			color.Yellow("Player %q already exists (index %d)", name, idx)
			return nil
		}

		if err := store.Save(r); err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		p := r.FindPlayer(name)
		color.Green("✓ Added player %s", name)
		fmt.Printf("  %s index %d\n",
			color.New(color.Faint).Sprint(p.ID.String()[:8]), idx)

		return nil
	},
}

var playerListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List players",
	Long: `List every player on the roster with their game count.

The faint prefix is the player's internal ID; the number in front is
the 1-based index used by the interactive shell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}

		if r.Len() == 0 {
			fmt.Println("No players recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for i := range r.Players {
			p := &r.Players[i]
			fmt.Printf("%s %d. %s %d games\n",
				faint.Sprint(p.ID.String()[:8]),
				i+1,
				padRight(truncate(p.Name, 24), 24),
				len(p.Games))
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	playerCmd.AddCommand(playerAddCmd)
	playerCmd.AddCommand(playerListCmd)
	rootCmd.AddCommand(playerCmd)
}
