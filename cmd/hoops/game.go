// ABOUTME: CLI commands for managing a player's game log.
// ABOUTME: Supports add, list, edit, delete, and sort subcommands.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/hoops/internal/roster"
	"github.com/spf13/cobra"
)

// statFlags holds one command's stat line flags. Add and edit bind
// separate instances so Changed tracking stays per command.
type statFlags struct {
	date     string
	points   int
	rebounds int
	assists  int
	steals   int
	blocks   int
	fgm      int
	fga      int
	threePM  int
	threePA  int
	ftm      int
	fta      int
}

func bindStatFlags(cmd *cobra.Command, f *statFlags) {
	cmd.Flags().StringVar(&f.date, "date", "", "game date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&f.points, "points", 0, "points scored")
	cmd.Flags().IntVar(&f.rebounds, "rebounds", 0, "rebounds")
	cmd.Flags().IntVar(&f.assists, "assists", 0, "assists")
	cmd.Flags().IntVar(&f.steals, "steals", 0, "steals")
	cmd.Flags().IntVar(&f.blocks, "blocks", 0, "blocks")
	cmd.Flags().IntVar(&f.fgm, "fgm", 0, "field goals made")
	cmd.Flags().IntVar(&f.fga, "fga", 0, "field goals attempted")
	cmd.Flags().IntVar(&f.threePM, "3pm", 0, "three-pointers made")
	cmd.Flags().IntVar(&f.threePA, "3pa", 0, "three-pointers attempted")
	cmd.Flags().IntVar(&f.ftm, "ftm", 0, "free throws made")
	cmd.Flags().IntVar(&f.fta, "fta", 0, "free throws attempted")
}

// update builds a partial update from only the flags the user set.
func (f *statFlags) update(cmd *cobra.Command) roster.GameUpdate {
	var upd roster.GameUpdate
	changed := cmd.Flags().Changed

	if changed("date") {
		upd.Date = &f.date
	}
	if changed("points") {
		upd.Points = &f.points
	}
	if changed("rebounds") {
		upd.Rebounds = &f.rebounds
	}
	if changed("assists") {
		upd.Assists = &f.assists
	}
	if changed("steals") {
		upd.Steals = &f.steals
	}
	if changed("blocks") {
		upd.Blocks = &f.blocks
	}
	if changed("fgm") {
		upd.FGM = &f.fgm
	}
	if changed("fga") {
		upd.FGA = &f.fga
	}
	if changed("3pm") {
		upd.ThreePM = &f.threePM
	}
	if changed("3pa") {
		upd.ThreePA = &f.threePA
	}
	if changed("ftm") {
		upd.FTM = &f.ftm
	}
	if changed("fta") {
		upd.FTA = &f.fta
	}
	return upd
}

func parseGameNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid game number: %q", arg)
	}
	return n, nil
}

var (
	gameAddFlags  statFlags
	gameEditFlags statFlags
	deleteConfirm string
)

var gameCmd = &cobra.Command{
	Use:     "game",
	Aliases: []string{"g"},
	Short:   "Manage a player's games",
	Long: `Record and maintain per-game stat lines for a player.

Games are addressed by their 1-based number in the player's current
order, as shown by 'hoops game list'. Deleting or sorting renumbers
later games.

COMMANDS:

  add      Record a new game
  list     Show the game log
  edit     Change fields of a game (unset flags keep their values)
  delete   Remove a game (requires --confirm DELETE)
  sort     Reorder games by date or points`,
}

var gameAddCmd = &cobra.Command{
	Use:   "add <player>",
	Short: "Record a game",
	Long: `Record a game stat line for a player.

The date defaults to today. If more threes are made than field goals,
FGM is raised to cover them, since every made three is a field goal.

Examples:
  hoops game add "Alex Morgan" --date 2024-01-10 --points 20 \
    --rebounds 5 --assists 3 --steals 1 --fgm 8 --fga 15 \
    --3pm 2 --3pa 5 --ftm 2 --fta 3
  hoops game add Sam --points 12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := findPlayer(r, args[0])
		if err != nil {
			return err
		}

		f := &gameAddFlags
		g := roster.NewGame(f.date).
			WithLine(f.points, f.rebounds, f.assists, f.steals, f.blocks).
			WithFieldGoals(f.fgm, f.fga).
			WithThreePointers(f.threePM, f.threePA).
			WithFreeThrows(f.ftm, f.fta)

		stored, adjusted := p.AddGame(*g)
		if err := store.Save(r); err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		if adjusted {
			color.Yellow("⚠ 3PM > FGM; raised FGM to %d", stored.FGM)
		}
		color.Green("✓ Added game %d for %s", len(p.Games), p.Name)
		fmt.Printf("  %s %s, %d pts\n",
			color.New(color.Faint).Sprint(stored.ID.String()[:8]),
			stored.Date, stored.Points)

		return nil
	},
}

var gameListCmd = &cobra.Command{
	Use:     "list <player>",
	Aliases: []string{"ls"},
	Short:   "Show a player's game log",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := findPlayer(r, args[0])
		if err != nil {
			return err
		}

		if len(p.Games) == 0 {
			fmt.Println("No games recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for i, g := range p.Games {
			fmt.Printf("%s %2d. %s %3d pts  %d reb %d ast %d stl %d blk  FG %d/%d  3P %d/%d  FT %d/%d\n",
				faint.Sprint(g.ID.String()[:8]),
				i+1, g.Date, g.Points,
				g.Rebounds, g.Assists, g.Steals, g.Blocks,
				g.FGM, g.FGA, g.ThreePM, g.ThreePA, g.FTM, g.FTA)
		}

		return nil
	},
}

var gameEditCmd = &cobra.Command{
	Use:   "edit <player> <number>",
	Short: "Edit a game",
	Long: `Edit fields of a recorded game.

Only the flags you set are applied; everything else keeps its value.

Examples:
  hoops game edit "Alex Morgan" 2 --points 25
  hoops game edit Sam 1 --date 2024-01-11 --fgm 9 --fga 16`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseGameNumber(args[1])
		if err != nil {
			return err
		}

		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := findPlayer(r, args[0])
		if err != nil {
			return err
		}

		if err := p.EditGame(n, gameEditFlags.update(cmd)); err != nil {
			return fmt.Errorf("edit game %d: %w", n, err)
		}
		if err := store.Save(r); err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		color.Green("✓ Updated game %d for %s", n, p.Name)
		return nil
	},
}

var gameDeleteCmd = &cobra.Command{
	Use:     "delete <player> <number>",
	Aliases: []string{"rm"},
	Short:   "Delete a game",
	Long: `Delete a game from a player's log.

Deletion must be confirmed by passing --confirm DELETE exactly. Later
games shift down one number.

Examples:
  hoops game delete Sam 2 --confirm DELETE`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseGameNumber(args[1])
		if err != nil {
			return err
		}

		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := findPlayer(r, args[0])
		if err != nil {
			return err
		}

		if err := p.DeleteGame(n, deleteConfirm); err != nil {
			if errors.Is(err, roster.ErrNotConfirmed) {
				return fmt.Errorf("deletion requires --confirm %s", roster.ConfirmDelete)
			}
			return fmt.Errorf("delete game %d: %w", n, err)
		}
		if err := store.Save(r); err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		color.Yellow("✗ Deleted game %d for %s", n, p.Name)
		return nil
	},
}

var gameSortCmd = &cobra.Command{
	Use:       "sort <player> <date|points>",
	Short:     "Sort a player's games",
	Long:      `Sort a player's games in place: by date (oldest first) or by points (highest first). The new order sticks and renumbers the games.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"date", "points"},
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := findPlayer(r, args[0])
		if err != nil {
			return err
		}

		switch args[1] {
		case "date":
			p.SortGamesByDate()
		case "points":
			p.SortGamesByPoints()
		default:
			return fmt.Errorf("unknown sort key: %s (use date or points)", args[1])
		}
		if err := store.Save(r); err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		color.Green("✓ Sorted %s's games by %s", p.Name, args[1])
		return nil
	},
}

func init() {
	bindStatFlags(gameAddCmd, &gameAddFlags)
	bindStatFlags(gameEditCmd, &gameEditFlags)
	gameDeleteCmd.Flags().StringVar(&deleteConfirm, "confirm", "", "must be DELETE to proceed")

	gameCmd.AddCommand(gameAddCmd)
	gameCmd.AddCommand(gameListCmd)
	gameCmd.AddCommand(gameEditCmd)
	gameCmd.AddCommand(gameDeleteCmd)
	gameCmd.AddCommand(gameSortCmd)
	rootCmd.AddCommand(gameCmd)
}
