// ABOUTME: CLI commands for derived stat reports on one player.
// ABOUTME: Covers totals, averages, best games, and the points chart.
package main

import (
	"io"
	"os"

	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/stats"
	"github.com/spf13/cobra"
)

// runReport loads the roster, resolves the player argument, and hands
// the player to the renderer. All four report commands share it.
func runReport(render func(io.Writer, *roster.Player)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := findPlayer(r, args[0])
		if err != nil {
			return err
		}
		render(os.Stdout, p)
		return nil
	}
}

var totalsCmd = &cobra.Command{
	Use:   "totals <player>",
	Short: "Show career totals",
	Long:  `Show a player's accumulated counting stats and overall shooting percentages across all recorded games.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReport(stats.WriteTotals),
}

var averagesCmd = &cobra.Command{
	Use:     "averages <player>",
	Aliases: []string{"avg"},
	Short:   "Show per-game averages and rating",
	Long: `Show a player's per-game averages (PPG, RPG, APG, SPG, BPG) and
the simplified efficiency rating.

The rating is this tool's own teaching formula: counting stats minus
missed field goals and free throws, averaged per game. It is not the
league PER statistic.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport(stats.WriteAverages),
}

var bestCmd = &cobra.Command{
	Use:   "best <player>",
	Short: "Show best scoring game(s)",
	Long:  `Show every game tied for the player's highest single-game point total.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReport(stats.WriteBestGames),
}

var chartCmd = &cobra.Command{
	Use:   "chart <player>",
	Short: "Chart points per game",
	Long:  `Draw an ASCII bar chart of points per game in the player's current order. Each star stands for two points.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReport(stats.WriteChart),
}

func init() {
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(averagesCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(chartCmd)
}
