// ABOUTME: CLI command for the whole-roster quick summary.
// ABOUTME: One digest line per player: games, PPG, rating.
package main

import (
	"os"

	"github.com/harperreed/hoops/internal/stats"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Quick report for every player",
	Long: `Print one line per player: name, game count, points per game, and
the simplified efficiency rating.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		stats.WriteSummary(os.Stdout, r)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
