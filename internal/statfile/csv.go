// ABOUTME: CSV export of a single player's game log.
// ABOUTME: Fixed columns ending in computed shooting percentages.
package statfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/stats"
)

var csvHeader = []string{
	"Date", "Points", "Rebounds", "Assists", "Steals", "Blocks",
	"FGM", "FGA", "3PM", "3PA", "FTM", "FTA", "FG%", "3P%", "FT%",
}

// WriteCSV writes the player's games as CSV in their current order.
// The header row is always written, even with no games.
func WriteCSV(w io.Writer, p *roster.Player) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, g := range p.Games {
		record := []string{
			g.Date,
			strconv.Itoa(g.Points),
			strconv.Itoa(g.Rebounds),
			strconv.Itoa(g.Assists),
			strconv.Itoa(g.Steals),
			strconv.Itoa(g.Blocks),
			strconv.Itoa(g.FGM),
			strconv.Itoa(g.FGA),
			strconv.Itoa(g.ThreePM),
			strconv.Itoa(g.ThreePA),
			strconv.Itoa(g.FTM),
			strconv.Itoa(g.FTA),
			fmt.Sprintf("%.2f", stats.Percentage(g.FGM, g.FGA)),
			fmt.Sprintf("%.2f", stats.Percentage(g.ThreePM, g.ThreePA)),
			fmt.Sprintf("%.2f", stats.Percentage(g.FTM, g.FTA)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the player's games to path, replacing any existing
// file.
func ExportCSV(path string, p *roster.Player) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	if err := WriteCSV(f, p); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv file: %w", err)
	}
	return nil
}

// CSVFileName returns the default export filename for a player:
// the name with spaces replaced by underscores, plus ".csv".
func CSVFileName(name string) string {
	return strings.ReplaceAll(name, " ", "_") + ".csv"
}
