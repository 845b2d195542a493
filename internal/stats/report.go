// ABOUTME: Plain-text report renderers for player stat summaries.
// ABOUTME: Shared by the CLI commands and the interactive shell.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/harperreed/hoops/internal/roster"
)

// WriteGameList writes a numbered one-line-per-game listing.
func WriteGameList(w io.Writer, p *roster.Player) {
	if len(p.Games) == 0 {
		fmt.Fprintln(w, "No games recorded.")
		return
	}
	fmt.Fprintf(w, "Games for %s:\n", p.Name)
	for i, g := range p.Games {
		fmt.Fprintf(w, "%d. %s - %d pts\n", i+1, g.Date, g.Points)
	}
}

// WriteTotals writes career totals and shooting percentages.
func WriteTotals(w io.Writer, p *roster.Player) {
	if len(p.Games) == 0 {
		fmt.Fprintln(w, "No games to report.")
		return
	}
	t := Sum(p.Games)
	fmt.Fprintf(w, "=== TOTALS for %s ===\n", p.Name)
	fmt.Fprintf(w, "Games: %d\n", t.Games)
	fmt.Fprintf(w, "Points: %d\n", t.Points)
	fmt.Fprintf(w, "Rebounds: %d\n", t.Rebounds)
	fmt.Fprintf(w, "Assists: %d\n", t.Assists)
	fmt.Fprintf(w, "Steals: %d\n", t.Steals)
	fmt.Fprintf(w, "Blocks: %d\n", t.Blocks)
	fmt.Fprintf(w, "FG%%: %.2f%% (%d/%d)\n", Percentage(t.FGM, t.FGA), t.FGM, t.FGA)
	fmt.Fprintf(w, "3P%%: %.2f%% (%d/%d)\n", Percentage(t.ThreePM, t.ThreePA), t.ThreePM, t.ThreePA)
	fmt.Fprintf(w, "FT%%: %.2f%% (%d/%d)\n", Percentage(t.FTM, t.FTA), t.FTM, t.FTA)
}

// WriteAverages writes per-game averages and the simplified rating.
func WriteAverages(w io.Writer, p *roster.Player) {
	if len(p.Games) == 0 {
		fmt.Fprintln(w, "No games to report.")
		return
	}
	a := PerGame(p.Games)
	fmt.Fprintf(w, "=== AVERAGES for %s ===\n", p.Name)
	fmt.Fprintf(w, "PPG: %.2f\n", a.Points)
	fmt.Fprintf(w, "RPG: %.2f\n", a.Rebounds)
	fmt.Fprintf(w, "APG: %.2f\n", a.Assists)
	fmt.Fprintf(w, "SPG: %.2f\n", a.Steals)
	fmt.Fprintf(w, "BPG: %.2f\n", a.Blocks)
	fmt.Fprintf(w, "Simple PER: %.2f\n", EfficiencyRating(p.Games))
}

// WriteBestGames writes every game tied for the highest point total.
func WriteBestGames(w io.Writer, p *roster.Player) {
	if len(p.Games) == 0 {
		fmt.Fprintln(w, "No games to report.")
		return
	}
	best, indexes := BestGames(p.Games)
	fmt.Fprintf(w, "=== Best Scoring Game(s): %d pts ===\n", best)
	for _, idx := range indexes {
		g := p.Games[idx-1]
		fmt.Fprintf(w, "%d. %s - %d pts, FG%%=%.1f%%, 3P=%.1f%%\n",
			idx, g.Date, g.Points,
			Percentage(g.FGM, g.FGA),
			Percentage(g.ThreePM, g.ThreePA))
	}
}

// WriteChart writes an ASCII bar chart of points per game.
// Each star is two points, rounded to the nearest star.
func WriteChart(w io.Writer, p *roster.Player) {
	if len(p.Games) == 0 {
		fmt.Fprintln(w, "No games to chart.")
		return
	}
	fmt.Fprintln(w, "=== Points per Game (each '*' = 2 points) ===")
	for i, g := range p.Games {
		stars := int(math.Round(float64(g.Points) / 2.0))
		if stars < 0 {
			// Points are not validated anywhere, so a correction entry
			// can go negative. Show an empty bar rather than panic.
			stars = 0
		}
		fmt.Fprintf(w, "%3d [%s] %3d | %s\n", i+1, g.Date, g.Points, strings.Repeat("*", stars))
	}
}

// WriteSummary writes a one-line digest per player: game count, PPG,
// and the simplified rating.
func WriteSummary(w io.Writer, r *roster.Roster) {
	if r.Len() == 0 {
		fmt.Fprintln(w, "No players recorded.")
		return
	}
	fmt.Fprintln(w, "=== Quick Player Summary ===")
	for i := range r.Players {
		p := &r.Players[i]
		if len(p.Games) == 0 {
			fmt.Fprintf(w, "%s - Games: 0\n", p.Name)
			continue
		}
		a := PerGame(p.Games)
		fmt.Fprintf(w, "%s - Games: %d, PPG: %.2f, PER: %.2f\n",
			p.Name, len(p.Games), a.Points, EfficiencyRating(p.Games))
	}
}
