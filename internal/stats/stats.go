// ABOUTME: Derived basketball metrics computed from recorded games.
// ABOUTME: Shooting percentages, totals, per-game averages, simplified rating.
package stats

import "github.com/harperreed/hoops/internal/roster"

// Percentage returns made/attempted on a 0-100 scale.
// Zero attempts yield 0.0 rather than an error.
func Percentage(made, attempted int) float64 {
	if attempted == 0 {
		return 0.0
	}
	return 100.0 * float64(made) / float64(attempted)
}

// gameScore is one game's contribution to the efficiency rating:
// counting stats minus missed field goals and missed free throws.
func gameScore(g roster.Game) int {
	return g.Points + g.Rebounds + g.Assists + g.Steals + g.Blocks -
		((g.FGA - g.FGM) + (g.FTA - g.FTM))
}

// EfficiencyRating returns the mean game score across games.
// This is a simplified teaching stat, not the league PER formula.
// A player with no games rates 0.0.
func EfficiencyRating(games []roster.Game) float64 {
	if len(games) == 0 {
		return 0.0
	}
	total := 0
	for _, g := range games {
		total += gameScore(g)
	}
	return float64(total) / float64(len(games))
}

// Totals holds accumulated counting stats and shooting pairs.
type Totals struct {
	Games    int
	Points   int
	Rebounds int
	Assists  int
	Steals   int
	Blocks   int
	FGM      int
	FGA      int
	ThreePM  int
	ThreePA  int
	FTM      int
	FTA      int
}

// Sum accumulates totals across all games.
func Sum(games []roster.Game) Totals {
	t := Totals{Games: len(games)}
	for _, g := range games {
		t.Points += g.Points
		t.Rebounds += g.Rebounds
		t.Assists += g.Assists
		t.Steals += g.Steals
		t.Blocks += g.Blocks
		t.FGM += g.FGM
		t.FGA += g.FGA
		t.ThreePM += g.ThreePM
		t.ThreePA += g.ThreePA
		t.FTM += g.FTM
		t.FTA += g.FTA
	}
	return t
}

// Averages holds per-game means of the counting stats.
type Averages struct {
	Points   float64
	Rebounds float64
	Assists  float64
	Steals   float64
	Blocks   float64
}

// PerGame returns per-game averages, zero-valued with no games.
func PerGame(games []roster.Game) Averages {
	if len(games) == 0 {
		return Averages{}
	}
	t := Sum(games)
	n := float64(len(games))
	return Averages{
		Points:   float64(t.Points) / n,
		Rebounds: float64(t.Rebounds) / n,
		Assists:  float64(t.Assists) / n,
		Steals:   float64(t.Steals) / n,
		Blocks:   float64(t.Blocks) / n,
	}
}

// BestGames returns the highest single-game point total and the
// 1-based indexes of every game that reached it. With no games it
// returns 0 and no indexes.
func BestGames(games []roster.Game) (best int, indexes []int) {
	if len(games) == 0 {
		return 0, nil
	}
	best = games[0].Points
	for _, g := range games {
		if g.Points > best {
			best = g.Points
		}
	}
	for i, g := range games {
		if g.Points == best {
			indexes = append(indexes, i+1)
		}
	}
	return best, indexes
}
