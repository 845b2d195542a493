// ABOUTME: Whole-roster export and import for backup and sharing.
// ABOUTME: Supports JSON, YAML, and Markdown formats.
package statfile

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/stats"
	"gopkg.in/yaml.v3"
)

// ExportData is the versioned envelope for whole-roster exports.
type ExportData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Tool       string          `json:"tool"`
	Players    []roster.Player `json:"players"`
}

// NewExportData wraps the roster in the current export envelope.
func NewExportData(r *roster.Roster) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "hoops",
		Players:    r.Players,
	}
}

// ExportJSON exports the roster as indented JSON.
func ExportJSON(r *roster.Roster) ([]byte, error) {
	return json.MarshalIndent(NewExportData(r), "", "  ")
}

// ImportJSON rebuilds a roster from a JSON export. The whole import
// fails on malformed input; IDs are regenerated when absent.
func ImportJSON(data []byte) (*roster.Roster, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}

	out := roster.New()
	for i := range exportData.Players {
		p := exportData.Players[i]
		if p.Name == "" {
			return nil, fmt.Errorf("player %d: %w", i+1, roster.ErrEmptyName)
		}
		restored := roster.NewPlayer(p.Name)
		for _, g := range p.Games {
			restored.AddGame(g)
		}
		out.Players = append(out.Players, *restored)
	}
	return out, nil
}

type yamlGame struct {
	Date     string `yaml:"date"`
	Points   int    `yaml:"points"`
	Rebounds int    `yaml:"rebounds"`
	Assists  int    `yaml:"assists"`
	Steals   int    `yaml:"steals"`
	Blocks   int    `yaml:"blocks"`
	FGM      int    `yaml:"fgm"`
	FGA      int    `yaml:"fga"`
	ThreePM  int    `yaml:"three_pm"`
	ThreePA  int    `yaml:"three_pa"`
	FTM      int    `yaml:"ftm"`
	FTA      int    `yaml:"fta"`
}

type yamlPlayer struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Games []yamlGame `yaml:"games,omitempty"`
}

// ExportYAML exports the roster as YAML with one block per player.
func ExportYAML(r *roster.Roster) ([]byte, error) {
	data := NewExportData(r)

	yamlData := struct {
		Version    string       `yaml:"version"`
		ExportedAt string       `yaml:"exported_at"`
		Tool       string       `yaml:"tool"`
		Players    []yamlPlayer `yaml:"players"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Players:    make([]yamlPlayer, 0, len(data.Players)),
	}

	for i := range data.Players {
		p := &data.Players[i]
		yp := yamlPlayer{
			ID:   p.ID.String()[:8],
			Name: p.Name,
		}
		for _, g := range p.Games {
			yp.Games = append(yp.Games, yamlGame{
				Date:     g.Date,
				Points:   g.Points,
				Rebounds: g.Rebounds,
				Assists:  g.Assists,
				Steals:   g.Steals,
				Blocks:   g.Blocks,
				FGM:      g.FGM,
				FGA:      g.FGA,
				ThreePM:  g.ThreePM,
				ThreePA:  g.ThreePA,
				FTM:      g.FTM,
				FTA:      g.FTA,
			})
		}
		yamlData.Players = append(yamlData.Players, yp)
	}

	return yaml.Marshal(yamlData)
}

// ExportMarkdown exports the roster as Markdown tables, one section per
// player with a totals line underneath.
func ExportMarkdown(r *roster.Roster) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Hoops Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for i := range r.Players {
		p := &r.Players[i]
		sb.WriteString(fmt.Sprintf("## %s\n\n", p.Name))

		if len(p.Games) == 0 {
			sb.WriteString("No games recorded.\n\n")
			continue
		}

		sb.WriteString("| # | Date | PTS | REB | AST | STL | BLK | FG | 3PT | FT |\n")
		sb.WriteString("|---|------|-----|-----|-----|-----|-----|----|-----|----|\n")
		for j, g := range p.Games {
			sb.WriteString(fmt.Sprintf("| %d | %s | %d | %d | %d | %d | %d | %d/%d | %d/%d | %d/%d |\n",
				j+1, g.Date, g.Points, g.Rebounds, g.Assists, g.Steals, g.Blocks,
				g.FGM, g.FGA, g.ThreePM, g.ThreePA, g.FTM, g.FTA))
		}

		a := stats.PerGame(p.Games)
		sb.WriteString(fmt.Sprintf("\nGames: %d, PPG: %.2f, Simple PER: %.2f\n\n",
			len(p.Games), a.Points, stats.EfficiencyRating(p.Games)))
	}

	return sb.String()
}
