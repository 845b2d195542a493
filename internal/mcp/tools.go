// ABOUTME: MCP tool implementations for the hoops roster.
// ABOUTME: Provides player and game CRUD plus derived stat summaries.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/statfile"
	"github.com/harperreed/hoops/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_player",
		Description: "Add a player to the roster by name",
	}, s.handleAddPlayer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_game",
		Description: "Record a game stat line for a player",
	}, s.handleAddGame)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_players",
		Description: "List all players with their game counts",
	}, s.handleListPlayers)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_player",
		Description: "Get a player's games and derived shooting stats",
	}, s.handleGetPlayer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "player_summary",
		Description: "Get totals, averages, rating, and best games for a player",
	}, s.handlePlayerSummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "edit_game",
		Description: "Edit a game by number; omitted fields keep their values",
	}, s.handleEditGame)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_game",
		Description: "Delete a game by number (requires confirm=\"DELETE\")",
	}, s.handleDeleteGame)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "sort_games",
		Description: "Sort a player's games by date (ascending) or points (descending)",
	}, s.handleSortGames)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_csv",
		Description: "Export a player's game log to a CSV file",
	}, s.handleExportCSV)
}

// Tool input/output types

type addPlayerInput struct {
	Name string `json:"name" jsonschema:"Player name (exact-match unique)"`
}

type playerOutput struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Created bool   `json:"created"`
	Message string `json:"message"`
}

type addGameInput struct {
	Player   string `json:"player" jsonschema:"Player name"`
	Date     string `json:"date,omitempty" jsonschema:"Game date (YYYY-MM-DD), defaults to today"`
	Points   int    `json:"points,omitempty" jsonschema:"Points scored"`
	Rebounds int    `json:"rebounds,omitempty" jsonschema:"Rebounds"`
	Assists  int    `json:"assists,omitempty" jsonschema:"Assists"`
	Steals   int    `json:"steals,omitempty" jsonschema:"Steals"`
	Blocks   int    `json:"blocks,omitempty" jsonschema:"Blocks"`
	FGM      int    `json:"fgm,omitempty" jsonschema:"Field goals made"`
	FGA      int    `json:"fga,omitempty" jsonschema:"Field goals attempted"`
	ThreePM  int    `json:"three_pm,omitempty" jsonschema:"Three-pointers made"`
	ThreePA  int    `json:"three_pa,omitempty" jsonschema:"Three-pointers attempted"`
	FTM      int    `json:"ftm,omitempty" jsonschema:"Free throws made"`
	FTA      int    `json:"fta,omitempty" jsonschema:"Free throws attempted"`
}

type gameOutput struct {
	Player   string `json:"player"`
	Number   int    `json:"number"`
	Date     string `json:"date"`
	Adjusted bool   `json:"adjusted,omitempty"`
	Message  string `json:"message"`
}

type playerNameInput struct {
	Player string `json:"player" jsonschema:"Player name"`
}

type editGameInput struct {
	Player   string  `json:"player" jsonschema:"Player name"`
	Number   int     `json:"number" jsonschema:"1-based game number"`
	Date     *string `json:"date,omitempty" jsonschema:"New date, omit to keep"`
	Points   *int    `json:"points,omitempty" jsonschema:"New points, omit to keep"`
	Rebounds *int    `json:"rebounds,omitempty" jsonschema:"New rebounds, omit to keep"`
	Assists  *int    `json:"assists,omitempty" jsonschema:"New assists, omit to keep"`
	Steals   *int    `json:"steals,omitempty" jsonschema:"New steals, omit to keep"`
	Blocks   *int    `json:"blocks,omitempty" jsonschema:"New blocks, omit to keep"`
	FGM      *int    `json:"fgm,omitempty" jsonschema:"New FGM, omit to keep"`
	FGA      *int    `json:"fga,omitempty" jsonschema:"New FGA, omit to keep"`
	ThreePM  *int    `json:"three_pm,omitempty" jsonschema:"New 3PM, omit to keep"`
	ThreePA  *int    `json:"three_pa,omitempty" jsonschema:"New 3PA, omit to keep"`
	FTM      *int    `json:"ftm,omitempty" jsonschema:"New FTM, omit to keep"`
	FTA      *int    `json:"fta,omitempty" jsonschema:"New FTA, omit to keep"`
}

type deleteGameInput struct {
	Player  string `json:"player" jsonschema:"Player name"`
	Number  int    `json:"number" jsonschema:"1-based game number"`
	Confirm string `json:"confirm" jsonschema:"Must be exactly DELETE"`
}

type sortGamesInput struct {
	Player string `json:"player" jsonschema:"Player name"`
	By     string `json:"by" jsonschema:"Sort key: date or points"`
}

type exportCSVInput struct {
	Player string `json:"player" jsonschema:"Player name"`
	Path   string `json:"path,omitempty" jsonschema:"Destination file, defaults to <Player_Name>.csv"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// player looks up a tool's target player by exact name.
func (s *Server) player(name string) (*roster.Player, error) {
	p := s.roster.FindPlayer(name)
	if p == nil {
		return nil, fmt.Errorf("player not found: %s", name)
	}
	return p, nil
}

// Tool handlers

func (s *Server) handleAddPlayer(ctx context.Context, req *mcp.CallToolRequest, input addPlayerInput) (*mcp.CallToolResult, playerOutput, error) {
	idx, created, err := s.roster.AddPlayer(input.Name)
	if err != nil {
		return nil, playerOutput{}, err
	}

	msg := fmt.Sprintf("Added player %s (index %d)", input.Name, idx)
	if created {
		if err := s.save(); err != nil {
			return nil, playerOutput{}, err
		}
	} else {
		msg = fmt.Sprintf("Player %s already exists (index %d)", input.Name, idx)
	}

	return nil, playerOutput{
		Index:   idx,
		Name:    input.Name,
		Created: created,
		Message: msg,
	}, nil
}

func (s *Server) handleAddGame(ctx context.Context, req *mcp.CallToolRequest, input addGameInput) (*mcp.CallToolResult, gameOutput, error) {
	p, err := s.player(input.Player)
	if err != nil {
		return nil, gameOutput{}, err
	}

	g := roster.NewGame(input.Date).
		WithLine(input.Points, input.Rebounds, input.Assists, input.Steals, input.Blocks).
		WithFieldGoals(input.FGM, input.FGA).
		WithThreePointers(input.ThreePM, input.ThreePA).
		WithFreeThrows(input.FTM, input.FTA)

	stored, adjusted := p.AddGame(*g)
	if err := s.save(); err != nil {
		return nil, gameOutput{}, err
	}

	msg := fmt.Sprintf("Added game %d for %s (%s)", len(p.Games), p.Name, stored.Date)
	if adjusted {
		msg += "; FGM raised to cover made threes"
	}

	return nil, gameOutput{
		Player:   p.Name,
		Number:   len(p.Games),
		Date:     stored.Date,
		Adjusted: adjusted,
		Message:  msg,
	}, nil
}

func (s *Server) handleListPlayers(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	if s.roster.Len() == 0 {
		return nil, map[string]any{"message": "No players recorded."}, nil
	}

	type entry struct {
		Index int    `json:"index"`
		Name  string `json:"name"`
		Games int    `json:"games"`
	}
	players := make([]entry, 0, s.roster.Len())
	for i := range s.roster.Players {
		p := &s.roster.Players[i]
		players = append(players, entry{Index: i + 1, Name: p.Name, Games: len(p.Games)})
	}

	return nil, players, nil
}

func (s *Server) handleGetPlayer(ctx context.Context, req *mcp.CallToolRequest, input playerNameInput) (*mcp.CallToolResult, any, error) {
	p, err := s.player(input.Player)
	if err != nil {
		return nil, nil, err
	}

	type gameEntry struct {
		Number int     `json:"number"`
		Date   string  `json:"date"`
		Points int     `json:"points"`
		FGPct  float64 `json:"fg_pct"`
		TPPct  float64 `json:"three_pct"`
		FTPct  float64 `json:"ft_pct"`
	}
	games := make([]gameEntry, 0, len(p.Games))
	for i, g := range p.Games {
		games = append(games, gameEntry{
			Number: i + 1,
			Date:   g.Date,
			Points: g.Points,
			FGPct:  stats.Percentage(g.FGM, g.FGA),
			TPPct:  stats.Percentage(g.ThreePM, g.ThreePA),
			FTPct:  stats.Percentage(g.FTM, g.FTA),
		})
	}

	return nil, map[string]any{
		"name":  p.Name,
		"games": games,
	}, nil
}

func (s *Server) handlePlayerSummary(ctx context.Context, req *mcp.CallToolRequest, input playerNameInput) (*mcp.CallToolResult, any, error) {
	p, err := s.player(input.Player)
	if err != nil {
		return nil, nil, err
	}

	t := stats.Sum(p.Games)
	a := stats.PerGame(p.Games)
	best, indexes := stats.BestGames(p.Games)

	return nil, map[string]any{
		"name":   p.Name,
		"games":  t.Games,
		"totals": t,
		"averages": map[string]float64{
			"ppg": a.Points,
			"rpg": a.Rebounds,
			"apg": a.Assists,
			"spg": a.Steals,
			"bpg": a.Blocks,
		},
		"rating":            stats.EfficiencyRating(p.Games),
		"best_points":       best,
		"best_game_numbers": indexes,
	}, nil
}

func (s *Server) handleEditGame(ctx context.Context, req *mcp.CallToolRequest, input editGameInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.player(input.Player)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	upd := roster.GameUpdate{
		Date:     input.Date,
		Points:   input.Points,
		Rebounds: input.Rebounds,
		Assists:  input.Assists,
		Steals:   input.Steals,
		Blocks:   input.Blocks,
		FGM:      input.FGM,
		FGA:      input.FGA,
		ThreePM:  input.ThreePM,
		ThreePA:  input.ThreePA,
		FTM:      input.FTM,
		FTA:      input.FTA,
	}
	if err := p.EditGame(input.Number, upd); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.save(); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated game %d for %s", input.Number, p.Name),
	}, nil
}

func (s *Server) handleDeleteGame(ctx context.Context, req *mcp.CallToolRequest, input deleteGameInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.player(input.Player)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := p.DeleteGame(input.Number, input.Confirm); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.save(); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted game %d for %s", input.Number, p.Name),
	}, nil
}

func (s *Server) handleSortGames(ctx context.Context, req *mcp.CallToolRequest, input sortGamesInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.player(input.Player)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	switch input.By {
	case "date":
		p.SortGamesByDate()
	case "points":
		p.SortGamesByPoints()
	default:
		return nil, simpleOutput{}, fmt.Errorf("unknown sort key: %s (use date or points)", input.By)
	}
	if err := s.save(); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Sorted %s's games by %s", p.Name, input.By),
	}, nil
}

func (s *Server) handleExportCSV(ctx context.Context, req *mcp.CallToolRequest, input exportCSVInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.player(input.Player)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	path := input.Path
	if path == "" {
		path = statfile.CSVFileName(p.Name)
	}
	if err := statfile.ExportCSV(path, p); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Exported %s to %s", p.Name, path),
	}, nil
}
