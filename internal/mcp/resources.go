// ABOUTME: MCP resource implementations for the hoops roster.
// ABOUTME: Provides hoops://roster and hoops://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/hoops/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// hoops://roster - every player with their full game log
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "hoops://roster",
		Name:        "Full Roster",
		Description: "All players with their complete game logs",
		MIMEType:    "application/json",
	}, s.handleRosterResource)

	// hoops://summary - one digest line of derived stats per player
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "hoops://summary",
		Name:        "Roster Summary",
		Description: "Game count, PPG, and rating for every player",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRosterResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(map[string]any{
		"players": s.roster.Players,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal roster: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "hoops://roster",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	type entry struct {
		Name   string  `json:"name"`
		Games  int     `json:"games"`
		PPG    float64 `json:"ppg"`
		Rating float64 `json:"rating"`
	}

	summary := make([]entry, 0, s.roster.Len())
	for i := range s.roster.Players {
		p := &s.roster.Players[i]
		a := stats.PerGame(p.Games)
		summary = append(summary, entry{
			Name:   p.Name,
			Games:  len(p.Games),
			PPG:    a.Points,
			Rating: stats.EfficiencyRating(p.Games),
		})
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "hoops://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
