// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/hoops/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupServer creates a server over a fresh text store in a temp dir.
func setupServer(t *testing.T) *Server {
	t.Helper()

	st, err := storage.NewTextStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewTextStore failed: %v", err)
	}

	server, err := NewServer(st)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func intPtr(n int) *int { return &n }

func TestNewServer(t *testing.T) {
	server := setupServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
	if server.roster == nil {
		t.Error("Expected non-nil roster")
	}
	if server.roster.Len() != 0 {
		t.Errorf("fresh server roster has %d players, want 0", server.roster.Len())
	}
}

func TestNewServerLoadsSavedRoster(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.NewTextStore(dir)
	if err != nil {
		t.Fatalf("NewTextStore failed: %v", err)
	}

	first, err := NewServer(st)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	ctx := context.Background()
	if _, _, err := first.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Alex Morgan"}); err != nil {
		t.Fatalf("handleAddPlayer failed: %v", err)
	}

	second, err := NewServer(st)
	if err != nil {
		t.Fatalf("second NewServer failed: %v", err)
	}
	if second.roster.FindPlayer("Alex Morgan") == nil {
		t.Error("saved player missing after reload")
	}
}

func TestHandleAddPlayer(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		input       addPlayerInput
		wantErr     bool
		wantIndex   int
		wantCreated bool
	}{
		{
			name:        "new player",
			input:       addPlayerInput{Name: "Alex Morgan"},
			wantIndex:   1,
			wantCreated: true,
		},
		{
			name:        "duplicate returns existing index",
			input:       addPlayerInput{Name: "Alex Morgan"},
			wantIndex:   1,
			wantCreated: false,
		},
		{
			name:    "empty name rejected",
			input:   addPlayerInput{Name: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleAddPlayer(ctx, nil, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("handleAddPlayer failed: %v", err)
			}
			if out.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", out.Index, tt.wantIndex)
			}
			if out.Created != tt.wantCreated {
				t.Errorf("Created = %v, want %v", out.Created, tt.wantCreated)
			}
		})
	}
}

func TestHandleAddGame(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	if _, _, err := server.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Sam"}); err != nil {
		t.Fatalf("handleAddPlayer failed: %v", err)
	}

	_, out, err := server.handleAddGame(ctx, nil, addGameInput{
		Player: "Sam", Date: "2024-01-10",
		Points: 20, Rebounds: 5, Assists: 3, Steals: 1,
		FGM: 8, FGA: 15, ThreePM: 2, ThreePA: 5, FTM: 2, FTA: 3,
	})
	if err != nil {
		t.Fatalf("handleAddGame failed: %v", err)
	}
	if out.Number != 1 {
		t.Errorf("Number = %d, want 1", out.Number)
	}
	if out.Adjusted {
		t.Error("Adjusted = true, want false")
	}

	// 5 made threes against 3 made field goals forces the adjustment
	_, out, err = server.handleAddGame(ctx, nil, addGameInput{
		Player: "Sam", Date: "2024-01-12", ThreePM: 5, FGM: 3, FGA: 10, ThreePA: 8,
	})
	if err != nil {
		t.Fatalf("handleAddGame failed: %v", err)
	}
	if !out.Adjusted {
		t.Error("Adjusted = false, want true")
	}

	if _, _, err := server.handleAddGame(ctx, nil, addGameInput{Player: "Nobody"}); err == nil {
		t.Error("expected error for unknown player")
	}
}

func TestHandleEditGame(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, _ = server.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Sam"})
	_, _, _ = server.handleAddGame(ctx, nil, addGameInput{
		Player: "Sam", Date: "2024-01-10", Points: 20, Rebounds: 5,
	})

	_, _, err := server.handleEditGame(ctx, nil, editGameInput{
		Player: "Sam", Number: 1, Points: intPtr(25),
	})
	if err != nil {
		t.Fatalf("handleEditGame failed: %v", err)
	}

	g := server.roster.FindPlayer("Sam").Games[0]
	if g.Points != 25 {
		t.Errorf("Points = %d, want 25", g.Points)
	}
	if g.Rebounds != 5 {
		t.Errorf("Rebounds = %d, want 5 (unspecified field changed)", g.Rebounds)
	}

	if _, _, err := server.handleEditGame(ctx, nil, editGameInput{Player: "Sam", Number: 7}); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestHandleDeleteGame(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, _ = server.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Sam"})
	_, _, _ = server.handleAddGame(ctx, nil, addGameInput{Player: "Sam", Date: "2024-01-10"})

	_, _, err := server.handleDeleteGame(ctx, nil, deleteGameInput{
		Player: "Sam", Number: 1, Confirm: "delete",
	})
	if err == nil {
		t.Error("expected error for wrong confirm token")
	}
	if len(server.roster.FindPlayer("Sam").Games) != 1 {
		t.Error("game removed despite wrong token")
	}

	_, _, err = server.handleDeleteGame(ctx, nil, deleteGameInput{
		Player: "Sam", Number: 1, Confirm: "DELETE",
	})
	if err != nil {
		t.Fatalf("handleDeleteGame failed: %v", err)
	}
	if len(server.roster.FindPlayer("Sam").Games) != 0 {
		t.Error("game not removed with exact token")
	}
}

func TestHandleSortGames(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, _ = server.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Sam"})
	_, _, _ = server.handleAddGame(ctx, nil, addGameInput{Player: "Sam", Date: "2024-01-12", Points: 31})
	_, _, _ = server.handleAddGame(ctx, nil, addGameInput{Player: "Sam", Date: "2024-01-10", Points: 20})

	if _, _, err := server.handleSortGames(ctx, nil, sortGamesInput{Player: "Sam", By: "date"}); err != nil {
		t.Fatalf("handleSortGames failed: %v", err)
	}
	games := server.roster.FindPlayer("Sam").Games
	if games[0].Date != "2024-01-10" {
		t.Errorf("first game date = %s, want 2024-01-10", games[0].Date)
	}

	if _, _, err := server.handleSortGames(ctx, nil, sortGamesInput{Player: "Sam", By: "rebounds"}); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestHandlePlayerSummary(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, _ = server.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Alex Morgan"})
	_, _, _ = server.handleAddGame(ctx, nil, addGameInput{
		Player: "Alex Morgan", Date: "2024-01-10",
		Points: 20, Rebounds: 5, Assists: 3, Steals: 1,
		FGM: 8, FGA: 15, ThreePM: 2, ThreePA: 5, FTM: 2, FTA: 3,
	})

	_, out, err := server.handlePlayerSummary(ctx, nil, playerNameInput{Player: "Alex Morgan"})
	if err != nil {
		t.Fatalf("handlePlayerSummary failed: %v", err)
	}

	summary, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("summary output is %T, want map", out)
	}
	if got := summary["rating"].(float64); got != 21.0 {
		t.Errorf("rating = %v, want 21.0", got)
	}
	if got := summary["best_points"].(int); got != 20 {
		t.Errorf("best_points = %v, want 20", got)
	}
}

func TestHandleExportCSV(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, _ = server.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Alex Morgan"})
	_, _, _ = server.handleAddGame(ctx, nil, addGameInput{
		Player: "Alex Morgan", Date: "2024-01-10", Points: 20, FGM: 8, FGA: 15,
	})

	path := filepath.Join(t.TempDir(), "alex.csv")
	_, out, err := server.handleExportCSV(ctx, nil, exportCSVInput{Player: "Alex Morgan", Path: path})
	if err != nil {
		t.Fatalf("handleExportCSV failed: %v", err)
	}
	if !strings.Contains(out.Message, path) {
		t.Errorf("Message = %q, want path %q mentioned", out.Message, path)
	}
}

func TestHandleRosterResource(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, _ = server.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Sam"})

	result, err := server.handleRosterResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleRosterResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(result.Contents))
	}
	if !strings.Contains(result.Contents[0].Text, "Sam") {
		t.Errorf("roster resource missing player:\n%s", result.Contents[0].Text)
	}
}

func TestHandleSummaryResource(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, _ = server.handleAddPlayer(ctx, nil, addPlayerInput{Name: "Sam"})
	_, _, _ = server.handleAddGame(ctx, nil, addGameInput{Player: "Sam", Date: "2024-01-10", Points: 20})

	result, err := server.handleSummaryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleSummaryResource failed: %v", err)
	}
	text := result.Contents[0].Text
	if !strings.Contains(text, `"ppg": 20`) {
		t.Errorf("summary resource missing PPG:\n%s", text)
	}
}
