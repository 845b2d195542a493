// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests helpers, command wiring, and store-backed workflows.
package main

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/hoops/internal/statfile"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "short string unchanged", input: "Sam", max: 10, want: "Sam"},
		{name: "exact length unchanged", input: "abcdefghij", max: 10, want: "abcdefghij"},
		{name: "long string truncated", input: "a very long player name", max: 10, want: "a very ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{name: "pads short string", input: "Sam", length: 6, want: "Sam   "},
		{name: "leaves long string", input: "Alex Morgan", length: 6, want: "Alex Morgan"},
		{name: "exact length", input: "abc", length: 3, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "hoops" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "hoops")
	}
	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
	if rootCmd.PersistentFlags().Lookup("data-dir") == nil {
		t.Error("Expected persistent --data-dir flag")
	}
}

func TestCommandWiring(t *testing.T) {
	want := []string{
		"player", "game", "totals", "averages", "best", "chart",
		"summary", "export", "import", "shell", "migrate", "mcp",
		"install-skill", "version",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestGameAddCmdFlags(t *testing.T) {
	for _, flag := range []string{
		"date", "points", "rebounds", "assists", "steals", "blocks",
		"fgm", "fga", "3pm", "3pa", "ftm", "fta",
	} {
		if gameAddCmd.Flags().Lookup(flag) == nil {
			t.Errorf("game add missing --%s flag", flag)
		}
		if gameEditCmd.Flags().Lookup(flag) == nil {
			t.Errorf("game edit missing --%s flag", flag)
		}
	}
}

func TestGameDeleteCmdFlags(t *testing.T) {
	if gameDeleteCmd.Flags().Lookup("confirm") == nil {
		t.Error("game delete missing --confirm flag")
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	want := map[string]bool{"csv": true, "json": true, "yaml": true, "markdown": true}
	for _, arg := range exportCmd.ValidArgs {
		if !want[arg] {
			t.Errorf("unexpected export format %q", arg)
		}
		delete(want, arg)
	}
	for missing := range want {
		t.Errorf("export format %q not declared", missing)
	}
}

// runCLI executes the root command against an isolated config home.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCLIWorkflow(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()

	if err := runCLI(t, "player", "add", "Alex Morgan", "--data-dir", dataDir); err != nil {
		t.Fatalf("player add failed: %v", err)
	}

	if err := runCLI(t, "game", "add", "Alex Morgan", "--data-dir", dataDir,
		"--date", "2024-01-10", "--points", "20", "--rebounds", "5",
		"--assists", "3", "--steals", "1",
		"--fgm", "8", "--fga", "15", "--3pm", "2", "--3pa", "5",
		"--ftm", "2", "--fta", "3"); err != nil {
		t.Fatalf("game add failed: %v", err)
	}

	if err := runCLI(t, "game", "edit", "Alex Morgan", "1", "--data-dir", dataDir,
		"--points", "25"); err != nil {
		t.Fatalf("game edit failed: %v", err)
	}

	r, err := statfile.Load(filepath.Join(dataDir, statfile.DefaultFileName))
	if err != nil {
		t.Fatalf("loading saved roster failed: %v", err)
	}
	p := r.FindPlayer("Alex Morgan")
	if p == nil {
		t.Fatal("player missing from saved roster")
	}
	if len(p.Games) != 1 {
		t.Fatalf("saved %d games, want 1", len(p.Games))
	}
	if p.Games[0].Points != 25 {
		t.Errorf("points = %d, want 25 after edit", p.Games[0].Points)
	}
	if p.Games[0].Rebounds != 5 {
		t.Errorf("rebounds = %d, want 5 (edit must not reset unset flags)", p.Games[0].Rebounds)
	}
}

func TestCLIPlayerAddTrimsName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()

	if err := runCLI(t, "player", "add", "  Sam ", "--data-dir", dataDir); err != nil {
		t.Fatalf("player add failed: %v", err)
	}
	// The padded spelling must dedup against the trimmed one.
	if err := runCLI(t, "player", "add", "Sam", "--data-dir", dataDir); err != nil {
		t.Fatalf("player add failed: %v", err)
	}

	r, err := statfile.Load(filepath.Join(dataDir, statfile.DefaultFileName))
	if err != nil {
		t.Fatalf("loading saved roster failed: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("saved %d players, want 1", r.Len())
	}
	if r.Players[0].Name != "Sam" {
		t.Errorf("saved name = %q, want %q", r.Players[0].Name, "Sam")
	}
}

func TestCLIDeleteRequiresConfirm(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()

	if err := runCLI(t, "player", "add", "Sam", "--data-dir", dataDir); err != nil {
		t.Fatalf("player add failed: %v", err)
	}
	if err := runCLI(t, "game", "add", "Sam", "--data-dir", dataDir, "--points", "12"); err != nil {
		t.Fatalf("game add failed: %v", err)
	}

	if err := runCLI(t, "game", "delete", "Sam", "1", "--data-dir", dataDir,
		"--confirm", "yes"); err == nil {
		t.Error("delete with wrong token succeeded, want error")
	}

	r, err := statfile.Load(filepath.Join(dataDir, statfile.DefaultFileName))
	if err != nil {
		t.Fatalf("loading saved roster failed: %v", err)
	}
	if got := len(r.FindPlayer("Sam").Games); got != 1 {
		t.Fatalf("game count after failed delete = %d, want 1", got)
	}

	if err := runCLI(t, "game", "delete", "Sam", "1", "--data-dir", dataDir,
		"--confirm", "DELETE"); err != nil {
		t.Fatalf("confirmed delete failed: %v", err)
	}

	r, err = statfile.Load(filepath.Join(dataDir, statfile.DefaultFileName))
	if err != nil {
		t.Fatalf("loading saved roster failed: %v", err)
	}
	if got := len(r.FindPlayer("Sam").Games); got != 0 {
		t.Errorf("game count after delete = %d, want 0", got)
	}
}

func TestCLIUnknownPlayer(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()

	if err := runCLI(t, "totals", "Nobody", "--data-dir", dataDir); err == nil {
		t.Error("totals for unknown player succeeded, want error")
	}
}
