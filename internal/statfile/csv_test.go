// ABOUTME: Tests for the per-player CSV export.
// ABOUTME: Covers the golden row shape, default filenames, and file output.
package statfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/hoops/internal/roster"
)

func TestWriteCSVGoldenRow(t *testing.T) {
	p := roster.NewPlayer("Alex Morgan")
	p.AddGame(roster.Game{
		Date: "2024-01-10", Points: 20, Rebounds: 5, Assists: 3, Steals: 1,
		FGM: 8, FGA: 15, ThreePM: 2, ThreePA: 5, FTM: 2, FTA: 3,
	})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, p); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "Date,Points,Rebounds,Assists,Steals,Blocks,FGM,FGA,3PM,3PA,FTM,FTA,FG%,3P%,FT%\n" +
		"2024-01-10,20,5,3,1,0,8,15,2,5,2,3,53.33,40.00,66.67\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteCSV output = %q, want %q", got, want)
	}
}

func TestWriteCSVZeroAttempts(t *testing.T) {
	p := roster.NewPlayer("Sam")
	p.AddGame(roster.Game{Date: "2024-02-01", Points: 4, FGM: 2, FGA: 4})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, p); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	// no attempts means 0.00, not a division failure
	if !strings.Contains(buf.String(), ",50.00,0.00,0.00") {
		t.Errorf("expected zero-attempt percentages, got: %s", buf.String())
	}
}

func TestWriteCSVNoGames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, roster.NewPlayer("Sam")); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("got %d lines, want header only", len(lines))
	}
}

func TestExportCSVWritesFile(t *testing.T) {
	p := roster.NewPlayer("Sam")
	p.AddGame(roster.Game{Date: "2024-02-01", Points: 12})

	path := filepath.Join(t.TempDir(), "sam.csv")
	if err := ExportCSV(path, p); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export failed: %v", err)
	}
	if !strings.Contains(string(data), "2024-02-01,12,") {
		t.Errorf("export missing game row: %s", data)
	}
}

func TestCSVFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces to underscores", input: "Alex Morgan", want: "Alex_Morgan.csv"},
		{name: "single word", input: "Sam", want: "Sam.csv"},
		{name: "multiple spaces", input: "A B C", want: "A_B_C.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CSVFileName(tt.input); got != tt.want {
				t.Errorf("CSVFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
