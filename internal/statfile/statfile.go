// ABOUTME: Line-oriented text codec for the roster save file.
// ABOUTME: Reads and writes the players_data.txt format.
package statfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/hoops/internal/roster"
)

// DefaultFileName is the save file used when no path is configured.
const DefaultFileName = "players_data.txt"

// Write serializes the roster:
//
//	<playerCount>
//	<name>
//	<gameCount>
//	<date> <pts> <reb> <ast> <stl> <blk> <fgm> <fga> <3pm> <3pa> <ftm> <fta>
//
// Names must not contain newlines and dates must not contain
// whitespace; a date that breaks the game-line field count is rejected
// here so a successful save always reads back.
func Write(w io.Writer, r *roster.Roster) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", r.Len())
	for i := range r.Players {
		p := &r.Players[i]
		fmt.Fprintf(bw, "%s\n", p.Name)
		fmt.Fprintf(bw, "%d\n", len(p.Games))
		for _, g := range p.Games {
			if strings.ContainsAny(g.Date, " \t\n") {
				return fmt.Errorf("game date %q for %s contains whitespace", g.Date, p.Name)
			}
			fmt.Fprintf(bw, "%s %d %d %d %d %d %d %d %d %d %d %d\n",
				g.Date, g.Points, g.Rebounds, g.Assists, g.Steals, g.Blocks,
				g.FGM, g.FGA, g.ThreePM, g.ThreePA, g.FTM, g.FTA)
		}
	}
	return bw.Flush()
}

// Save writes the roster to path, replacing any existing file.
func Save(path string, r *roster.Roster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	if err := Write(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("write save file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close save file: %w", err)
	}
	return nil
}

// Read parses a roster from the save format. Any malformed count or
// stat field fails the whole read; a partially parsed roster is never
// returned. Fresh IDs are assigned since the format does not carry them.
func Read(rd io.Reader) (*roster.Roster, error) {
	lr := &lineReader{sc: bufio.NewScanner(rd)}

	playerCount, err := lr.nextCount("player count")
	if err != nil {
		return nil, err
	}

	out := roster.New()
	for i := 0; i < playerCount; i++ {
		name, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("line %d: expected player name: %w", lr.line+1, err)
		}

		gameCount, err := lr.nextCount("game count")
		if err != nil {
			return nil, err
		}

		p := roster.NewPlayer(name)
		for j := 0; j < gameCount; j++ {
			line, err := lr.next()
			if err != nil {
				return nil, fmt.Errorf("line %d: expected game record: %w", lr.line+1, err)
			}
			g, err := parseGame(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lr.line, err)
			}
			p.Games = append(p.Games, g)
		}
		out.Players = append(out.Players, *p)
	}

	return out, nil
}

// Load reads the roster from path. A missing file surfaces as an error
// wrapping fs.ErrNotExist so callers can report it as "no saved file"
// rather than a failure.
func Load(path string) (*roster.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r, nil
}

// lineReader scans lines and tracks the current line number for error
// reporting.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	lr.line++
	return lr.sc.Text(), nil
}

func (lr *lineReader) nextCount(what string) (int, error) {
	line, err := lr.next()
	if err != nil {
		return 0, fmt.Errorf("line %d: expected %s: %w", lr.line+1, what, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: invalid %s %q", lr.line, what, line)
	}
	return n, nil
}

// parseGame parses one space-separated game record: a date followed by
// eleven stat fields.
func parseGame(line string) (roster.Game, error) {
	fields := strings.Fields(line)
	if len(fields) != 12 {
		return roster.Game{}, fmt.Errorf("invalid game record %q: want 12 fields, got %d", line, len(fields))
	}

	g := roster.Game{ID: uuid.New(), Date: fields[0]}
	stats := []*int{
		&g.Points, &g.Rebounds, &g.Assists, &g.Steals, &g.Blocks,
		&g.FGM, &g.FGA, &g.ThreePM, &g.ThreePA, &g.FTM, &g.FTA,
	}
	for i, dst := range stats {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return roster.Game{}, fmt.Errorf("invalid stat field %q in game record", fields[i+1])
		}
		*dst = n
	}
	return g, nil
}
