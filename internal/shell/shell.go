// ABOUTME: Interactive menu shell for working a roster in one session.
// ABOUTME: Reads menu choices and prompts from an injected reader.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/statfile"
	"github.com/harperreed/hoops/internal/stats"
	"github.com/harperreed/hoops/internal/storage"
)

// Shell runs the interactive menu loop. Input and output are injected
// so tests can script a whole session through buffers.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	store  storage.Store
	roster *roster.Roster
}

// New creates a shell over the given store with an empty roster.
func New(in io.Reader, out io.Writer, st storage.Store) *Shell {
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		store:  st,
		roster: roster.New(),
	}
}

// Run loops over the main menu until the user exits or input ends.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Hoops interactive shell")
	fmt.Fprintf(s.out, "Storage: %s\n", s.store.Description())

	for {
		fmt.Fprintln(s.out, "\n=== MAIN MENU ===")
		fmt.Fprintln(s.out, "1. Add a player")
		fmt.Fprintln(s.out, "2. Select player (open player menu)")
		fmt.Fprintln(s.out, "3. Save all players")
		fmt.Fprintln(s.out, "4. Load players")
		fmt.Fprintln(s.out, "5. Export all players to individual CSV files")
		fmt.Fprintln(s.out, "6. Quick report: list all players and averages")
		fmt.Fprintln(s.out, "0. Exit")

		choice, ok := s.readInt("Choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			s.addPlayer()
		case 2:
			s.selectPlayer()
		case 3:
			s.saveAll()
		case 4:
			s.loadAll()
		case 5:
			s.exportAll()
		case 6:
			stats.WriteSummary(s.out, s.roster)
		case 0:
			fmt.Fprintln(s.out, "Exiting. Tip: save your data (option 3) before quitting.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

// readLine prompts and returns the next input line. ok is false once
// input is exhausted.
func (s *Shell) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// readInt prompts until it gets an integer, re-prompting on bad input.
func (s *Shell) readInt(prompt string) (n int, ok bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid integer. Try again.")
			continue
		}
		return n, true
	}
}

func (s *Shell) addPlayer() {
	name, ok := s.readLine("Enter new player name: ")
	if !ok {
		return
	}
	idx, created, err := s.roster.AddPlayer(strings.TrimSpace(name))
	if err != nil {
		fmt.Fprintln(s.out, "Player name cannot be empty.")
		return
	}
	if !created {
		fmt.Fprintf(s.out, "Player already exists at index %d.\n", idx)
		return
	}
	color.New(color.FgGreen).Fprintf(s.out, "✓ Player %q added (index %d).\n", strings.TrimSpace(name), idx)
}

func (s *Shell) selectPlayer() {
	if s.roster.Len() == 0 {
		fmt.Fprintln(s.out, "No players available. Add a player first.")
		return
	}
	fmt.Fprintln(s.out, "\nPlayers:")
	for i := range s.roster.Players {
		p := &s.roster.Players[i]
		fmt.Fprintf(s.out, "%d. %s (%d games)\n", i+1, p.Name, len(p.Games))
	}
	idx, ok := s.readInt("Select player number (0 to cancel): ")
	if !ok || idx == 0 {
		return
	}
	p, err := s.roster.Player(idx)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid selection.")
		return
	}
	s.playerMenu(p)
}

func (s *Shell) saveAll() {
	if err := s.store.Save(s.roster); err != nil {
		color.New(color.FgYellow).Fprintf(s.out, "✗ Save failed: %v\n", err)
		return
	}
	color.New(color.FgGreen).Fprintf(s.out, "✓ Saved all players (%s).\n", s.store.Description())
}

func (s *Shell) loadAll() {
	loaded, err := s.store.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(s.out, "No saved file found.")
		} else {
			color.New(color.FgYellow).Fprintf(s.out, "✗ Load failed: %v\n", err)
		}
		return
	}
	s.roster = loaded
	color.New(color.FgGreen).Fprintf(s.out, "✓ Loaded %d players.\n", loaded.Len())
}

func (s *Shell) exportAll() {
	for i := range s.roster.Players {
		p := &s.roster.Players[i]
		filename := statfile.CSVFileName(p.Name)
		if err := statfile.ExportCSV(filename, p); err != nil {
			color.New(color.FgYellow).Fprintf(s.out, "✗ Export of %s failed: %v\n", p.Name, err)
			return
		}
	}
	fmt.Fprintln(s.out, "All players exported to CSV files.")
}

func (s *Shell) playerMenu(p *roster.Player) {
	for {
		fmt.Fprintf(s.out, "\n=== Menu for %s ===\n", p.Name)
		fmt.Fprintln(s.out, "1. Add a game")
		fmt.Fprintln(s.out, "2. Edit a game")
		fmt.Fprintln(s.out, "3. Delete a game")
		fmt.Fprintln(s.out, "4. Sort games by date")
		fmt.Fprintln(s.out, "5. Sort games by points")
		fmt.Fprintln(s.out, "6. Show totals")
		fmt.Fprintln(s.out, "7. Show averages & rating")
		fmt.Fprintln(s.out, "8. Show best scoring game(s)")
		fmt.Fprintln(s.out, "9. ASCII chart: points per game")
		fmt.Fprintln(s.out, "10. Export player to CSV")
		fmt.Fprintln(s.out, "0. Back to main menu")

		choice, ok := s.readInt("Choice: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			s.addGame(p)
		case 2:
			s.editGame(p)
		case 3:
			s.deleteGame(p)
		case 4:
			p.SortGamesByDate()
			fmt.Fprintln(s.out, "Games sorted by date (oldest -> newest).")
		case 5:
			p.SortGamesByPoints()
			fmt.Fprintln(s.out, "Games sorted by points (highest -> lowest).")
		case 6:
			stats.WriteTotals(s.out, p)
		case 7:
			stats.WriteAverages(s.out, p)
		case 8:
			stats.WriteBestGames(s.out, p)
		case 9:
			stats.WriteChart(s.out, p)
		case 10:
			s.exportPlayer(p)
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

// addGame prompts for every field of a new stat line. Numeric prompts
// re-prompt until an integer comes in.
func (s *Shell) addGame(p *roster.Player) {
	fmt.Fprintf(s.out, "\nEntering new game for %s. Use YYYY-MM-DD for date.\n", p.Name)

	date, ok := s.readLine("Date (YYYY-MM-DD, enter for today): ")
	if !ok {
		return
	}
	g := roster.NewGame(strings.TrimSpace(date))

	prompts := []struct {
		label string
		dst   *int
	}{
		{"Points: ", &g.Points},
		{"Rebounds: ", &g.Rebounds},
		{"Assists: ", &g.Assists},
		{"Steals: ", &g.Steals},
		{"Blocks: ", &g.Blocks},
		{"Field goals made (FGM): ", &g.FGM},
		{"Field goals attempted (FGA): ", &g.FGA},
		{"3-pointers made (3PM): ", &g.ThreePM},
		{"3-pointers attempted (3PA): ", &g.ThreePA},
		{"Free throws made (FTM): ", &g.FTM},
		{"Free throws attempted (FTA): ", &g.FTA},
	}
	for _, pr := range prompts {
		n, ok := s.readInt(pr.label)
		if !ok {
			return
		}
		*pr.dst = n
	}

	stored, adjusted := p.AddGame(*g)
	if adjusted {
		color.New(color.FgYellow).Fprintln(s.out, "⚠ 3PM > FGM. Adjusting FGM to be at least 3PM.")
	}
	color.New(color.FgGreen).Fprintf(s.out, "✓ Game added for %s (%s).\n", p.Name, stored.Date)
}

// editGame applies a per-field update: enter keeps the current value,
// an unparsable number keeps it too with a warning, and any valid
// fields in the same pass still apply.
func (s *Shell) editGame(p *roster.Player) {
	if len(p.Games) == 0 {
		fmt.Fprintln(s.out, "No games to edit.")
		return
	}
	stats.WriteGameList(s.out, p)

	idx, ok := s.readInt("Enter game number to edit (0 to cancel): ")
	if !ok || idx == 0 {
		return
	}
	g, err := p.Game(idx)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid game number.")
		return
	}

	fmt.Fprintf(s.out, "Editing game %d (%s). Press enter to keep current value.\n", idx, g.Date)

	var upd roster.GameUpdate
	if line, ok := s.readLine(fmt.Sprintf("Date [%s]: ", g.Date)); ok {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			upd.Date = &trimmed
		}
	} else {
		return
	}

	fields := []struct {
		label   string
		current int
		dst     **int
	}{
		{"Points", g.Points, &upd.Points},
		{"Rebounds", g.Rebounds, &upd.Rebounds},
		{"Assists", g.Assists, &upd.Assists},
		{"Steals", g.Steals, &upd.Steals},
		{"Blocks", g.Blocks, &upd.Blocks},
		{"FGM", g.FGM, &upd.FGM},
		{"FGA", g.FGA, &upd.FGA},
		{"3PM", g.ThreePM, &upd.ThreePM},
		{"3PA", g.ThreePA, &upd.ThreePA},
		{"FTM", g.FTM, &upd.FTM},
		{"FTA", g.FTA, &upd.FTA},
	}
	for _, f := range fields {
		line, ok := s.readLine(fmt.Sprintf("%s [%d]: ", f.label, f.current))
		if !ok {
			return
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input; keeping previous value.")
			continue
		}
		*f.dst = &v
	}

	if err := p.EditGame(idx, upd); err != nil {
		fmt.Fprintln(s.out, "Invalid game number.")
		return
	}
	color.New(color.FgGreen).Fprintln(s.out, "✓ Game updated.")
}

func (s *Shell) deleteGame(p *roster.Player) {
	if len(p.Games) == 0 {
		fmt.Fprintln(s.out, "No games to delete.")
		return
	}
	stats.WriteGameList(s.out, p)

	idx, ok := s.readInt("Enter game number to delete (0 to cancel): ")
	if !ok || idx == 0 {
		return
	}

	confirm, ok := s.readLine("Type 'DELETE' to confirm deletion: ")
	if !ok {
		return
	}
	switch err := p.DeleteGame(idx, strings.TrimSpace(confirm)); {
	case errors.Is(err, roster.ErrNotConfirmed):
		fmt.Fprintln(s.out, "Deletion cancelled.")
	case errors.Is(err, roster.ErrGameIndex):
		fmt.Fprintln(s.out, "Invalid game number.")
	case err != nil:
		color.New(color.FgYellow).Fprintf(s.out, "✗ Delete failed: %v\n", err)
	default:
		color.New(color.FgYellow).Fprintln(s.out, "✗ Game deleted.")
	}
}

func (s *Shell) exportPlayer(p *roster.Player) {
	def := statfile.CSVFileName(p.Name)
	filename, ok := s.readLine(fmt.Sprintf("CSV filename (enter for %s): ", def))
	if !ok {
		return
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = def
	}
	if err := statfile.ExportCSV(filename, p); err != nil {
		color.New(color.FgYellow).Fprintf(s.out, "✗ Export failed: %v\n", err)
		return
	}
	color.New(color.FgGreen).Fprintf(s.out, "✓ Exported %s to %q.\n", p.Name, filename)
}
