// ABOUTME: SQLite storage backend for the roster.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/harperreed/hoops/internal/roster"
	_ "modernc.org/sqlite"
)

// DefaultDBName is the database file created inside the data directory.
const DefaultDBName = "hoops.db"

const schema = `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		date TEXT NOT NULL,
		points INTEGER NOT NULL,
		rebounds INTEGER NOT NULL,
		assists INTEGER NOT NULL,
		steals INTEGER NOT NULL,
		blocks INTEGER NOT NULL,
		fgm INTEGER NOT NULL,
		fga INTEGER NOT NULL,
		three_pm INTEGER NOT NULL,
		three_pa INTEGER NOT NULL,
		ftm INTEGER NOT NULL,
		fta INTEGER NOT NULL,
		FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_games_player ON games(player_id, position);
	`

// SQLiteStore persists the roster in a SQLite database. The position
// columns preserve roster and game order across round trips.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

// configurePragmas sets up SQLite for optimal performance.
func (s *SQLiteStore) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// Load reads the full roster in stored order. An empty database yields
// an empty roster, not an error.
func (s *SQLiteStore) Load() (*roster.Roster, error) {
	rows, err := s.db.Query(`SELECT id, name FROM players ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	out := roster.New()
	for rows.Next() {
		var idStr, name string
		if err := rows.Scan(&idStr, &name); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse player id %q: %w", idStr, err)
		}
		out.Players = append(out.Players, roster.Player{ID: id, Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}

	for i := range out.Players {
		p := &out.Players[i]
		games, err := s.loadGames(p.ID)
		if err != nil {
			return nil, fmt.Errorf("load games for %s: %w", p.Name, err)
		}
		p.Games = games
	}

	return out, nil
}

func (s *SQLiteStore) loadGames(playerID uuid.UUID) ([]roster.Game, error) {
	rows, err := s.db.Query(`
		SELECT id, date, points, rebounds, assists, steals, blocks,
		       fgm, fga, three_pm, three_pa, ftm, fta
		FROM games
		WHERE player_id = ?
		ORDER BY position
	`, playerID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []roster.Game
	for rows.Next() {
		var g roster.Game
		var idStr string
		if err := rows.Scan(&idStr, &g.Date,
			&g.Points, &g.Rebounds, &g.Assists, &g.Steals, &g.Blocks,
			&g.FGM, &g.FGA, &g.ThreePM, &g.ThreePA, &g.FTM, &g.FTA); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse game id %q: %w", idStr, err)
		}
		g.ID = id
		games = append(games, g)
	}
	return games, rows.Err()
}

// Save replaces the stored roster with r in one transaction, so a
// failed save never leaves a half-written snapshot behind.
func (s *SQLiteStore) Save(r *roster.Roster) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM games`); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM players`); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}

	for i := range r.Players {
		p := &r.Players[i]
		if _, err := tx.Exec(`INSERT INTO players (id, name, position) VALUES (?, ?, ?)`,
			p.ID.String(), p.Name, i); err != nil {
			return fmt.Errorf("insert player %s: %w", p.Name, err)
		}
		for j, g := range p.Games {
			if _, err := tx.Exec(`
				INSERT INTO games (id, player_id, position, date,
					points, rebounds, assists, steals, blocks,
					fgm, fga, three_pm, three_pa, ftm, fta)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, g.ID.String(), p.ID.String(), j, g.Date,
				g.Points, g.Rebounds, g.Assists, g.Steals, g.Blocks,
				g.FGM, g.FGA, g.ThreePM, g.ThreePA, g.FTM, g.FTA); err != nil {
				return fmt.Errorf("insert game %d for %s: %w", j+1, p.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Description identifies the backend for user-facing output.
func (s *SQLiteStore) Description() string {
	return fmt.Sprintf("sqlite database at %s", s.dbPath)
}
