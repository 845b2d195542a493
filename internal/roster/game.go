// ABOUTME: Game model for per-game basketball stat lines.
// ABOUTME: Holds counting stats and made/attempted shooting pairs.
package roster

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a single played game's stat line.
// Dates use YYYY-MM-DD so lexical order is date order.
type Game struct {
	ID       uuid.UUID
	Date     string
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

// NewGame creates a new Game with a generated UUID.
// An empty date defaults to today.
func NewGame(date string) *Game {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return &Game{
		ID:   uuid.New(),
		Date: date,
	}
}

// WithLine sets the five counting stats.
func (g *Game) WithLine(points, rebounds, assists, steals, blocks int) *Game {
	g.Points = points
	g.Rebounds = rebounds
	g.Assists = assists
	g.Steals = steals
	g.Blocks = blocks
	return g
}

// WithFieldGoals sets field goals made and attempted.
func (g *Game) WithFieldGoals(made, attempted int) *Game {
	g.FGM = made
	g.FGA = attempted
	return g
}

// WithThreePointers sets three-pointers made and attempted.
func (g *Game) WithThreePointers(made, attempted int) *Game {
	g.ThreePM = made
	g.ThreePA = attempted
	return g
}

// WithFreeThrows sets free throws made and attempted.
func (g *Game) WithFreeThrows(made, attempted int) *Game {
	g.FTM = made
	g.FTA = attempted
	return g
}

// reconcileFieldGoals raises FGM to cover made threes, since every
// three-pointer is also a field goal. Reports whether FGM changed.
func (g *Game) reconcileFieldGoals() bool {
	if g.ThreePM > g.FGM {
		g.FGM = g.ThreePM
		return true
	}
	return false
}

// GameUpdate holds optional replacement values for EditGame.
// Nil fields keep the existing value.
type GameUpdate struct {
	Date     *string
	Points   *int
	Rebounds *int
	Assists  *int
	Steals   *int
	Blocks   *int
	FGM      *int
	FGA      *int
	ThreePM  *int
	ThreePA  *int
	FTM      *int
	FTA      *int
}

// apply copies the non-nil fields of u onto g.
func (u GameUpdate) apply(g *Game) {
	if u.Date != nil {
		g.Date = *u.Date
	}
	if u.Points != nil {
		g.Points = *u.Points
	}
	if u.Rebounds != nil {
		g.Rebounds = *u.Rebounds
	}
	if u.Assists != nil {
		g.Assists = *u.Assists
	}
	if u.Steals != nil {
		g.Steals = *u.Steals
	}
	if u.Blocks != nil {
		g.Blocks = *u.Blocks
	}
	if u.FGM != nil {
		g.FGM = *u.FGM
	}
	if u.FGA != nil {
		g.FGA = *u.FGA
	}
	if u.ThreePM != nil {
		g.ThreePM = *u.ThreePM
	}
	if u.ThreePA != nil {
		g.ThreePA = *u.ThreePA
	}
	if u.FTM != nil {
		g.FTM = *u.FTM
	}
	if u.FTA != nil {
		g.FTA = *u.FTA
	}
}
