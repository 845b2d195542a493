// ABOUTME: Player model and per-player game list operations.
// ABOUTME: Covers add, edit, confirmed delete, and the two sort orders.
package roster

import (
	"sort"

	"github.com/google/uuid"
)

// ConfirmDelete is the exact token required to delete a game.
const ConfirmDelete = "DELETE"

// Player holds a named player's recorded games in entry order,
// or in the order of the last explicit sort.
type Player struct {
	ID    uuid.UUID
	Name  string
	Games []Game
}

// NewPlayer creates a new Player with a generated UUID.
func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.New(),
		Name: name,
	}
}

// GameCount returns the number of recorded games.
func (p *Player) GameCount() int {
	return len(p.Games)
}

// Game returns the game at the 1-based index.
func (p *Player) Game(index int) (*Game, error) {
	if index < 1 || index > len(p.Games) {
		return nil, ErrGameIndex
	}
	return &p.Games[index-1], nil
}

// AddGame appends a game to the player's list. If the game reports more
// made threes than made field goals, FGM is raised to match before
// storing. Returns the stored game and whether that adjustment happened.
func (p *Player) AddGame(g Game) (Game, bool) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	adjusted := g.reconcileFieldGoals()
	p.Games = append(p.Games, g)
	return g, adjusted
}

// EditGame applies the non-nil fields of upd to the game at the 1-based
// index. Untouched fields keep their values.
func (p *Player) EditGame(index int, upd GameUpdate) error {
	g, err := p.Game(index)
	if err != nil {
		return err
	}
	upd.apply(g)
	return nil
}

// DeleteGame removes the game at the 1-based index. The confirm string
// must be exactly ConfirmDelete or nothing is removed.
func (p *Player) DeleteGame(index int, confirm string) error {
	if index < 1 || index > len(p.Games) {
		return ErrGameIndex
	}
	if confirm != ConfirmDelete {
		return ErrNotConfirmed
	}
	p.Games = append(p.Games[:index-1], p.Games[index:]...)
	return nil
}

// SortGamesByDate sorts games by date ascending. Dates are compared as
// strings, which matches chronological order for YYYY-MM-DD.
func (p *Player) SortGamesByDate() {
	sort.SliceStable(p.Games, func(i, j int) bool {
		return p.Games[i].Date < p.Games[j].Date
	})
}

// SortGamesByPoints sorts games by points scored, highest first.
func (p *Player) SortGamesByPoints() {
	sort.SliceStable(p.Games, func(i, j int) bool {
		return p.Games[i].Points > p.Games[j].Points
	})
}
