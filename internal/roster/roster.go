// ABOUTME: Roster container owning the full set of tracked players.
// ABOUTME: Enforces unique, non-empty player names on add.
package roster

import "errors"

// Validation failures reported by roster operations. Callers show these
// to the user; the roster is never mutated when one is returned.
var (
	ErrEmptyName    = errors.New("player name cannot be empty")
	ErrGameIndex    = errors.New("invalid game number")
	ErrNotConfirmed = errors.New("deletion not confirmed")
)

// Roster owns all tracked players in the order they were added.
type Roster struct {
	Players []Player
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{}
}

// Len returns the number of players.
func (r *Roster) Len() int {
	return len(r.Players)
}

// AddPlayer returns the 1-based index of the named player, creating the
// player if no exact name match exists. created reports whether a new
// entry was appended.
func (r *Roster) AddPlayer(name string) (index int, created bool, err error) {
	if name == "" {
		return 0, false, ErrEmptyName
	}
	for i := range r.Players {
		if r.Players[i].Name == name {
			return i + 1, false, nil
		}
	}
	r.Players = append(r.Players, *NewPlayer(name))
	return len(r.Players), true, nil
}

// Player returns the player at the 1-based index.
func (r *Roster) Player(index int) (*Player, error) {
	if index < 1 || index > len(r.Players) {
		return nil, errors.New("invalid player number")
	}
	return &r.Players[index-1], nil
}

// FindPlayer returns the player with the exact name, or nil.
func (r *Roster) FindPlayer(name string) *Player {
	for i := range r.Players {
		if r.Players[i].Name == name {
			return &r.Players[i]
		}
	}
	return nil
}
