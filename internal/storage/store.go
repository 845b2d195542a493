// ABOUTME: Store interface for roster persistence backends.
// ABOUTME: Defines the whole-roster load/save contract both backends implement.
package storage

import "github.com/harperreed/hoops/internal/roster"

// Backend names accepted in config and on the migrate command.
const (
	BackendTextfile = "textfile"
	BackendSQLite   = "sqlite"
)

// Store persists a whole roster snapshot. Load returns the saved roster
// or an error wrapping fs.ErrNotExist when nothing has been saved yet;
// Save replaces whatever was stored before. This interface allows
// swapping implementations (e.g., for testing).
type Store interface {
	Load() (*roster.Roster, error)
	Save(r *roster.Roster) error
	Close() error
	Description() string
}
