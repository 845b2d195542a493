// ABOUTME: Text file storage backend backed by the statfile codec.
// ABOUTME: Keeps the roster in a single players_data.txt in the data dir.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/statfile"
)

// TextStore persists the roster to a single line-oriented text file.
type TextStore struct {
	path string
}

var _ Store = (*TextStore)(nil)

// NewTextStore creates a text file store rooted at dataDir. The data
// directory is created if missing; the save file itself is not touched
// until the first Save.
func NewTextStore(dataDir string) (*TextStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &TextStore{path: filepath.Join(dataDir, statfile.DefaultFileName)}, nil
}

// Path returns the save file location.
func (s *TextStore) Path() string {
	return s.path
}

// Load reads the saved roster. A missing save file surfaces as an error
// wrapping fs.ErrNotExist; callers decide whether that means "empty" or
// "no saved file found".
func (s *TextStore) Load() (*roster.Roster, error) {
	return statfile.Load(s.path)
}

// Save writes the roster, replacing any previous save file.
func (s *TextStore) Save(r *roster.Roster) error {
	return statfile.Save(s.path, r)
}

// Close is a no-op; the file is opened and closed per operation.
func (s *TextStore) Close() error {
	return nil
}

// Description identifies the backend for user-facing output.
func (s *TextStore) Description() string {
	return fmt.Sprintf("text file at %s", s.path)
}
