// ABOUTME: Data migration between roster storage backends.
// ABOUTME: Copies the whole roster snapshot from source to destination.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Players int
	Games   int
}

// MigrateData copies the roster from src to dst. A source that has
// never been saved migrates as an empty roster. The destination
// snapshot is replaced wholesale, matching Save semantics.
func MigrateData(src, dst Store) (*MigrateSummary, error) {
	r, err := src.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MigrateSummary{}, nil
		}
		return nil, fmt.Errorf("load source roster: %w", err)
	}

	if err := dst.Save(r); err != nil {
		return nil, fmt.Errorf("save destination roster: %w", err)
	}

	summary := &MigrateSummary{Players: r.Len()}
	for i := range r.Players {
		summary.Games += len(r.Players[i].Games)
	}
	return summary, nil
}
