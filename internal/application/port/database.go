// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the SQLite connection backing the keymap
// override store. The connection may be opened on first use.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
	// Path is the database file, reported by diagnostics.
	Path() string
}
