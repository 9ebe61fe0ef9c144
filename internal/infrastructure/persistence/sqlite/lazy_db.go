package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

var _ port.DatabaseProvider = (*LazyDB)(nil)

// LazyDB opens the keymap database on first use. Commands that never open
// a user rule, like `rules` or `config path`, then skip compiling the SQLite
// WASM module and running migrations.
//
// A failed open is not remembered: the next DB call tries again.
type LazyDB struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the open database, opening and migrating it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("path", l.path).Msg("sqlite: opening keymap database")

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("sqlite: open failed")
		return nil, fmt.Errorf("open keymap database: %w", err)
	}
	l.db = db
	return db, nil
}

// Close closes the database if it was opened. It is safe to call twice.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

func (l *LazyDB) Path() string {
	return l.path
}
