// Package sqlite provides the SQLite keymap override store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // registers "sqlite3"
	_ "github.com/ncruces/go-sqlite3/embed"  // bundled SQLite build

	"github.com/bnema/kkc-shortcuts/internal/logging"
)

const dbDirPerm = 0o750

// Applied by the driver on every new connection. busy_timeout covers a
// second editor instance holding the write lock.
var connectionPragmas = []string{
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"busy_timeout(5000)",
	"foreign_keys(ON)",
}

// dataSourceName turns a file path into a driver URI carrying the pragmas.
func dataSourceName(dbPath string) string {
	u := url.URL{Scheme: "file", OmitHost: true, Path: dbPath}
	q := url.Values{"_pragma": connectionPragmas}
	u.RawQuery = q.Encode()
	return u.String()
}

// NewConnection opens the keymap database at dbPath, creating its
// directory, and brings the schema up to date.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dataSourceName(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One long-lived connection: SQLite has a single writer anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.FromContext(ctx).Info().Str("path", dbPath).Msg("database: connection established")
	return db, nil
}

func prepare(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
