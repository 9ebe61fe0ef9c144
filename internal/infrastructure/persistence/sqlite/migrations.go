package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pressly/goose/v3"

	"github.com/bnema/kkc-shortcuts/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// newMigrator returns a goose provider over the embedded migrations. A
// provider keeps no package state, so several databases can migrate at once.
func newMigrator(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	p, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return p, nil
}

// RunMigrations brings the keymap schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	migrator, err := newMigrator(db)
	if err != nil {
		return err
	}

	results, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if len(results) == 0 {
		log.Debug().Msg("sqlite: schema up to date")
		return nil
	}
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Str("file", filepath.Base(r.Source.Path)).
			Dur("took", r.Duration).
			Msg("sqlite: migration applied")
	}
	return nil
}

// GetMigrationStatus returns the schema version of db.
func GetMigrationStatus(ctx context.Context, db *sql.DB) (int64, error) {
	migrator, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	return migrator.GetDBVersion(ctx)
}
