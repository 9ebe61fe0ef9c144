package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kkc-shortcuts/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(dbPath)

	assert.False(t, lazy.IsInitialized(), "LazyDB should not be initialized before DB() is called")
	assert.NoFileExists(t, dbPath)
}

func TestLazyDB_InitializesOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "nested", "keymaps.sqlite")
	lazy := sqlite.NewLazyDB(dbPath)

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.True(t, lazy.IsInitialized())
	assert.FileExists(t, dbPath)

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	require.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	const goroutines = 10
	var wg sync.WaitGroup
	results := make(chan *sql.DB, goroutines)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			results <- db
		}()
	}

	wg.Wait()
	close(results)

	var first *sql.DB
	for db := range results {
		require.NotNil(t, db)
		if first == nil {
			first = db
			continue
		}
		assert.Same(t, first, db, "All goroutines should receive the same DB instance")
	}

	require.NoError(t, lazy.Close())
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.NoError(t, lazy.Close())
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())

	assert.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_RetriesAfterFailure(t *testing.T) {
	ctx := testCtx()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// The parent "directory" is a file, so the first open fails.
	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "keymaps.sqlite"))
	_, err := lazy.DB(ctx)
	require.Error(t, err)

	require.NoError(t, os.Remove(blocker))
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	require.NoError(t, lazy.Close())
	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
}

func TestNewConnection_AppliesPragmas(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "keymaps.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}
