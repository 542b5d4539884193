package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"runs", "run_files"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_LevelConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO runs (id, project_root, level, usage, change_source, started_at)
		VALUES ('r1', '/p', 'extreme', 10, 'vcs', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_RunFilesCascade(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO runs (id, project_root, level, usage, change_source, started_at)
		VALUES ('r1', '/p', 'full', 30, 'vcs', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO run_files (run_id, position, path, name, mutation)
		VALUES ('r1', 0, 'a/b.go', 'b.go', 'checked')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM runs WHERE id = 'r1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM run_files`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "waypoint.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()
	assert.FileExists(t, path)
}
