package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func countTables(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	err := conn.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN (?, ?, ?)`,
		Tables[0], Tables[1], Tables[2],
	).Scan(&count)
	require.NoError(t, err)

	return count
}

func TestMigrate_CreatesSchema(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, Migrate(conn))
	assert.Equal(t, len(Tables), countTables(t, conn))
}

func TestMigrate_ReapplyIsNoOp(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, Migrate(conn))
	_, err := conn.Exec(`INSERT INTO schedule_run
		(id, week_start, created_at, seed, min_per_shift, max_per_shift, max_days_per_employee, employee_count)
		VALUES ('run-1', '2025-01-06', '2025-01-01T10:00:00Z', 7, 2, 4, 5, 10)`)
	require.NoError(t, err)

	var versions int
	require.NoError(t, conn.QueryRow(`SELECT count(*) FROM darwin_migrations`).Scan(&versions))

	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))

	assert.Equal(t, len(Tables), countTables(t, conn))

	var again int
	require.NoError(t, conn.QueryRow(`SELECT count(*) FROM darwin_migrations`).Scan(&again))
	assert.Equal(t, versions, again, "no migration recorded twice")

	var id string
	require.NoError(t, conn.QueryRow(`SELECT id FROM schedule_run`).Scan(&id))
	assert.Equal(t, "run-1", id)
}
