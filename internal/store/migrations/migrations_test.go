package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/faceswap-tools/faceswap/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_Ordered(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.NotEmpty(t, all)
	require.Equal(t, 1, all[0].Version)
	require.Equal(t, "create_runs", all[0].Description)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemory(t)

	v0, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Zero(t, v0)

	require.NoError(t, migrations.Run(db))
	v1, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	all, err := migrations.Load()
	require.NoError(t, err)
	require.Equal(t, all[len(all)-1].Version, v1)

	require.NoError(t, migrations.Run(db))
	v2, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, v1, v2)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	require.Equal(t, len(all), count)
}

func TestRun_CreatesRunsTable(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	_, err := db.Exec(`INSERT INTO runs (id, command, started_at, status) VALUES ('a', 'extract', '2024-01-01T00:00:00Z', 'running')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO runs (id, command, started_at, status) VALUES ('b', 'extract', '2024-01-01T00:00:00Z', 'paused')`)
	require.Error(t, err)
}
