// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/store"
	"github.com/faceswap-tools/faceswap/internal/store/migrations"
)

// NewTestStore returns a migrated in-memory store closed at test end.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db), "failed to run migrations")
	return store.NewWithDB(db)
}

// SeedRuns inserts finished runs, one minute apart starting at base.
func SeedRuns(t *testing.T, s domain.RunStore, base time.Time, commands ...string) []domain.Run {
	t.Helper()

	runs := make([]domain.Run, 0, len(commands))
	for i, cmd := range commands {
		run := domain.Run{
			ID:        fmt.Sprintf("%s-%d", cmd, i),
			Command:   cmd,
			Args:      map[string]any{"index": float64(i)},
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.Begin(run))
		finished := run.StartedAt.Add(30 * time.Second)
		require.NoError(t, s.Finish(run.ID, domain.RunSuccess, "", finished))
		run.Status = domain.RunSuccess
		run.FinishedAt = &finished
		runs = append(runs, run)
	}
	return runs
}
