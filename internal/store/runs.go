package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/faceswap-tools/faceswap/internal/domain"
)

// DefaultLimit is used by Recent when limit is not positive.
const DefaultLimit = 20

// Begin inserts a run in the running state.
func (s *Store) Begin(run domain.Run) error {
	args, err := json.Marshal(run.Args)
	if err != nil {
		return fmt.Errorf("encode run args: %w", err)
	}
	if run.Args == nil {
		args = []byte("{}")
	}

	status := run.Status
	if status == "" {
		status = domain.RunRunning
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, command, args, started_at, status) VALUES (?, ?, ?, ?, ?)`,
		run.ID,
		run.Command,
		string(args),
		formatTime(run.StartedAt),
		string(status),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// Finish records the outcome of a run started with Begin.
func (s *Store) Finish(id string, status domain.RunStatus, errText string, at time.Time) error {
	res, err := s.db.Exec(
		`UPDATE runs SET status = ?, error = ?, finished_at = ? WHERE id = ?`,
		string(status),
		errText,
		formatTime(at),
		id,
	)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("finish run %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

// Recent returns the newest runs first.
func (s *Store) Recent(limit int) ([]domain.Run, error) {
	return s.Find(domain.RunFilter{Limit: limit})
}

// Find returns the runs matching f, newest first.
func (s *Store) Find(f domain.RunFilter) ([]domain.Run, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := squirrel.Select("id", "command", "args", "started_at", "finished_at", "status", "error").
		From("runs").
		OrderBy("started_at DESC", "id DESC").
		Limit(uint64(limit))
	if f.Command != "" {
		q = q.Where(squirrel.Eq{"command": f.Command})
	}
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"status": string(f.Status)})
	}
	if !f.Since.IsZero() {
		q = q.Where(squirrel.GtOrEq{"started_at": formatTime(f.Since)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build runs query: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func scanRun(rows *sql.Rows) (domain.Run, error) {
	var (
		run      domain.Run
		args     string
		started  string
		finished sql.NullString
		status   string
	)
	if err := rows.Scan(&run.ID, &run.Command, &args, &started, &finished, &status, &run.Error); err != nil {
		return run, fmt.Errorf("scan run: %w", err)
	}

	var err error
	run.Status = domain.RunStatus(status)
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return run, fmt.Errorf("run %s: bad started_at: %w", run.ID, err)
	}
	if finished.Valid {
		t, err := time.Parse(time.RFC3339Nano, finished.String)
		if err != nil {
			return run, fmt.Errorf("run %s: bad finished_at: %w", run.ID, err)
		}
		run.FinishedAt = &t
	}
	if err := json.Unmarshal([]byte(args), &run.Args); err != nil {
		return run, fmt.Errorf("run %s: bad args: %w", run.ID, err)
	}
	return run, nil
}

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
