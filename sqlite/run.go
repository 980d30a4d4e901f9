package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/papersect"
	"github.com/google/uuid"
)

// RunService stores crawl runs.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run, assigning its ID and start time when unset.
func (s *RunService) CreateRun(ctx context.Context, run *papersect.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, seed_url, mode, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.SeedURL, run.Mode, timestamp(run.StartedAt))
	return err
}

// FindRunByID retrieves a run by its ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*papersect.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, mode, started_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, papersect.Errorf(papersect.ENOTFOUND, "run not found")
	}
	return run, err
}

// FindRuns retrieves runs, newest first. Pass limit <= 0 for all runs.
func (s *RunService) FindRuns(ctx context.Context, limit, offset int) ([]*papersect.Run, error) {
	var query strings.Builder
	query.WriteString("SELECT id, seed_url, mode, started_at FROM runs ORDER BY started_at DESC, id")
	var args []any
	clause, extra := limitClause(limit, offset)
	query.WriteString(clause)
	args = append(args, extra...)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*papersect.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run together with its records and sections.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return papersect.Errorf(papersect.ENOTFOUND, "run not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*papersect.Run, error) {
	var run papersect.Run
	var startedAt string
	if err := row.Scan(&run.ID, &run.SeedURL, &run.Mode, &startedAt); err != nil {
		return nil, err
	}
	t, err := parseTimestamp("started_at", startedAt)
	if err != nil {
		return nil, err
	}
	run.StartedAt = t
	return &run, nil
}
