package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/waypoint/internal/db"
	"github.com/alexanderramin/waypoint/internal/domain"
)

// SQLiteRunRepo implements RunRepo. It accepts any DBTX so it can be built
// inside a UnitOfWork transaction.
type SQLiteRunRepo struct {
	db db.DBTX
}

func NewSQLiteRunRepo(tx db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: tx}
}

const runColumns = `id, session_id, project_root, checklist_path, level, usage, transcript_lines,
	change_source, changed_count, applied_count, percent, skip_reason, started_at`

// Create inserts the run and its files. Callers wanting atomicity should
// build the repo from a transaction.
func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.Run) error {
	query := `INSERT INTO runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.SessionID,
		run.ProjectRoot,
		run.ChecklistPath,
		run.Level.String(),
		run.Usage,
		run.TranscriptLines,
		string(run.ChangeSource),
		run.ChangedCount,
		run.AppliedCount,
		run.Percent,
		run.SkipReason,
		formatTime(run.StartedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for i, f := range run.Files {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO run_files (run_id, position, path, name, mutation, error) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, f.Path, f.Name, string(f.Mutation), f.Error,
		)
		if err != nil {
			return fmt.Errorf("inserting run file %s: %w", f.Path, err)
		}
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	files, err := r.listFiles(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Files = files
	return run, nil
}

// ListRecent returns the newest runs first. An empty projectRoot lists
// runs from every project. Files are not loaded.
func (r *SQLiteRunRepo) ListRecent(ctx context.Context, projectRoot string, limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + runColumns + ` FROM runs
		WHERE (? = '' OR project_root = ?)
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, projectRoot, projectRoot, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// Prune trims a project's history to its newest keep runs and returns
// how many were removed. Their files go with them via the cascade.
func (r *SQLiteRunRepo) Prune(ctx context.Context, projectRoot string, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs
		WHERE project_root = ?
		  AND id NOT IN (
			SELECT id FROM runs WHERE project_root = ?
			ORDER BY started_at DESC, rowid DESC LIMIT ?
		  )`, projectRoot, projectRoot, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned runs: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteRunRepo) listFiles(ctx context.Context, runID string) ([]domain.RunFile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT path, name, mutation, error FROM run_files WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run files: %w", err)
	}
	defer rows.Close()

	var files []domain.RunFile
	for rows.Next() {
		var f domain.RunFile
		var mutation string
		if err := rows.Scan(&f.Path, &f.Name, &mutation, &f.Error); err != nil {
			return nil, fmt.Errorf("scanning run file: %w", err)
		}
		f.Mutation = domain.Mutation(mutation)
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run files: %w", err)
	}
	return files, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var level, source, startedAt string

	err := row.Scan(
		&run.ID, &run.SessionID, &run.ProjectRoot, &run.ChecklistPath, &level, &run.Usage,
		&run.TranscriptLines, &source, &run.ChangedCount, &run.AppliedCount, &run.Percent,
		&run.SkipReason, &startedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if run.Level, err = domain.ParseResourceLevel(level); err != nil {
		return nil, fmt.Errorf("parsing level: %w", err)
	}
	run.ChangeSource = domain.ChangeSource(source)
	if run.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
		return nil, err
	}
	return &run, nil
}
