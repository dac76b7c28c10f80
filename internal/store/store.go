// Package store handles SQLite persistence of report runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/letterdist/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("run not found")

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			input_path TEXT NOT NULL,
			column_name TEXT NOT NULL,
			words INTEGER NOT NULL,
			output_path TEXT NOT NULL,
			format TEXT NOT NULL,
			outcome TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_letter_buckets (
			run_id INTEGER NOT NULL,
			letter TEXT NOT NULL,
			occurrences INTEGER NOT NULL,
			words INTEGER NOT NULL,
			PRIMARY KEY (run_id, letter, occurrences)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a run summary and its full, unbounded histograms.
func (s *Store) InsertRun(ctx context.Context, run model.RunSummary, dists model.Distributions) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, input_path, column_name, words, output_path, format, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.Input,
		run.Column,
		run.Words,
		run.Output,
		run.Format,
		run.Outcome,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_letter_buckets (run_id, letter, occurrences, words) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, ld := range dists {
		for _, b := range ld.Histogram {
			if _, err = stmt.ExecContext(ctx, id, ld.Letter, b.Occurrences, b.Words); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first. A non-positive limit returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]model.RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, input_path, column_name, words, output_path, format, outcome
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunSummary
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetRun returns a run summary by id.
func (s *Store) GetRun(ctx context.Context, id int64) (model.RunSummary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, input_path, column_name, words, output_path, format, outcome
		FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RunSummary{}, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	return run, err
}

// GetRunDistributions loads the histograms of a run in letter order.
func (s *Store) GetRunDistributions(ctx context.Context, id int64) (model.Distributions, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT letter, occurrences, words
		FROM run_letter_buckets
		WHERE run_id = ?
		ORDER BY letter ASC, occurrences ASC`, id)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	dists := model.Distributions{}
	for rows.Next() {
		var letter string
		var b model.Bucket
		if err := rows.Scan(&letter, &b.Occurrences, &b.Words); err != nil {
			return nil, err
		}
		if n := len(dists); n == 0 || dists[n-1].Letter != letter {
			dists = append(dists, model.LetterDistribution{Letter: letter})
		}
		last := &dists[len(dists)-1]
		last.Histogram = append(last.Histogram, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (model.RunSummary, error) {
	var run model.RunSummary
	var createdAt string
	if err := row.Scan(&run.RunID, &createdAt, &run.Input, &run.Column, &run.Words, &run.Output, &run.Format, &run.Outcome); err != nil {
		return model.RunSummary{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.RunSummary{}, err
	}
	run.CreatedAt = parsed
	return run, nil
}
