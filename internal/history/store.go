// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists completed review runs in a SQLite database so
// they can be listed and re-exported later. Stored summaries are never fed
// back into the pipeline; this is an archive, not a response cache.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/litreview/pkg/types"
)

const dbFile = "reviews.db"

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dir/reviews.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "history"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic TEXT NOT NULL,
			model TEXT NOT NULL,
			requested INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			authors TEXT,
			published TEXT,
			pdf_url TEXT,
			abstract TEXT,
			summary TEXT,
			failed INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run_id ON results(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveRun stores a completed run and returns its assigned ID.
func (s *Store) SaveRun(ctx context.Context, run types.ReviewRun) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (topic, model, requested, created_at) VALUES (?, ?, ?, ?)`,
		run.Topic, run.Model, run.Requested, run.GeneratedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	for i, r := range run.Results {
		authors, err := json.Marshal(r.Paper.Authors)
		if err != nil {
			return 0, fmt.Errorf("marshaling authors: %w", err)
		}
		published := ""
		if !r.Paper.Published.IsZero() {
			published = r.Paper.Published.UTC().Format(time.RFC3339)
		}
		failed := 0
		if r.Failed {
			failed = 1
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO results (run_id, position, title, authors, published, pdf_url, abstract, summary, failed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, r.Paper.Title, string(authors), published, r.Paper.PDFURL, r.Paper.Abstract, r.Summary, failed); err != nil {
			return 0, fmt.Errorf("inserting result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]types.RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.topic, r.model, r.requested, r.created_at,
		       COUNT(res.run_id), COALESCE(SUM(res.failed), 0)
		FROM runs r
		LEFT JOIN results res ON res.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC, r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var summaries []types.RunSummary
	for rows.Next() {
		var sum types.RunSummary
		var createdAt string
		if err := rows.Scan(&sum.ID, &sum.Topic, &sum.Model, &sum.Requested, &createdAt, &sum.Papers, &sum.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			sum.CreatedAt = t
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// GetRun reconstructs a stored run, results in their original order.
func (s *Store) GetRun(ctx context.Context, id int64) (types.ReviewRun, error) {
	var run types.ReviewRun
	var createdAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT topic, model, requested, created_at FROM runs WHERE id = ?`, id).
		Scan(&run.Topic, &run.Model, &run.Requested, &createdAt)
	if err == sql.ErrNoRows {
		return types.ReviewRun{}, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return types.ReviewRun{}, fmt.Errorf("querying run %d: %w", id, err)
	}
	if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
		run.GeneratedAt = t
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, authors, published, pdf_url, abstract, summary, failed
		 FROM results WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return types.ReviewRun{}, fmt.Errorf("querying results for run %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var r types.ReviewResult
		var authors, published string
		var failed int
		if err := rows.Scan(&r.Paper.Title, &authors, &published, &r.Paper.PDFURL, &r.Paper.Abstract, &r.Summary, &failed); err != nil {
			return types.ReviewRun{}, fmt.Errorf("scanning result: %w", err)
		}
		if authors != "" {
			if err := json.Unmarshal([]byte(authors), &r.Paper.Authors); err != nil {
				return types.ReviewRun{}, fmt.Errorf("unmarshaling authors: %w", err)
			}
		}
		if published != "" {
			if t, parseErr := time.Parse(time.RFC3339, published); parseErr == nil {
				r.Paper.Published = t
			}
		}
		r.Failed = failed != 0
		run.Results = append(run.Results, r)
	}
	return run, rows.Err()
}
