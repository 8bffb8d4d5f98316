// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runlog persists finished pipeline runs to a SQLite database so
// operators can audit what was generated, what the gate decided, and how
// many retries each input consumed.
package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/listing-engine/pkg/types"
)

const dbFile = "runs.db"

// ErrNotFound is returned when no run exists for the requested id.
var ErrNotFound = errors.New("run not found")

// Run is one recorded pipeline execution.
type Run struct {
	// ID is the run identifier (UUID).
	ID string `json:"id"`

	// CreatedAt is the completion time, UTC.
	CreatedAt time.Time `json:"created_at"`

	// Language is the input record's language tag.
	Language string `json:"language,omitempty"`

	// Input is the input record as JSON.
	Input string `json:"input"`

	// Passed mirrors the final verdict for cheap filtering.
	Passed bool `json:"passed"`

	// Score is the final overall score.
	Score float64 `json:"score"`

	// Attempts is the number of retries consumed.
	Attempts int `json:"attempts"`

	// Verdict is the full final verdict as JSON.
	Verdict string `json:"verdict"`

	// HTML is the rendered output for accepted runs, "" otherwise.
	HTML string `json:"html,omitempty"`
}

// Store manages the run-log SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the run-log database at dir/runs.db, creating the
// schema if it does not exist.
func Open(cfg types.RunLogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run-log directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening run-log database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating run-log schema: %w", err)
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
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			language TEXT,
			input TEXT NOT NULL,
			passed INTEGER NOT NULL,
			score REAL NOT NULL,
			attempts INTEGER NOT NULL,
			verdict TEXT NOT NULL,
			html TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_passed ON runs(passed)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a finished run and returns its generated id.
func (s *Store) Record(ctx context.Context, rec types.InputRecord, res *types.Result) (string, error) {
	input, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("serializing input record: %w", err)
	}
	verdict, err := json.Marshal(res.Verdict)
	if err != nil {
		return "", fmt.Errorf("serializing verdict: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, language, input, passed, score, attempts, verdict, html)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		time.Now().UTC().Format(time.RFC3339Nano),
		rec.Language(),
		string(input),
		res.Verdict.Passed,
		res.Verdict.Score,
		res.Attempts,
		string(verdict),
		res.HTML,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first, up to limit.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, language, input, passed, score, attempts, verdict, html
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns one run by id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, language, input, passed, score, attempts, verdict, html
		 FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	return run, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var createdAt string
	var html sql.NullString
	if err := row.Scan(&run.ID, &createdAt, &run.Language, &run.Input,
		&run.Passed, &run.Score, &run.Attempts, &run.Verdict, &html); err != nil {
		return Run{}, err
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		run.CreatedAt = t
	}
	run.HTML = html.String
	return run, nil
}
