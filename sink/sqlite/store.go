// Package sqlite persists validation runs and their notices to a SQLite
// database so results of successive runs can be compared.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

var schema = []string{`CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	input      TEXT NOT NULL,
	started_at TEXT NOT NULL,
	errors     INTEGER NOT NULL,
	warnings   INTEGER NOT NULL
)`, `CREATE TABLE IF NOT EXISTS notices (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	seq         INTEGER NOT NULL,
	code        TEXT NOT NULL,
	severity    TEXT NOT NULL,
	filename    TEXT NOT NULL,
	entity_id   TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	payload     BLOB,
	PRIMARY KEY (run_id, seq)
)`}

// Store writes runs to a SQLite file.
type Store struct {
	db   *sql.DB
	path string
}

// Run is a stored validation run.
type Run struct {
	ID        string
	Input     string
	StartedAt time.Time
	Errors    int
	Warnings  int
}

// StoredNotice is a notice row read back from the store.
type StoredNotice struct {
	Code     string
	Severity notice.Severity
	Filename string
	EntityID string
	Title    string
	Payload  map[string]any
}

// Open creates or opens the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "gtfs-validator.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Path() string { return s.path }

// SaveRun stores run and its notices in one transaction.
func (s *Store) SaveRun(ctx context.Context, run Run, notices []notice.Notice) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, input, started_at, errors, warnings) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Input, run.StartedAt.UTC().Format(time.RFC3339Nano), run.Errors, run.Warnings,
	); err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO notices
		(run_id, seq, code, severity, filename, entity_id, title, description, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare notice insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, n := range notices {
		payload, err := json.Marshal(n.Specific())
		if err != nil {
			return fmt.Errorf("encode notice %d payload: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, run.ID, i, n.Code(), string(n.Severity()),
			n.Filename(), n.EntityID(), n.Title(), n.Description(), payload); err != nil {
			return fmt.Errorf("insert notice %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Runs returns the stored runs, most recent first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, started_at, errors, warnings FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started string
		)
		if err := rows.Scan(&r.ID, &r.Input, &started, &r.Errors, &r.Warnings); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at of run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Notices returns the notices of a run in emission order.
func (s *Store) Notices(ctx context.Context, runID string) ([]StoredNotice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code, severity, filename, entity_id, title, payload
		FROM notices WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("select notices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []StoredNotice
	for rows.Next() {
		var (
			n        StoredNotice
			severity string
			payload  []byte
		)
		if err := rows.Scan(&n.Code, &severity, &n.Filename, &n.EntityID, &n.Title, &payload); err != nil {
			return nil, fmt.Errorf("scan notice: %w", err)
		}
		n.Severity = notice.Severity(severity)
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &n.Payload); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
