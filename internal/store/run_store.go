// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     store
// Description: SQLite run history
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package store keeps the history of program runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/lang"
	"github.com/msto63/cleanworld/pkg/core/config"
)

// RunSummary is the indexed part of a stored run
type RunSummary struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Program    string      `json:"program" yaml:"program"`
	SourceSHA  string      `json:"source_sha256" yaml:"source_sha256"`
	Status     lang.Status `json:"status" yaml:"status"`
	Outputs    int         `json:"outputs" yaml:"outputs"`
	Cleaned    int         `json:"cleaned" yaml:"cleaned"`
	Steps      int         `json:"steps" yaml:"steps"`
	StartedAt  time.Time   `json:"started_at" yaml:"started_at"`
	DurationMS int64       `json:"duration_ms" yaml:"duration_ms"`
}

// Run is a stored run with its source and full result
type Run struct {
	RunSummary
	Source string       `json:"source" yaml:"source"`
	Result *lang.Result `json:"result" yaml:"result"`
}

// RunFilter defines criteria for listing runs
type RunFilter struct {
	Name   string
	Status lang.Status
	Since  time.Time
	Limit  int
	Offset int
}

// RunStore defines the interface for run persistence
type RunStore interface {
	Record(ctx context.Context, res *lang.Result, source string) error
	Get(ctx context.Context, id string) (*Run, error)
	List(ctx context.Context, filter RunFilter) ([]*RunSummary, error)
	Delete(ctx context.Context, id string) error
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Stats(ctx context.Context) (map[string]int64, error)
	Close() error
}

// SQLiteRunStore implements RunStore using SQLite
type SQLiteRunStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteRunConfig holds configuration for the SQLite store
type SQLiteRunConfig struct {
	Path string
}

// DefaultRunConfig returns default configuration
func DefaultRunConfig() SQLiteRunConfig {
	return SQLiteRunConfig{
		Path: config.DefaultStorePath,
	}
}

// NewSQLiteRunStore opens or creates the run database
func NewSQLiteRunStore(cfg SQLiteRunConfig) (*SQLiteRunStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database")
	}

	store := &SQLiteRunStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema")
	}

	return store, nil
}

func (s *SQLiteRunStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		program TEXT NOT NULL,
		source_sha256 TEXT NOT NULL,
		status TEXT NOT NULL,
		outputs INTEGER NOT NULL,
		cleaned INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		source TEXT NOT NULL,
		result TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_name ON runs(name);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a finished run
func (s *SQLiteRunStore) Record(ctx context.Context, res *lang.Result, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.RunID == "" {
		return cwerr.New("run has no id").WithCode(cwerr.CodeInvalidInput)
	}

	resultJSON, err := json.Marshal(res)
	if err != nil {
		return cwerr.Wrap(err, "failed to encode result").WithCode(cwerr.CodeInternal)
	}

	cleaned := 0
	if res.Final != nil {
		cleaned = res.Final.Cleaned
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, name, program, source_sha256, status, outputs, cleaned, steps,
			started_at, duration_ms, source, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, res.RunID, res.Name, res.Program, res.SourceSHA, string(res.Status), len(res.Outputs), cleaned,
		res.Steps, res.StartedAt.UTC(), res.DurationMS, source, string(resultJSON))
	if err != nil {
		return dbError(err, "failed to insert run")
	}

	return nil
}

const summaryColumns = `id, name, program, source_sha256, status, outputs, cleaned, steps, started_at, duration_ms`

// Get returns the run whose id is id or starts with id. A prefix that
// matches several runs is rejected.
func (s *SQLiteRunStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id == "" {
		return nil, cwerr.New("run id is empty").WithCode(cwerr.CodeInvalidInput)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+summaryColumns+`, source, result FROM runs
		WHERE id = ? OR id LIKE ? ESCAPE '\'
		ORDER BY id = ? DESC
		LIMIT 2
	`, id, escapeLike(id)+"%", id)
	if err != nil {
		return nil, dbError(err, "failed to query run")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var resultJSON string
		if err := rows.Scan(append(summaryDest(&run.RunSummary), &run.Source, &resultJSON)...); err != nil {
			return nil, dbError(err, "failed to scan run")
		}
		run.Result = &lang.Result{}
		if err := json.Unmarshal([]byte(resultJSON), run.Result); err != nil {
			return nil, cwerr.Wrap(err, "failed to decode stored result").
				WithCode(cwerr.CodeDatabaseError).
				WithDetail("run_id", run.ID)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read runs")
	}

	switch {
	case len(runs) == 0:
		return nil, cwerr.Newf("run not found: %s", id).WithCode(cwerr.CodeNotFound)
	case len(runs) > 1 && runs[0].ID != id:
		return nil, cwerr.Newf("run id prefix %q is ambiguous", id).WithCode(cwerr.CodeInvalidInput)
	}
	return runs[0], nil
}

// List returns run summaries, newest first
func (s *SQLiteRunStore) List(ctx context.Context, filter RunFilter) ([]*RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT ` + summaryColumns + ` FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Name != "" {
		query += " AND name = ?"
		args = append(args, filter.Name)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if !filter.Since.IsZero() {
		query += " AND started_at >= ?"
		args = append(args, filter.Since.UTC())
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query runs")
	}
	defer rows.Close()

	var runs []*RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(summaryDest(&r)...); err != nil {
			return nil, dbError(err, "failed to scan run")
		}
		runs = append(runs, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read runs")
	}
	return runs, nil
}

// Delete removes one run by its full id
func (s *SQLiteRunStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return dbError(err, "failed to delete run")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return cwerr.Newf("run not found: %s", id).WithCode(cwerr.CodeNotFound)
	}
	return nil
}

// Prune removes runs started before now minus olderThan
func (s *SQLiteRunStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, dbError(err, "failed to prune runs")
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Stats counts runs in total and per status
func (s *SQLiteRunStore) Stats(ctx context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]int64)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&total); err != nil {
		return nil, dbError(err, "failed to count runs")
	}
	stats["total"] = total

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM runs GROUP BY status`)
	if err != nil {
		return nil, dbError(err, "failed to count runs by status")
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, dbError(err, "failed to scan status count")
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

// Close closes the database connection
func (s *SQLiteRunStore) Close() error {
	return s.db.Close()
}

func summaryDest(r *RunSummary) []interface{} {
	return []interface{}{
		&r.ID, &r.Name, &r.Program, &r.SourceSHA, &r.Status,
		&r.Outputs, &r.Cleaned, &r.Steps, &r.StartedAt, &r.DurationMS,
	}
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

func dbError(err error, msg string) error {
	return cwerr.Wrap(err, msg).WithCode(cwerr.CodeDatabaseError)
}
