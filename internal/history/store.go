// Package history persists completed similarity checks to a local SQLite
// database. Only run metadata is stored (paths, score, counts) — never the
// vocabulary or vectors of a run, which stay ephemeral to each scoring
// call.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/liwenhao/simcheck/pkg/core"
)

// Record describes one completed check.
type Record struct {
	ID              string
	OriginalPath    string
	CandidatePath   string
	Score           float64
	OriginalTokens  int
	CandidateTokens int
	VocabSize       int
	CreatedAt       time.Time
}

// Stats summarizes the stored checks.
type Stats struct {
	TotalChecks int
	MeanScore   float64
	MaxScore    float64
}

// Store is a SQLite-backed log of completed checks.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	logger core.Logger
	closed bool
}

// Open opens (creating if necessary) the history database at path.
func Open(path string, logger core.Logger) (*Store, error) {
	if path == "" {
		return nil, wrapError("open", fmt.Errorf("database path cannot be empty"))
	}
	if logger == nil {
		logger = core.NopLogger()
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, wrapError("open", fmt.Errorf("failed to create database directory: %w", err))
		}
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, wrapError("open", fmt.Errorf("failed to open database: %w", err))
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, path: path, logger: logger}
	if err := s.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, wrapError("open", err)
	}

	logger.Debug("history store opened", "path", path)
	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS checks (
		id TEXT PRIMARY KEY,
		original_path TEXT NOT NULL,
		candidate_path TEXT NOT NULL,
		score REAL NOT NULL,
		original_tokens INTEGER NOT NULL,
		candidate_tokens INTEGER NOT NULL,
		vocab_size INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_checks_created_at ON checks(created_at);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Record inserts one check. A missing ID gets a fresh UUID and a zero
// CreatedAt gets the current time; both are written back to rec.
func (s *Store) Record(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return wrapError("record", ErrStoreClosed)
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO checks (id, original_path, candidate_path, score,
			original_tokens, candidate_tokens, vocab_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.OriginalPath, rec.CandidatePath, rec.Score,
		rec.OriginalTokens, rec.CandidateTokens, rec.VocabSize,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return wrapError("record", fmt.Errorf("failed to insert check: %w", err))
	}

	s.logger.Debug("check recorded", "id", rec.ID, "score", rec.Score)
	return nil
}

// Get returns the check with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, wrapError("get", ErrStoreClosed)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, original_path, candidate_path, score,
			original_tokens, candidate_tokens, vocab_size, created_at
		FROM checks WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wrapError("get", ErrNotFound)
		}
		return nil, wrapError("get", err)
	}
	return rec, nil
}

// List returns the most recent checks, newest first. A non-positive limit
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, wrapError("list", ErrStoreClosed)
	}

	query := `SELECT id, original_path, candidate_path, score,
			original_tokens, candidate_tokens, vocab_size, created_at
		FROM checks ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError("list", fmt.Errorf("failed to query checks: %w", err))
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, wrapError("list", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("list", err)
	}
	return records, nil
}

// Stats returns aggregate statistics over all stored checks.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Stats{}, wrapError("stats", ErrStoreClosed)
	}

	var stats Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(MAX(score), 0) FROM checks`,
	).Scan(&stats.TotalChecks, &stats.MeanScore, &stats.MaxScore)
	if err != nil {
		return Stats{}, wrapError("stats", fmt.Errorf("failed to aggregate checks: %w", err))
	}
	return stats, nil
}

// Clear removes all stored checks.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return wrapError("clear", ErrStoreClosed)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM checks`); err != nil {
		return wrapError("clear", fmt.Errorf("failed to delete checks: %w", err))
	}

	s.logger.Debug("history cleared", "path", s.path)
	return nil
}

// Close closes the underlying database. Further calls on the store return
// ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return wrapError("close", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var createdAt string
	if err := row.Scan(&rec.ID, &rec.OriginalPath, &rec.CandidatePath, &rec.Score,
		&rec.OriginalTokens, &rec.CandidateTokens, &rec.VocabSize, &createdAt); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = ts
	return &rec, nil
}
