package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Attempt is a locally recorded, completed assessment attempt. The id is
// the runner's client-side attempt UUID; the server id is kept alongside
// for fetching detailed results later.
type Attempt struct {
	ID             string
	AssessmentID   int64
	Subject        string
	Score          float64
	CorrectAnswers int
	TotalQuestions int
	OverallLevel   string
	CompletedAt    time.Time
}

// Store keeps completed attempts in a local SQLite database so past scores
// are browsable without a network round trip.
type Store struct {
	db *sql.DB
}

const attemptsTable = `CREATE TABLE IF NOT EXISTS attempts (
	id              TEXT PRIMARY KEY,
	assessment_id   INTEGER NOT NULL,
	subject         TEXT NOT NULL,
	score           REAL NOT NULL,
	correct_answers INTEGER NOT NULL,
	total_questions INTEGER NOT NULL,
	overall_level   TEXT NOT NULL DEFAULT '',
	completed_at    TEXT NOT NULL
)`

// Open creates a Store backed by the SQLite database at dsn, applying
// recommended pragmas and creating the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(attemptsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one completed attempt.
func (s *Store) Append(ctx context.Context, a Attempt) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO attempts
		(id, assessment_id, subject, score, correct_answers, total_questions, overall_level, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.AssessmentID, a.Subject, a.Score, a.CorrectAnswers, a.TotalQuestions,
		a.OverallLevel, a.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

// Recent returns the most recent attempts, newest first. limit <= 0 means
// all of them.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	q := `SELECT id, assessment_id, subject, score, correct_answers, total_questions, overall_level, completed_at
		FROM attempts ORDER BY completed_at DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var completed string
		if err := rows.Scan(&a.ID, &a.AssessmentID, &a.Subject, &a.Score,
			&a.CorrectAnswers, &a.TotalQuestions, &a.OverallLevel, &completed); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.CompletedAt, _ = time.Parse(time.RFC3339, completed)
		out = append(out, a)
	}
	return out, rows.Err()
}

// applyPragmas configures SQLite for single-user client use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
