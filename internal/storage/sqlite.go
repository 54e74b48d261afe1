// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-1024/internal/engine"
	"github.com/vovakirdan/tui-1024/internal/stats"
)

// Store manages the SQLite database connection for game records.
type Store struct {
	db *sql.DB
}

// Summary aggregates all stored games.
type Summary struct {
	Games      int
	Wins       int
	BestScore  int
	AvgSteps   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// created_at holds Unix milliseconds so ordering by date is numeric.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			board_size INTEGER NOT NULL,
			target_score INTEGER NOT NULL,
			score INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_score ON records(score);
		CREATE INDEX IF NOT EXISTS idx_records_steps ON records(steps);
		CREATE INDEX IF NOT EXISTS idx_records_created ON records(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRecord stores a finished game. It satisfies stats.Sink.
func (s *Store) SaveRecord(r stats.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO records (id, board_size, target_score, score, steps, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.BoardSize, r.Target, r.Score, r.Steps, string(r.Outcome), r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	return nil
}

// orderColumns whitelists the columns records may be ordered by.
var orderColumns = map[stats.SortField]string{
	stats.SortBySteps: "steps",
	stats.SortByScore: "score",
	stats.SortByDate:  "created_at",
}

// Records retrieves stored games ordered by field.
// Ties keep insertion order. A limit <= 0 returns everything.
func (s *Store) Records(field stats.SortField, order stats.SortOrder, limit int) ([]stats.Record, error) {
	col, ok := orderColumns[field]
	if !ok {
		return nil, fmt.Errorf("storage: unknown sort field %v", field)
	}
	dir := "ASC"
	if order == stats.Descending {
		dir = "DESC"
	}
	if limit <= 0 {
		limit = -1
	}

	query := fmt.Sprintf(
		`SELECT id, board_size, target_score, score, steps, outcome, created_at
		 FROM records
		 ORDER BY %s %s, rowid ASC
		 LIMIT ?`, col, dir)

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var records []stats.Record
	for rows.Next() {
		var r stats.Record
		var outcome string
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.BoardSize, &r.Target, &r.Score, &r.Steps, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = engine.Outcome(outcome)
		r.CreatedAt = time.UnixMilli(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summary aggregates every stored game.
// An empty store yields a zero Summary.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	var best, last sql.NullInt64
	var avg sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        MAX(score), AVG(steps), MAX(created_at)
		 FROM records`,
		string(engine.Won),
	).Scan(&sum.Games, &sum.Wins, &best, &avg, &last)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot query summary: %w", err)
	}

	if best.Valid {
		sum.BestScore = int(best.Int64)
	}
	if avg.Valid {
		sum.AvgSteps = avg.Float64
	}
	if last.Valid {
		sum.LastPlayed = time.UnixMilli(last.Int64)
	}
	return sum, nil
}

// Clear deletes all stored games.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM records")
	if err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}
