// Package storage provides SQLite-based persistence for puzzle results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mkravets/floodlock/internal/engine"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result records the outcome of one finished puzzle session.
type Result struct {
	ID        int64
	PuzzleID  string
	Moves     int
	Par       int
	Status    engine.Status
	HintsUsed int
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all stored results.
type Stats struct {
	Played    int
	Solved    int
	Lost      int
	BestMoves int // Lowest winning move count; 0 if never solved
	AvgMoves  float64
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			par INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			hints_used INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_puzzle_id ON results(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_results_recent ON results(created_at DESC);
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

// statusLabel maps a game status to its stored text form.
func statusLabel(st engine.Status) string {
	switch st {
	case engine.StatusSolved:
		return "solved"
	case engine.StatusLost:
		return "lost"
	default:
		return "abandoned"
	}
}

// parseStatus is the inverse of statusLabel.
func parseStatus(label string) engine.Status {
	switch label {
	case "solved":
		return engine.StatusSolved
	case "lost":
		return engine.StatusLost
	default:
		return engine.StatusInProgress
	}
}

// SaveResult records a finished session. Returns the ID of the inserted row.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (puzzle_id, moves, par, status, hints_used) VALUES (?, ?, ?, ?, ?)",
		r.PuzzleID, r.Moves, r.Par, statusLabel(r.Status), r.HintsUsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// ResultFor retrieves the most recent result for a puzzle.
// Returns nil if the puzzle has never been finished.
func (s *Store) ResultFor(puzzleID string) (*Result, error) {
	row := s.db.QueryRow(
		`SELECT id, puzzle_id, moves, par, status, hints_used, created_at
		 FROM results
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		puzzleID,
	)

	r, err := scanResult(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// RecentResults retrieves the most recent results across all puzzles.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, moves, par, status, hints_used, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// GetStats retrieves aggregated statistics over all stored results.
func (s *Store) GetStats() (Stats, error) {
	var stats Stats
	var best sql.NullInt64
	var avg sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'solved' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status = 'lost' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN status = 'solved' THEN moves END),
		        AVG(moves)
		 FROM results`,
	).Scan(&stats.Played, &stats.Solved, &stats.Lost, &best, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if best.Valid {
		stats.BestMoves = int(best.Int64)
	}
	if avg.Valid {
		stats.AvgMoves = avg.Float64
	}
	return stats, nil
}

// scanTarget abstracts sql.Row and sql.Rows for scanResult.
type scanTarget interface {
	Scan(dest ...any) error
}

// scanResult reads one result row, tolerating both time.Time and string
// datetime representations from the driver.
func scanResult(row scanTarget) (Result, error) {
	var r Result
	var status string
	var createdAt any

	if err := row.Scan(&r.ID, &r.PuzzleID, &r.Moves, &r.Par, &status, &r.HintsUsed, &createdAt); err != nil {
		return Result{}, err
	}

	r.Status = parseStatus(status)

	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
