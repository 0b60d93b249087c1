// Package storage provides SQLite-based persistence for finished game
// results. Sessions themselves are never stored or resumed; only the
// outcome of a completed game is recorded, for the stats command.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result records the outcome of one finished game.
type Result struct {
	ID         int64
	Won        bool
	Rounds     int // Guesses used (equals history length at game end)
	WordLength int
	Answer     string
	CreatedAt  time.Time
}

// Stats contains aggregated win/loss statistics.
type Stats struct {
	Played        int
	Wins          int
	WinRate       float64
	CurrentStreak int
	BestStreak    int
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			won INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			word_length INTEGER NOT NULL,
			answer TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at);
		CREATE INDEX IF NOT EXISTS idx_results_won ON results(won, rounds);
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

// SaveResult records the outcome of a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(won bool, rounds, wordLength int, answer string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (won, rounds, word_length, answer) VALUES (?, ?, ?, ?)",
		boolToInt(won), rounds, wordLength, answer,
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

// GetStats returns aggregated win/loss statistics across all recorded
// games. Streaks are computed over results in play order.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(won), 0) FROM results",
	).Scan(&stats.Played, &stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if stats.Played > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.Played)
	}

	rows, err := s.db.Query("SELECT won FROM results ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	streak := 0
	for rows.Next() {
		var won int
		if err := rows.Scan(&won); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if won != 0 {
			streak++
			if streak > stats.BestStreak {
				stats.BestStreak = streak
			}
		} else {
			streak = 0
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	stats.CurrentStreak = streak

	return stats, nil
}

// Distribution returns how many wins took 1..maxRounds guesses.
// Index 0 holds one-guess wins.
func (s *Store) Distribution(maxRounds int) ([]int, error) {
	if maxRounds <= 0 {
		maxRounds = 6
	}

	rows, err := s.db.Query(
		"SELECT rounds, COUNT(*) FROM results WHERE won = 1 GROUP BY rounds",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query distribution: %w", err)
	}
	defer rows.Close()

	dist := make([]int, maxRounds)
	for rows.Next() {
		var rounds, count int
		if err := rows.Scan(&rounds, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if rounds >= 1 && rounds <= maxRounds {
			dist[rounds-1] = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return dist, nil
}

// RecentResults retrieves the most recent finished games.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, won, rounds, word_length, answer, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var won int
		var createdAt any
		if err := rows.Scan(&r.ID, &won, &r.Rounds, &r.WordLength, &r.Answer, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Clear deletes all recorded results.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
