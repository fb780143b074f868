// Package storage provides SQLite-based persistence for simulation session
// records. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionEntry is one recorded simulation session. Only run metadata is
// stored; board patterns are never persisted.
type SessionEntry struct {
	ID              int64
	Pattern         string // Seed pattern ID, empty for a blank board
	Generations     int
	PeakPopulation  int
	FinalPopulation int
	DurationSecs    int
	CreatedAt       time.Time
}

// SessionStats contains aggregated statistics over all recorded sessions.
type SessionStats struct {
	Sessions        int
	MaxGenerations  int
	AvgGenerations  float64
	MaxPeak         int
	TotalGeneration int64
	LastPlayed      time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pattern TEXT NOT NULL DEFAULT '',
			generations INTEGER NOT NULL,
			peak_population INTEGER NOT NULL,
			final_population INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_generations ON sessions(generations DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(e SessionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (pattern, generations, peak_population, final_population, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Pattern, e.Generations, e.PeakPopulation, e.FinalPopulation, e.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, pattern, generations, peak_population, final_population, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// LongestRuns retrieves the sessions with the most generations, descending.
func (s *Store) LongestRuns(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, pattern, generations, peak_population, final_population, duration_secs, created_at
		 FROM sessions
		 ORDER BY generations DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pattern, &e.Generations, &e.PeakPopulation,
			&e.FinalPopulation, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics over all recorded sessions.
func (s *Store) Stats() (*SessionStats, error) {
	stats := &SessionStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(generations), 0), COALESCE(AVG(generations), 0),
		        COALESCE(MAX(peak_population), 0), COALESCE(SUM(generations), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.MaxGenerations, &stats.AvgGenerations,
		&stats.MaxPeak, &stats.TotalGeneration)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
