// Package storage keeps a history of finished snake sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Rows are written once when a session ends and are never fed back into
// a running simulation.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection for session history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// SessionResult is the summary of one finished session.
type SessionResult struct {
	GameID   string
	Player   string // Local user or SSH user name
	Score    int    // Food eaten
	Length   int    // Final chain length
	Ticks    uint64 // Movement steps taken
	Duration time.Duration
}

// Session is a stored session row.
type Session struct {
	ID        string
	GameID    string
	Player    string
	Score     int
	Length    int
	Ticks     uint64
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats aggregates the sessions of one game.
type Stats struct {
	GameID       string
	Sessions     int
	HighScore    int
	AvgScore     float64
	LongestChain int
	TotalTicks   int64
	TotalTime    time.Duration
	LastPlayed   time.Time
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

	store := &Store{db: db, now: time.Now}
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
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(game_id, created_at DESC);
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

// SaveSession records a finished session and returns its generated ID.
func (s *Store) SaveSession(r SessionResult) (string, error) {
	if r.GameID == "" {
		return "", errors.New("storage: session without game id")
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, game_id, player, score, length, ticks, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.Player, r.Score, r.Length, int64(r.Ticks),
		r.Duration.Milliseconds(), s.now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return id, nil
}

const sessionColumns = `id, game_id, player, score, length, ticks, duration_ms, created_at`

// TopSessions returns the best sessions for a game, highest score first.
// Ties go to the longer chain, then to the earlier session.
func (s *Store) TopSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE game_id = ?
		 ORDER BY score DESC, length DESC, created_at ASC, rowid ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentSessions returns the latest sessions for a game, newest first.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			e          Session
			ticks      int64
			durationMS int64
			createdAt  int64
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Length, &ticks, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = time.UnixMilli(createdAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearSessions deletes all sessions for the given game and returns how
// many were removed.
func (s *Store) ClearSessions(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared sessions: %w", err)
	}
	return n, nil
}

// Stats returns aggregated statistics for a game. A game with no
// sessions yields zero values.
func (s *Store) Stats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var (
		totalMS    int64
		lastPlayed sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(length), 0), COALESCE(SUM(ticks), 0),
		        COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Sessions, &stats.HighScore, &stats.AvgScore,
		&stats.LongestChain, &stats.TotalTicks, &totalMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalMS) * time.Millisecond
	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}
	return stats, nil
}
