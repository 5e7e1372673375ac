// Package storage provides the SQLite play journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// End reasons recorded for a finished game.
const (
	EndGameOver = "game_over"
	EndQuit     = "quit"
)

// DefaultTickRate is assumed for records saved without a tick rate.
const DefaultTickRate = 60

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished game in the journal.
type SessionRecord struct {
	ID        int64
	SessionID string // Groups the games played in one program run or SSH connection
	Mode      string
	Lines     int
	Pieces    int
	Holds     int
	Ticks     int64
	TickRate  int    // Ticks per second the game ran at
	EndReason string // EndGameOver or EndQuit
	CreatedAt time.Time
}

// Duration is the simulated time the game lasted.
func (r SessionRecord) Duration() time.Duration {
	rate := r.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Duration(r.Ticks) * time.Second / time.Duration(rate)
}

// ModeTotals aggregates the journal for one mode.
type ModeTotals struct {
	Mode       string
	Sessions   int
	Lines      int64
	Pieces     int64
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			pieces INTEGER NOT NULL DEFAULT 0,
			holds INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			tick_rate INTEGER NOT NULL DEFAULT 60,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode);
		CREATE INDEX IF NOT EXISTS idx_sessions_session_id ON sessions(session_id);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Journals created before tick_rate was recorded ran at the default rate.
	var hasTickRate int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info('sessions') WHERE name = 'tick_rate'`,
	).Scan(&hasTickRate); err != nil {
		return err
	}
	if hasTickRate == 0 {
		if _, err := s.db.Exec(`ALTER TABLE sessions ADD COLUMN tick_rate INTEGER NOT NULL DEFAULT 60`); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession appends a finished game to the journal.
// An empty SessionID is filled with a fresh UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	if rec.Mode == "" {
		return 0, errors.New("storage: session mode is required")
	}
	if rec.EndReason != EndGameOver && rec.EndReason != EndQuit {
		return 0, fmt.Errorf("storage: unknown end reason %q", rec.EndReason)
	}
	if rec.TickRate <= 0 {
		rec.TickRate = DefaultTickRate
	}
	if rec.SessionID == "" {
		rec.SessionID = uuid.NewString()
	} else if _, err := uuid.Parse(rec.SessionID); err != nil {
		return 0, fmt.Errorf("storage: invalid session id %q: %w", rec.SessionID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (session_id, mode, lines, pieces, holds, ticks, tick_rate, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Mode, rec.Lines, rec.Pieces, rec.Holds, rec.Ticks, rec.TickRate, rec.EndReason,
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

const sessionColumns = `id, session_id, mode, lines, pieces, holds, ticks, tick_rate, end_reason, created_at`

// RecentSessions returns the latest games across all modes, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// SessionGames returns every game recorded under one session ID, oldest first.
func (s *Store) SessionGames(sessionID string) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session games: %w", err)
	}
	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]SessionRecord, error) {
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.Mode,
			&r.Lines,
			&r.Pieces,
			&r.Holds,
			&r.Ticks,
			&r.TickRate,
			&r.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ModeTotals aggregates every recorded game of one mode.
func (s *Store) ModeTotals(mode string) (*ModeTotals, error) {
	totals := &ModeTotals{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(lines), 0), COALESCE(SUM(pieces), 0), MAX(created_at)
		 FROM sessions WHERE mode = ?`,
		mode,
	).Scan(&totals.Sessions, &totals.Lines, &totals.Pieces, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode totals: %w", err)
	}
	totals.LastPlayed = parseTime(lastPlayed)

	return totals, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
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
