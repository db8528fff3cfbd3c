// Package storage provides SQLite-based persistence for session records,
// chat history and scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Key prefixes of the blob store.
const (
	SessionPrefix = "session:"
	ChatKey       = "chat:history"
)

// ChatLimit is the number of chat messages retained.
const ChatLimit = 100

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB

	// chatMu serializes read-modify-write of the chat history blob.
	chatMu sync.Mutex
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Wallet    string
	Score     int
	Level     int
	CreatedAt time.Time
}

// SessionRecord is the persisted shape of one play session.
type SessionRecord struct {
	ID            string     `json:"id"`
	WalletAddress string     `json:"walletAddress"`
	Mode          string     `json:"mode,omitempty"`
	Score         int        `json:"score"`
	TokensEarned  []int      `json:"tokensEarned"`
	LevelReached  int        `json:"levelReached"`
	Mints         []string   `json:"mints,omitempty"`
	SessionStart  time.Time  `json:"sessionStart"`
	SessionEnd    *time.Time `json:"sessionEnd,omitempty"`
	LastUpdated   time.Time  `json:"lastUpdated"`
}

// Open reports whether the session has not been finalized.
func (r *SessionRecord) Open() bool {
	return r.SessionEnd == nil
}

// ChatMessage is one entry of the chat history.
type ChatMessage struct {
	Wallet string    `json:"wallet"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
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
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			wallet TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_wallet ON scores(wallet);
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

// Get returns the JSON value stored under key, or nil when absent.
func (s *Store) Get(key string) (json.RawMessage, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get %q: %w", key, err)
	}
	return json.RawMessage(value), nil
}

// Set JSON-encodes v and stores it under key.
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set %q: %w", key, err)
	}
	return nil
}

// SaveSession writes the record under session:<id>.
func (s *Store) SaveSession(rec SessionRecord) error {
	if rec.ID == "" {
		return errors.New("storage: session record without id")
	}
	if err := s.Set(SessionPrefix+rec.ID, rec); err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// LoadSession reads a session record. Returns nil when absent.
func (s *Store) LoadSession(id string) (*SessionRecord, error) {
	raw, err := s.Get(SessionPrefix + id)
	if err != nil || raw == nil {
		return nil, err
	}
	var rec SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("storage: cannot decode session %q: %w", id, err)
	}
	return &rec, nil
}

// ListSessions returns the most recently updated session records.
func (s *Store) ListSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT value FROM kv
		 WHERE key LIKE ?
		 ORDER BY updated_at DESC, key
		 LIMIT ?`,
		SessionPrefix+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		var rec SessionRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			return nil, fmt.Errorf("storage: cannot decode session: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// AppendChat adds a message to the chat history, keeping the newest ChatLimit.
func (s *Store) AppendChat(msg ChatMessage) error {
	s.chatMu.Lock()
	defer s.chatMu.Unlock()

	history, err := s.ChatHistory()
	if err != nil {
		return err
	}
	history = append(history, msg)
	if len(history) > ChatLimit {
		history = history[len(history)-ChatLimit:]
	}
	return s.Set(ChatKey, history)
}

// ChatHistory returns the retained chat messages, oldest first.
func (s *Store) ChatHistory() ([]ChatMessage, error) {
	raw, err := s.Get(ChatKey)
	if err != nil || raw == nil {
		return nil, err
	}
	var history []ChatMessage
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("storage: cannot decode chat history: %w", err)
	}
	return history, nil
}

// SaveScore records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, wallet string, score, level int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, wallet, score, level) VALUES (?, ?, ?, ?)",
		gameID, wallet, score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, game_id, wallet, score, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id
		 LIMIT ?`,
		gameID, limit,
	)
}

// WalletScores retrieves the scores of one wallet across all modes.
func (s *Store) WalletScores(wallet string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, game_id, wallet, score, level, created_at
		 FROM scores
		 WHERE wallet = ?
		 ORDER BY score DESC, id
		 LIMIT ?`,
		wallet, limit,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Wallet, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
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

// ClearScores deletes all scores for the given mode.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	LastPlayed time.Time
}

// AllGamesStats retrieves statistics for every mode that has been played.
func (s *Store) AllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), MAX(level), AVG(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.BestLevel, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.GameID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes.
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
