// Package storage provides SQLite-based persistence for final scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const driverName = "sqlite"

// sqliteTimeLayout is how CURRENT_TIMESTAMP is stored.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sqlx.DB
}

// ScoreEntry represents a single stored score.
type ScoreEntry struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"game_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string    `json:"game_id"`
	GamesCount int       `json:"games_count"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	TotalScore int64     `json:"total_score"`
	LastPlayed time.Time `json:"last_played"`
}

// Result is what RecordFinal reports back to the game.
type Result struct {
	Best    int
	NewBest bool
}

// dbTime scans DATETIME values. The driver hands back time.Time for typed
// columns and plain text for aggregates like MAX(created_at).
type dbTime struct {
	time.Time
}

func (t *dbTime) Scan(v any) error {
	switch v := v.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("storage: cannot scan %T into time", v)
	}
	return nil
}

func (t *dbTime) parse(s string) error {
	for _, layout := range []string{sqliteTimeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("storage: unrecognized time %q", s)
}

type scoreRow struct {
	ID        int64  `db:"id"`
	GameID    string `db:"game_id"`
	Score     int    `db:"score"`
	CreatedAt dbTime `db:"created_at"`
}

func (r scoreRow) entry() ScoreEntry {
	return ScoreEntry{ID: r.ID, GameID: r.GameID, Score: r.Score, CreatedAt: r.CreatedAt.Time}
}

type statsRow struct {
	GameID     string  `db:"game_id"`
	GamesCount int     `db:"games_count"`
	HighScore  int     `db:"high_score"`
	AvgScore   float64 `db:"avg_score"`
	TotalScore int64   `db:"total_score"`
	LastPlayed dbTime  `db:"last_played"`
}

func (r statsRow) stats() *GameStats {
	return &GameStats{
		GameID:     r.GameID,
		GamesCount: r.GamesCount,
		HighScore:  r.HighScore,
		AvgScore:   r.AvgScore,
		TotalScore: r.TotalScore,
		LastPlayed: r.LastPlayed.Time,
	}
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	db, err := sqlx.Connect(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	// SQLite has a single writer.
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordFinal stores a finished run and reports the best score including it.
func (s *Store) RecordFinal(gameID string, score int) (Result, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var prev sql.NullInt64
	if err := tx.Get(&prev, "SELECT MAX(score) FROM scores WHERE game_id = ?", gameID); err != nil {
		return Result{}, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score); err != nil {
		return Result{}, fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("storage: cannot commit score: %w", err)
	}

	best := int(prev.Int64)
	if score > best {
		return Result{Best: score, NewBest: true}, nil
	}
	return Result{Best: best}, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.selectScores(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.selectScores(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC`,
		gameID,
	)
}

func (s *Store) selectScores(query string, args ...any) ([]ScoreEntry, error) {
	var rows []scoreRow
	if err := s.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.entry())
	}
	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	if err := s.db.Get(&score, "SELECT MAX(score) FROM scores WHERE game_id = ?", gameID); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
// A game with no runs yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	var row statsRow
	err := s.db.Get(&row,
		`SELECT ? AS game_id,
		        COUNT(*) AS games_count,
		        COALESCE(MAX(score), 0) AS high_score,
		        COALESCE(AVG(score), 0) AS avg_score,
		        COALESCE(SUM(score), 0) AS total_score,
		        MAX(created_at) AS last_played
		 FROM scores WHERE game_id = ?`,
		gameID, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return row.stats(), nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	var rows []statsRow
	err := s.db.Select(&rows,
		`SELECT game_id,
		        COUNT(*) AS games_count,
		        MAX(score) AS high_score,
		        AVG(score) AS avg_score,
		        SUM(score) AS total_score,
		        MAX(created_at) AS last_played
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	stats := make(map[string]*GameStats, len(rows))
	for _, r := range rows {
		stats[r.GameID] = r.stats()
	}
	return stats, nil
}
