// Package storage provides a SQLite journal of served pours.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/barista/internal/fortune"
)

// Store manages the SQLite database connection for the pour journal.
type Store struct {
	db *sql.DB
}

// PourEntry is one served pour together with its reading.
type PourEntry struct {
	ID        int64
	Player    string // Local user or SSH user name
	Stats     fortune.PourStats
	Fortune   fortune.CoffeeFortune
	Source    fortune.Source
	CreatedAt time.Time
}

// Summary aggregates the journal.
type Summary struct {
	Pours        int
	Spills       int
	BestRating   int
	AvgFill      float64
	AvgTime      float64
	LastPouredAt time.Time
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
		CREATE TABLE IF NOT EXISTS pours (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			fill_percentage REAL NOT NULL,
			spilled INTEGER NOT NULL DEFAULT 0,
			time_taken REAL NOT NULL,
			rating INTEGER NOT NULL,
			title TEXT NOT NULL,
			fortune TEXT NOT NULL,
			barista_comment TEXT NOT NULL,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_pours_rating ON pours(rating DESC);
		CREATE INDEX IF NOT EXISTS idx_pours_player ON pours(player);
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

// SavePour records a served pour and its fortune.
// Returns the ID of the inserted record.
func (s *Store) SavePour(player string, stats fortune.PourStats, res fortune.Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO pours
		 (player, fill_percentage, spilled, time_taken, rating, title, fortune, barista_comment, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		player,
		stats.FillPercentage,
		stats.Spilled,
		stats.TimeTaken,
		res.Fortune.Rating,
		res.Fortune.Title,
		res.Fortune.Fortune,
		res.Fortune.BaristaComment,
		string(res.Source),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save pour: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const pourColumns = `id, player, fill_percentage, spilled, time_taken, rating, title, fortune, barista_comment, source, created_at`

// RecentPours retrieves the most recent pours, newest first.
func (s *Store) RecentPours(limit int) ([]PourEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryPours(
		`SELECT `+pourColumns+` FROM pours ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// BestPours retrieves the highest rated pours. Ties go to the fill closest
// to the middle of the gold ring window.
func (s *Store) BestPours(limit int) ([]PourEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryPours(
		`SELECT `+pourColumns+` FROM pours
		 ORDER BY rating DESC, ABS(fill_percentage - 88) ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerPours retrieves the most recent pours of one player.
func (s *Store) PlayerPours(player string, limit int) ([]PourEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryPours(
		`SELECT `+pourColumns+` FROM pours WHERE player = ? ORDER BY id DESC LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryPours(query string, args ...any) ([]PourEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pours: %w", err)
	}
	defer rows.Close()

	var entries []PourEntry
	for rows.Next() {
		var e PourEntry
		var source string
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.Player,
			&e.Stats.FillPercentage,
			&e.Stats.Spilled,
			&e.Stats.TimeTaken,
			&e.Fortune.Rating,
			&e.Fortune.Title,
			&e.Fortune.Fortune,
			&e.Fortune.BaristaComment,
			&source,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Source = fortune.Source(source)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Summary returns aggregated statistics over all pours.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(spilled), 0), COALESCE(MAX(rating), 0),
		        COALESCE(AVG(fill_percentage), 0), COALESCE(AVG(time_taken), 0), MAX(created_at)
		 FROM pours`,
	).Scan(&sum.Pours, &sum.Spills, &sum.BestRating, &sum.AvgFill, &sum.AvgTime, &last)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize pours: %w", err)
	}
	sum.LastPouredAt = parseTime(last)
	return sum, nil
}

// ClearPours deletes the whole journal.
func (s *Store) ClearPours() error {
	if _, err := s.db.Exec("DELETE FROM pours"); err != nil {
		return fmt.Errorf("storage: cannot clear pours: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
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
