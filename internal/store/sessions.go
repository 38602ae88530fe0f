package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lox/skyview/internal/models"
	"github.com/lox/skyview/internal/slug"
)

// InitialFavorites seeds every new session.
var InitialFavorites = []models.FavoriteEntry{
	{Name: "New York", Country: "US", Temp: 22, Condition: "Sunny", LastUpdated: "2 min ago"},
	{Name: "London", Country: "UK", Temp: 18, Condition: "Cloudy", LastUpdated: "5 min ago"},
	{Name: "Tokyo", Country: "JP", Temp: 25, Condition: "Partly Cloudy", LastUpdated: "1 min ago"},
	{Name: "Sydney", Country: "AU", Temp: 20, Condition: "Rainy", LastUpdated: "3 min ago"},
}

// EnsureSession creates the session if it does not exist, seeding initial
// favorites and default settings, and otherwise marks it as seen at now.
// It reports whether the session was created.
func (s *Store) EnsureSession(id string, now time.Time) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO sessions (id, created_at, last_seen_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, now.UTC(), now.UTC())
	if err != nil {
		return false, fmt.Errorf("insert session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if n == 0 {
		if _, err := tx.Exec(`UPDATE sessions SET last_seen_at = ? WHERE id = ?`, now.UTC(), id); err != nil {
			return false, fmt.Errorf("touch session: %w", err)
		}
		return false, tx.Commit()
	}

	for _, f := range InitialFavorites {
		if f.Identifier == "" {
			f.Identifier = slug.ToIdentifier(f.Name)
		}
		if err := insertFavorite(tx, id, f); err != nil {
			return false, fmt.Errorf("seed favorite %s: %w", f.Name, err)
		}
	}
	if err := upsertSettings(tx, id, models.DefaultSettings()); err != nil {
		return false, fmt.Errorf("seed settings: %w", err)
	}

	return true, tx.Commit()
}

// SessionExists reports whether id names a live session.
func (s *Store) SessionExists(id string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TouchSession records activity on an existing session.
func (s *Store) TouchSession(id string, now time.Time) error {
	res, err := s.db.Exec(`UPDATE sessions SET last_seen_at = ? WHERE id = ?`, now.UTC(), id)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) CountSessions() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n)
	return n, err
}

// PurgeIdleSessions deletes sessions not seen since before, along with their
// favorites and settings. It returns the number of sessions removed.
func (s *Store) PurgeIdleSessions(before time.Time) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	idle := `SELECT id FROM sessions WHERE last_seen_at < ?`
	if _, err := tx.Exec(`DELETE FROM favorites WHERE session_id IN (`+idle+`)`, before.UTC()); err != nil {
		return 0, fmt.Errorf("purge favorites: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM settings WHERE session_id IN (`+idle+`)`, before.UTC()); err != nil {
		return 0, fmt.Errorf("purge settings: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM sessions WHERE last_seen_at < ?`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, tx.Commit()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}
