package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lox/skyview/internal/models"
)

const favoriteColumns = `id, identifier, name, country, temp, condition, last_updated`

func insertFavorite(ex execer, sessionID string, f models.FavoriteEntry) error {
	_, err := ex.Exec(`
		INSERT INTO favorites (session_id, identifier, name, country, temp, condition, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, identifier) DO NOTHING
	`, sessionID, f.Identifier, f.Name, f.Country, f.Temp, f.Condition, f.LastUpdated)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFavorite(row scanner) (models.FavoriteEntry, error) {
	var f models.FavoriteEntry
	err := row.Scan(&f.ID, &f.Identifier, &f.Name, &f.Country, &f.Temp, &f.Condition, &f.LastUpdated)
	return f, err
}

// ListFavorites returns a session's favorites in the order they were added.
func (s *Store) ListFavorites(sessionID string) ([]models.FavoriteEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+favoriteColumns+`
		FROM favorites
		WHERE session_id = ?
		ORDER BY id ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []models.FavoriteEntry{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// FindFavorite returns the favorite for a city, or nil if the city is not a favorite.
func (s *Store) FindFavorite(sessionID string, city models.CityIdentifier) (*models.FavoriteEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+favoriteColumns+`
		FROM favorites
		WHERE session_id = ? AND identifier = ?
	`, sessionID, city)

	f, err := scanFavorite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) IsFavorite(sessionID string, city models.CityIdentifier) (bool, error) {
	f, err := s.FindFavorite(sessionID, city)
	if err != nil {
		return false, err
	}
	return f != nil, nil
}

// AddFavorite saves f for the session. Adding a city that is already a
// favorite returns the existing entry unchanged.
func (s *Store) AddFavorite(sessionID string, f models.FavoriteEntry) (models.FavoriteEntry, error) {
	if f.Identifier == "" {
		return models.FavoriteEntry{}, errors.New("add favorite: empty identifier")
	}
	if err := insertFavorite(s.db, sessionID, f); err != nil {
		return models.FavoriteEntry{}, fmt.Errorf("add favorite: %w", err)
	}
	saved, err := s.FindFavorite(sessionID, f.Identifier)
	if err != nil {
		return models.FavoriteEntry{}, fmt.Errorf("add favorite: %w", err)
	}
	if saved == nil {
		return models.FavoriteEntry{}, fmt.Errorf("add favorite %s: %w", f.Identifier, ErrNotFound)
	}
	return *saved, nil
}

// RemoveFavorite deletes one favorite by ID.
func (s *Store) RemoveFavorite(sessionID string, id int64) error {
	res, err := s.db.Exec(`DELETE FROM favorites WHERE session_id = ? AND id = ?`, sessionID, id)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("favorite %d: %w", id, ErrNotFound)
	}
	return nil
}
