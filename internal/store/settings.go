package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lox/skyview/internal/models"
)

func upsertSettings(ex execer, sessionID string, st models.Settings) error {
	_, err := ex.Exec(`
		INSERT INTO settings (session_id, temperature_unit, wind_unit, pressure_unit, language, time_format, notifications, weather_alerts, daily_forecast, auto_location, dark_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			temperature_unit = excluded.temperature_unit,
			wind_unit = excluded.wind_unit,
			pressure_unit = excluded.pressure_unit,
			language = excluded.language,
			time_format = excluded.time_format,
			notifications = excluded.notifications,
			weather_alerts = excluded.weather_alerts,
			daily_forecast = excluded.daily_forecast,
			auto_location = excluded.auto_location,
			dark_mode = excluded.dark_mode
	`, sessionID, st.TemperatureUnit, st.WindUnit, st.PressureUnit, st.Language, st.TimeFormat,
		st.Notifications, st.WeatherAlerts, st.DailyForecast, st.AutoLocation, st.DarkMode)
	return err
}

func (s *Store) GetSettings(sessionID string) (models.Settings, error) {
	row := s.db.QueryRow(`
		SELECT temperature_unit, wind_unit, pressure_unit, language, time_format, notifications, weather_alerts, daily_forecast, auto_location, dark_mode
		FROM settings
		WHERE session_id = ?
	`, sessionID)

	var st models.Settings
	err := row.Scan(&st.TemperatureUnit, &st.WindUnit, &st.PressureUnit, &st.Language, &st.TimeFormat,
		&st.Notifications, &st.WeatherAlerts, &st.DailyForecast, &st.AutoLocation, &st.DarkMode)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Settings{}, fmt.Errorf("settings for %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return models.Settings{}, err
	}
	return st, nil
}

// SaveSettings validates and stores settings for a session.
func (s *Store) SaveSettings(sessionID string, st models.Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if err := upsertSettings(s.db, sessionID, st); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
