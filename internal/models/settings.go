package models

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSetting is returned when a setting has a value outside its allowed set.
var ErrInvalidSetting = errors.New("invalid setting")

const (
	TempCelsius    = "celsius"
	TempFahrenheit = "fahrenheit"
	TempKelvin     = "kelvin"

	WindKmh   = "kmh"
	WindMph   = "mph"
	WindMs    = "ms"
	WindKnots = "knots"

	PressureHpa  = "hpa"
	PressureInHg = "inhg"
	PressureMmHg = "mmhg"

	TimeFormat12h = "12h"
	TimeFormat24h = "24h"
)

var (
	TemperatureUnits = []string{TempCelsius, TempFahrenheit, TempKelvin}
	WindUnits        = []string{WindKmh, WindMph, WindMs, WindKnots}
	PressureUnits    = []string{PressureHpa, PressureInHg, PressureMmHg}
	Languages        = []string{"english", "spanish", "french", "german", "chinese", "japanese"}
	TimeFormats      = []string{TimeFormat12h, TimeFormat24h}
)

type Settings struct {
	TemperatureUnit string `json:"temperatureUnit"`
	WindUnit        string `json:"windUnit"`
	PressureUnit    string `json:"pressureUnit"`
	Language        string `json:"language"`
	TimeFormat      string `json:"timeFormat"`
	Notifications   bool   `json:"notifications"`
	WeatherAlerts   bool   `json:"weatherAlerts"`
	DailyForecast   bool   `json:"dailyForecast"`
	AutoLocation    bool   `json:"autoLocation"`
	DarkMode        bool   `json:"darkMode"`
}

func DefaultSettings() Settings {
	return Settings{
		TemperatureUnit: TempCelsius,
		WindUnit:        WindKmh,
		PressureUnit:    PressureHpa,
		Language:        "english",
		TimeFormat:      TimeFormat24h,
		Notifications:   true,
		WeatherAlerts:   true,
		DailyForecast:   true,
		AutoLocation:    false,
		DarkMode:        true,
	}
}

// Validate checks every enumerated field against its allowed values.
func (s Settings) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"temperatureUnit", s.TemperatureUnit, TemperatureUnits},
		{"windUnit", s.WindUnit, WindUnits},
		{"pressureUnit", s.PressureUnit, PressureUnits},
		{"language", s.Language, Languages},
		{"timeFormat", s.TimeFormat, TimeFormats},
	}
	for _, c := range checks {
		if !slices.Contains(c.allowed, c.value) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidSetting, c.key, c.value)
		}
	}
	return nil
}
