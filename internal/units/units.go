// Package units converts the synthesizer's metric values into the units
// chosen in a session's settings.
package units

import (
	"fmt"
	"math"

	"github.com/lox/skyview/internal/models"
)

// Temp converts a Celsius temperature to unit.
func Temp(celsius float64, unit string) float64 {
	switch unit {
	case models.TempFahrenheit:
		return celsius*9/5 + 32
	case models.TempKelvin:
		return celsius + 273.15
	default:
		return celsius
	}
}

// Wind converts a km/h wind speed to unit.
func Wind(kmh float64, unit string) float64 {
	switch unit {
	case models.WindMph:
		return kmh / 1.609344
	case models.WindMs:
		return kmh / 3.6
	case models.WindKnots:
		return kmh / 1.852
	default:
		return kmh
	}
}

// Pressure converts an hPa pressure to unit.
func Pressure(hpa float64, unit string) float64 {
	switch unit {
	case models.PressureInHg:
		return hpa * 0.0295299830714
	case models.PressureMmHg:
		return hpa * 0.750061683
	default:
		return hpa
	}
}

func TempSymbol(unit string) string {
	switch unit {
	case models.TempFahrenheit:
		return "°F"
	case models.TempKelvin:
		return "K"
	default:
		return "°C"
	}
}

func WindSymbol(unit string) string {
	switch unit {
	case models.WindMph:
		return "mph"
	case models.WindMs:
		return "m/s"
	case models.WindKnots:
		return "kn"
	default:
		return "km/h"
	}
}

func PressureSymbol(unit string) string {
	switch unit {
	case models.PressureInHg:
		return "inHg"
	case models.PressureMmHg:
		return "mmHg"
	default:
		return "hPa"
	}
}

// FormatTemp renders a temperature rounded to whole units, e.g. "75°F".
func FormatTemp(celsius int, unit string) string {
	return fmt.Sprintf("%.0f%s", math.Round(Temp(float64(celsius), unit)), TempSymbol(unit))
}

// FormatDegrees renders a temperature without the unit letter, e.g. "75°".
// Kelvin keeps its symbol since degrees do not apply.
func FormatDegrees(celsius int, unit string) string {
	v := math.Round(Temp(float64(celsius), unit))
	if unit == models.TempKelvin {
		return fmt.Sprintf("%.0fK", v)
	}
	return fmt.Sprintf("%.0f°", v)
}

func FormatWind(kmh int, unit string) string {
	return fmt.Sprintf("%.0f %s", math.Round(Wind(float64(kmh), unit)), WindSymbol(unit))
}

// FormatPressure uses two decimals for inHg where whole numbers are too coarse.
func FormatPressure(hpa int, unit string) string {
	v := Pressure(float64(hpa), unit)
	if unit == models.PressureInHg {
		return fmt.Sprintf("%.2f %s", v, PressureSymbol(unit))
	}
	return fmt.Sprintf("%.0f %s", math.Round(v), PressureSymbol(unit))
}

// FormatHour renders an "HH:00" label in the requested time format.
// Labels that do not parse are returned unchanged.
func FormatHour(label, format string) string {
	if format != models.TimeFormat12h {
		return label
	}
	var hour int
	if _, err := fmt.Sscanf(label, "%d:00", &hour); err != nil || hour < 0 || hour > 23 {
		return label
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d %s", h, suffix)
}
