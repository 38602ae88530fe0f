package forecast

import (
	"fmt"
	"strings"
)

// Condition labels produced by the synthesizer and used in the catalog.
const (
	LabelSunny        = "Sunny"
	LabelCloudy       = "Cloudy"
	LabelPartlyCloudy = "Partly Cloudy"
	LabelRainy        = "Rainy"
	LabelHot          = "Hot"
)

// WeatherCondition is a categorized weather state used for theming.
type WeatherCondition string

const (
	ConditionClearWarm    WeatherCondition = "clear_warm"
	ConditionClearCool    WeatherCondition = "clear_cool"
	ConditionPartlyCloudy WeatherCondition = "partly_cloudy"
	ConditionMostlyCloudy WeatherCondition = "mostly_cloudy"
	ConditionLightRain    WeatherCondition = "light_rain"
	ConditionStorm        WeatherCondition = "storm"
	ConditionHot          WeatherCondition = "hot"
)

// TimeOfDay represents the lighting period.
type TimeOfDay string

const (
	TimeDay   TimeOfDay = "day"
	TimeNight TimeOfDay = "night"
)

// ThemeTime maps the dark mode preference onto a lighting period.
func ThemeTime(dark bool) TimeOfDay {
	if dark {
		return TimeNight
	}
	return TimeDay
}

// ExtractCondition categorizes a condition label, using temperature to
// separate warm and cool clear skies.
func ExtractCondition(label string, temp int) WeatherCondition {
	lower := strings.ToLower(label)

	if temp >= 35 || strings.EqualFold(label, LabelHot) {
		return ConditionHot
	}

	switch {
	case strings.Contains(lower, "thunder") || strings.Contains(lower, "storm"):
		return ConditionStorm
	case strings.Contains(lower, "rain") || strings.Contains(lower, "shower") || strings.Contains(lower, "drizzle"):
		return ConditionLightRain
	case strings.Contains(lower, "partly"):
		return ConditionPartlyCloudy
	case strings.Contains(lower, "cloud") || strings.Contains(lower, "overcast"):
		return ConditionMostlyCloudy
	}

	if temp >= 25 {
		return ConditionClearWarm
	}
	return ConditionClearCool
}

// ConditionWithTime combines a weather condition with time of day for lookups.
func ConditionWithTime(condition WeatherCondition, tod TimeOfDay) WeatherCondition {
	return WeatherCondition(fmt.Sprintf("%s_%s", condition, tod))
}

var conditionIcons = map[WeatherCondition]string{
	ConditionClearWarm:    "☀️",
	ConditionClearCool:    "☀️",
	ConditionPartlyCloudy: "⛅",
	ConditionMostlyCloudy: "☁️",
	ConditionLightRain:    "🌧️",
	ConditionStorm:        "⛈️",
	ConditionHot:          "🔥",
}

// Icon returns an emoji for a condition label.
func Icon(label string) string {
	if icon, ok := conditionIcons[ExtractCondition(label, 0)]; ok {
		return icon
	}
	return "☀️"
}
