package forecast

import "testing"

func TestExtractCondition(t *testing.T) {
	tests := []struct {
		name  string
		label string
		temp  int
		want  WeatherCondition
	}{
		{"hot temperature overrides label", "Partly Cloudy", 38, ConditionHot},
		{"hot label", "Hot", 28, ConditionHot},
		{"hot label any case", "HOT", 20, ConditionHot},
		{"storm", "Thunderstorms", 25, ConditionStorm},
		{"rainy", "Rainy", 20, ConditionLightRain},
		{"light rain", "Light Rain", 12, ConditionLightRain},
		{"partly cloudy", "Partly Cloudy", 24, ConditionPartlyCloudy},
		{"cloudy", "Cloudy", 18, ConditionMostlyCloudy},
		{"sunny warm", "Sunny", 30, ConditionClearWarm},
		{"sunny cool", "Sunny", 15, ConditionClearCool},
		{"unknown label", "", 10, ConditionClearCool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCondition(tt.label, tt.temp); got != tt.want {
				t.Errorf("ExtractCondition(%q, %d) = %q, want %q", tt.label, tt.temp, got, tt.want)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	tests := map[string]string{
		"Sunny":         "☀️",
		"Cloudy":        "☁️",
		"Partly Cloudy": "⛅",
		"Rainy":         "🌧️",
		"Hot":           "🔥",
		"Whatever":      "☀️",
	}
	for label, want := range tests {
		if got := Icon(label); got != want {
			t.Errorf("Icon(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestConditionWithTime(t *testing.T) {
	if got := ConditionWithTime(ConditionLightRain, TimeNight); got != "light_rain_night" {
		t.Errorf("got %q", got)
	}
	if ThemeTime(true) != TimeNight || ThemeTime(false) != TimeDay {
		t.Error("ThemeTime mapping wrong")
	}
}
