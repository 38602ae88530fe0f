package forecast

// Palette is the page colour scheme for a condition and theme.
type Palette struct {
	Background string
	Card       string
	CardBorder string
	Text       string
	TextMuted  string
	Accent     string // links, highlights, the share card's condition line
	AccentAlt  string // daily highs
}

// DefaultPalette is used for conditions without a tuned scheme.
var DefaultPalette = Palette{"#101426", "#1a2036", "#2a3250", "#e8ecf4", "#7a84a0", "#5ab4f0", "#ff7a48"}

// palettes is keyed by ConditionWithTime. Day entries back the light theme
// and night entries the dark theme. Fields are in Palette order.
var palettes = map[string]Palette{
	"clear_warm_day":      {"#f5f0e8", "#ffffff", "#e0d8c8", "#2a2520", "#706050", "#d07020", "#c04010"},
	"clear_warm_night":    {"#141020", "#1e1a2c", "#2e2840", "#f0e8ff", "#8878a0", "#ffaa66", "#ff6644"},
	"clear_cool_day":      {"#eef4fa", "#ffffff", "#d0dce8", "#1a2430", "#5a6878", "#2a7ab8", "#d06030"},
	"clear_cool_night":    {"#0a1020", "#121a2e", "#1e2a44", "#e4ecf8", "#7080a0", "#70a8e0", "#e08060"},
	"partly_cloudy_day":   {"#eceff3", "#fafbfc", "#d4d8e0", "#222830", "#606a78", "#3a80c0", "#d07040"},
	"partly_cloudy_night": {"#10141c", "#1a1f2a", "#2a3040", "#e6eaf0", "#7a8494", "#6aa4d8", "#d88866"},
	"mostly_cloudy_day":   {"#e4e6ea", "#f2f3f5", "#c8ccd4", "#202428", "#5c6470", "#4a7090", "#a86848"},
	"mostly_cloudy_night": {"#121416", "#1c1e22", "#2a2e34", "#e0e2e6", "#787e88", "#7898b8", "#b88870"},
	"light_rain_day":      {"#dfe6ec", "#eef2f6", "#c0ccd8", "#1a2230", "#56687c", "#3070a8", "#986050"},
	"light_rain_night":    {"#0c1218", "#141c24", "#223040", "#dce6f0", "#6a8098", "#5a98cc", "#b08070"},
	"storm_day":           {"#cfd2d8", "#e2e4e8", "#a8adb8", "#16181c", "#4c5260", "#6a50a8", "#c05030"},
	"storm_night":         {"#08080e", "#121218", "#22222e", "#e0e0ec", "#707088", "#a088e0", "#e07050"},
	"hot_day":             {"#fbeee0", "#fff8f0", "#f0d4b8", "#301a10", "#806050", "#e06010", "#c02810"},
	"hot_night":           {"#1c100a", "#2a1a12", "#44281c", "#fff0e4", "#a08070", "#ff8844", "#ff5530"},
}

// GetPalette returns the scheme for a condition under the given theme.
func GetPalette(condition WeatherCondition, tod TimeOfDay) Palette {
	if p, ok := palettes[string(ConditionWithTime(condition, tod))]; ok {
		return p
	}
	return DefaultPalette
}
