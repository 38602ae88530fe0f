package api

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/skyview/internal/catalog"
	"github.com/lox/skyview/internal/forecast"
	"github.com/lox/skyview/internal/models"
	"github.com/lox/skyview/internal/slug"
)

// hourlyPreview is how many hourly points the detail page lists.
const hourlyPreview = 12

// Page carries what the shared layout needs.
type Page struct {
	Title    string
	Palette  forecast.Palette
	Settings models.Settings
	Version  string
}

func newPage(title string, st models.Settings, condition string, temp int) Page {
	return Page{
		Title:    title,
		Palette:  forecast.GetPalette(forecast.ExtractCondition(condition, temp), forecast.ThemeTime(st.DarkMode)),
		Settings: st,
		Version:  Version,
	}
}

type CityCard struct {
	models.PopularCity
	Identifier models.CityIdentifier
}

type IndexData struct {
	Page
	Recent  []catalog.Link
	Popular []CityCard
}

func buildIndexData(cat *catalog.Catalog, st models.Settings) IndexData {
	cards := make([]CityCard, 0, len(cat.Popular))
	for _, p := range cat.Popular {
		cards = append(cards, CityCard{PopularCity: p, Identifier: slug.ToIdentifier(p.Name)})
	}
	return IndexData{
		Page:    newPage("Weather Forecast", st, "", 20),
		Recent:  cat.RecentLinks(),
		Popular: cards,
	}
}

type WeatherData struct {
	Page
	Report   models.Report
	Hourly   []models.HourlyPoint
	Favorite bool
}

func buildWeatherData(report models.Report, st models.Settings, favorite bool) WeatherData {
	return WeatherData{
		Page:     newPage(report.City, st, report.Current.Condition, report.Current.Temp),
		Report:   report,
		Hourly:   report.Hourly[:min(hourlyPreview, len(report.Hourly))],
		Favorite: favorite,
	}
}

type ChartData struct {
	Page
	Chart         models.Chart
	TempLine      string
	HumidityLine  string
	HighLine      string
	LowLine       string
	TempRange     [2]int
	HumidityRange [2]int
	WeeklyRange   [2]int
	ChartWidth    int
	ChartHeight   int
}

const (
	chartWidth  = 600
	chartHeight = 200
)

func buildChartData(chart models.Chart, st models.Settings) ChartData {
	temps := make([]int, len(chart.Hourly))
	humidity := make([]int, len(chart.Hourly))
	for i, p := range chart.Hourly {
		temps[i] = p.Temperature
		humidity[i] = p.Humidity
	}
	highs := make([]int, len(chart.Weekly))
	lows := make([]int, len(chart.Weekly))
	for i, p := range chart.Weekly {
		highs[i] = p.High
		lows[i] = p.Low
	}
	weekly := append(slices.Clone(highs), lows...)

	return ChartData{
		Page:          newPage(chart.City+" Charts", st, "", 20),
		Chart:         chart,
		TempLine:      polyline(temps, bounds(temps)),
		HumidityLine:  polyline(humidity, bounds(humidity)),
		HighLine:      polyline(highs, bounds(weekly)),
		LowLine:       polyline(lows, bounds(weekly)),
		TempRange:     bounds(temps),
		HumidityRange: bounds(humidity),
		WeeklyRange:   bounds(weekly),
		ChartWidth:    chartWidth,
		ChartHeight:   chartHeight,
	}
}

func bounds(values []int) [2]int {
	if len(values) == 0 {
		return [2]int{0, 0}
	}
	return [2]int{slices.Min(values), slices.Max(values)}
}

// polyline scales values into SVG "x,y" pairs spanning the chart area,
// with larger values drawn higher.
func polyline(values []int, r [2]int) string {
	if len(values) == 0 {
		return ""
	}
	span := float64(r[1] - r[0])
	if span == 0 {
		span = 1
	}
	step := 0.0
	if len(values) > 1 {
		step = float64(chartWidth) / float64(len(values)-1)
	}

	points := make([]string, len(values))
	for i, v := range values {
		x := float64(i) * step
		y := float64(chartHeight) - (float64(v-r[0])/span)*float64(chartHeight)
		points[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}
	return strings.Join(points, " ")
}

type MapData struct {
	Page
	Map models.MapOverview
}

func buildMapData(m models.MapOverview, st models.Settings) MapData {
	return MapData{
		Page: newPage(m.City+" Weather Map", st, m.Precipitation, 20),
		Map:  m,
	}
}

type FavoritesData struct {
	Page
	Query     string
	Total     int
	Favorites []models.FavoriteEntry
	Summary   models.FavoritesSummary
}

// buildFavoritesData filters for display but summarises every favorite.
func buildFavoritesData(all []models.FavoriteEntry, query string, st models.Settings) FavoritesData {
	return FavoritesData{
		Page:      newPage("Favorite Locations", st, "", 20),
		Query:     query,
		Total:     len(all),
		Favorites: models.FilterFavorites(all, query),
		Summary:   models.SummarizeFavorites(all),
	}
}

type SettingsData struct {
	Page
	Saved            bool
	Error            string
	TemperatureUnits []string
	WindUnits        []string
	PressureUnits    []string
	Languages        []string
	TimeFormats      []string
}

func buildSettingsData(st models.Settings, saved bool) SettingsData {
	return SettingsData{
		Page:             newPage("Settings", st, "", 20),
		Saved:            saved,
		TemperatureUnits: models.TemperatureUnits,
		WindUnits:        models.WindUnits,
		PressureUnits:    models.PressureUnits,
		Languages:        models.Languages,
		TimeFormats:      models.TimeFormats,
	}
}

// favoriteFor builds the entry saved when a city is starred, preferring the
// catalog's spelling and country over the lossy display label.
func favoriteFor(report models.Report, cat *catalog.Catalog) models.FavoriteEntry {
	f := models.FavoriteEntry{
		Identifier:  report.Identifier,
		Name:        report.City,
		Country:     report.Country,
		Temp:        report.Current.Temp,
		Condition:   report.Current.Condition,
		LastUpdated: "just now",
	}
	if p, ok := cat.Lookup(report.Identifier); ok {
		f.Name = p.Name
		f.Country = p.Country
	}
	return f
}
