package forecast

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"

	"github.com/lox/skyview/internal/models"
	"github.com/lox/skyview/internal/slug"
)

const (
	HourlyPoints = 24
	DailyPoints  = 7

	// PlaceholderCountry is shown wherever a city's country is unknown.
	PlaceholderCountry = "Country"
)

var (
	hourlyConditions = []string{LabelSunny, LabelCloudy, LabelPartlyCloudy}
	dailyConditions  = []string{LabelSunny, LabelCloudy, LabelRainy, LabelPartlyCloudy}

	// Daily labels are fixed and do not follow the real weekday.
	dailyLabels  = [DailyPoints]string{"Today", "Tomorrow", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weeklyLabels = [DailyPoints]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	mapLayers = []string{"Temperature", "Precipitation", "Wind", "Clouds", "Pressure"}
)

// Synthesizer produces placeholder weather for a city.
type Synthesizer struct {
	seed   uint64
	random bool
}

// NewSynthesizer returns a synthesizer whose output depends only on seed and
// the city, so repeated calls give identical data.
func NewSynthesizer(seed uint64) *Synthesizer {
	return &Synthesizer{seed: seed}
}

// NewRandomSynthesizer returns a synthesizer that draws a fresh seed on every call.
func NewRandomSynthesizer() *Synthesizer {
	return &Synthesizer{random: true}
}

// Seeded reports whether output is reproducible.
func (s *Synthesizer) Seeded() bool {
	return !s.random
}

func (s *Synthesizer) rng(city models.CityIdentifier, stream string) *rand.Rand {
	if s.random {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	h := fnv.New64a()
	h.Write([]byte(stream))
	h.Write([]byte{0})
	h.Write([]byte(city))
	return rand.New(rand.NewPCG(s.seed, h.Sum64()))
}

// Synthesize builds current conditions plus the hourly and daily series.
// It is defined for every input, including the empty string.
func (s *Synthesizer) Synthesize(city models.CityIdentifier) models.Report {
	r := s.rng(city, "report")

	report := models.Report{
		City:       slug.ToDisplayLabel(city),
		Country:    PlaceholderCountry,
		Identifier: city,
		Current: models.CurrentConditions{
			Temp:       24,
			Condition:  LabelPartlyCloudy,
			Humidity:   65,
			WindSpeed:  12,
			Visibility: 10,
			Pressure:   1013,
			UVIndex:    6,
			FeelsLike:  27,
		},
		Hourly: make([]models.HourlyPoint, HourlyPoints),
		Daily:  make([]models.DailyPoint, DailyPoints),
	}

	for i := range report.Hourly {
		cond := pick(r, hourlyConditions)
		report.Hourly[i] = models.HourlyPoint{
			Time:      hourLabel(i),
			Temp:      draw(r, 20, 10),
			Condition: cond,
			Icon:      Icon(cond),
		}
	}

	for i := range report.Daily {
		high := draw(r, 25, 8)
		low := draw(r, 15, 5)
		cond := pick(r, dailyConditions)
		report.Daily[i] = models.DailyPoint{
			Day:           dailyLabels[i],
			High:          high,
			Low:           low,
			Condition:     cond,
			Icon:          Icon(cond),
			Precipitation: draw(r, 0, 100),
		}
	}

	return report
}

// Chart builds the 24-hour temperature/humidity trend and the weekly range.
func (s *Synthesizer) Chart(city models.CityIdentifier) models.Chart {
	r := s.rng(city, "chart")

	chart := models.Chart{
		City:       slug.ToDisplayLabel(city),
		Identifier: city,
		Hourly:     make([]models.ChartPoint, HourlyPoints),
		Weekly:     make([]models.WeeklyPoint, DailyPoints),
	}

	for i := range chart.Hourly {
		x := float64(i)
		chart.Hourly[i] = models.ChartPoint{
			Time:        hourLabel(i),
			Temperature: draw(r, 20+math.Sin(x/4)*8, 4),
			Humidity:    draw(r, 60+math.Cos(x/3)*20, 10),
		}
	}

	for i := range chart.Weekly {
		chart.Weekly[i] = models.WeeklyPoint{
			Day:           weeklyLabels[i],
			High:          draw(r, 25, 8),
			Low:           draw(r, 15, 5),
			Precipitation: draw(r, 0, 100),
		}
	}

	return chart
}

// Map returns the radar overview for a city. The values are fixed.
func (s *Synthesizer) Map(city models.CityIdentifier) models.MapOverview {
	layers := make([]string, len(mapLayers))
	copy(layers, mapLayers)
	return models.MapOverview{
		City:          slug.ToDisplayLabel(city),
		Identifier:    city,
		Layers:        layers,
		CloudCover:    45,
		StormActivity: "Low",
		Precipitation: "Light Rain",
		Intensity:     2.5,
		Movement:      "NE at 15 km/h",
	}
}

func hourLabel(i int) string {
	return fmt.Sprintf("%02d:00", i)
}

// draw returns round(base + r*spread) for r in [0, 1).
func draw(r *rand.Rand, base, spread float64) int {
	return int(math.Round(base + r.Float64()*spread))
}

func pick(r *rand.Rand, options []string) string {
	return options[r.IntN(len(options))]
}
