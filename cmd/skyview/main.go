package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/skyview/internal/api"
	"github.com/lox/skyview/internal/catalog"
	"github.com/lox/skyview/internal/forecast"
	"github.com/lox/skyview/internal/models"
	"github.com/lox/skyview/internal/slug"
	"github.com/lox/skyview/internal/store"
	"github.com/lox/skyview/internal/units"
)

type CLI struct {
	EnvFile kongdotenv.ENVFileConfig `kong:"optional,name=env-file,default='.env',help='Path to .env file'"`

	Serve    ServeCmd    `cmd:"" default:"withargs" help:"Run the web server."`
	Slug     SlugCmd     `cmd:"" help:"Print the identifier and display label for a city name."`
	Forecast ForecastCmd `cmd:"" help:"Print a synthesized report for a city."`
}

type ServeCmd struct {
	Port       string        `default:"8080" env:"SKYVIEW_PORT" help:"HTTP server port."`
	DB         string        `name:"db" default:":memory:" env:"SKYVIEW_DB" help:"SQLite DSN for the session store."`
	Seed       uint64        `default:"0" env:"SKYVIEW_SEED" help:"Synthesizer seed. 0 draws a fresh report on every request."`
	Catalog    string        `env:"SKYVIEW_CATALOG" help:"YAML file with popular cities and recent searches."`
	SessionTTL time.Duration `name:"session-ttl" default:"24h" env:"SKYVIEW_SESSION_TTL" help:"Idle time after which a session is purged."`
	RateLimit  float64       `default:"5" env:"SKYVIEW_RATE_LIMIT" help:"Sustained mutating requests per second per session. 0 disables."`
	RateBurst  int           `default:"20" env:"SKYVIEW_RATE_BURST" help:"Burst size for the per-session rate limiter."`
}

func (c *ServeCmd) Run() error {
	cat, err := catalog.Load(c.Catalog)
	if err != nil {
		return err
	}

	db, st, err := store.Open(c.DB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()
	log.Printf("session store ready (%s)", c.DB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(st, newSynthesizer(c.Seed), cat, api.Config{
		Port:       c.Port,
		SessionTTL: c.SessionTTL,
		RateLimit:  c.RateLimit,
		RateBurst:  c.RateBurst,
	})
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	log.Println("shutdown complete")
	return nil
}

type SlugCmd struct {
	Name []string `arg:"" help:"City name, e.g. New York."`
}

func (c *SlugCmd) Run() error {
	id := slug.ToIdentifier(strings.Join(c.Name, " "))
	fmt.Printf("%s\t%s\n", id, slug.ToDisplayLabel(id))
	return nil
}

type ForecastCmd struct {
	City string `arg:"" help:"City name or identifier."`
	Seed uint64 `default:"0" help:"Synthesizer seed. 0 is random."`
	JSON bool   `name:"json" help:"Print the report as JSON."`
	Unit string `default:"celsius" enum:"celsius,fahrenheit,kelvin" help:"Temperature unit for text output."`
}

func (c *ForecastCmd) Run() error {
	report := newSynthesizer(c.Seed).Synthesize(slug.ToIdentifier(c.City))
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(os.Stdout, report, c.Unit)
	return nil
}

func printReport(w io.Writer, r models.Report, unit string) {
	cur := r.Current
	fmt.Fprintf(w, "%s, %s\n", r.City, r.Country)
	fmt.Fprintf(w, "%s %s, feels like %s\n", units.FormatTemp(cur.Temp, unit), cur.Condition, units.FormatTemp(cur.FeelsLike, unit))
	fmt.Fprintf(w, "humidity %d%%  wind %d km/h  pressure %d hPa  uv %d\n\n", cur.Humidity, cur.WindSpeed, cur.Pressure, cur.UVIndex)
	for _, h := range r.Hourly {
		fmt.Fprintf(w, "%s  %5s  %s\n", h.Time, units.FormatDegrees(h.Temp, unit), h.Condition)
	}
	fmt.Fprintln(w)
	for _, d := range r.Daily {
		fmt.Fprintf(w, "%-8s %5s / %-5s %3d%%  %s\n", d.Day, units.FormatDegrees(d.High, unit), units.FormatDegrees(d.Low, unit), d.Precipitation, d.Condition)
	}
}

func newSynthesizer(seed uint64) *forecast.Synthesizer {
	if seed == 0 {
		return forecast.NewRandomSynthesizer()
	}
	return forecast.NewSynthesizer(seed)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("skyview"),
		kong.Description("Weather browsing with synthesized forecasts."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
