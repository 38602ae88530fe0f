package api

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/skyview/internal/catalog"
	"github.com/lox/skyview/internal/forecast"
	"github.com/lox/skyview/internal/imagegen"
	"github.com/lox/skyview/internal/metrics"
	"github.com/lox/skyview/internal/store"
)

// Version is reported on the settings page and by /health.
const Version = "2.1.0"

type Config struct {
	Port       string
	SessionTTL time.Duration
	// RateLimit is the sustained number of mutating requests per second a
	// session may make. Clients without a session share a bucket per address,
	// which also paces session creation. Zero disables limiting.
	RateLimit float64
	RateBurst int
	CardTTL   time.Duration
}

func DefaultConfig() Config {
	return Config{
		Port:       "8080",
		SessionTTL: 24 * time.Hour,
		RateLimit:  5,
		RateBurst:  20,
		CardTTL:    10 * time.Minute,
	}
}

type Server struct {
	store   *store.Store
	synth   *forecast.Synthesizer
	catalog *catalog.Catalog
	cfg     Config
	tmpl    *template.Template
	cards   *imagegen.ShareCardCache
	limiter *sessionLimiter
	now     func() time.Time
}

func NewServer(st *store.Store, synth *forecast.Synthesizer, cat *catalog.Catalog, cfg Config) *Server {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultConfig().SessionTTL
	}
	if cfg.CardTTL <= 0 {
		cfg.CardTTL = DefaultConfig().CardTTL
	}
	return &Server{
		store:   st,
		synth:   synth,
		catalog: cat,
		cfg:     cfg,
		tmpl:    newTemplates(),
		cards:   imagegen.NewShareCardCache(cfg.CardTTL),
		limiter: newSessionLimiter(cfg.RateLimit, cfg.RateBurst),
		now:     time.Now,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, instrument(pattern, h))
	}

	route("GET /{$}", s.withSession(s.handleIndex))
	route("GET /search", s.handleSearch)
	route("GET /locate", s.handleLocate)
	route("GET /weather/map", s.withSession(s.handleMapOverview))
	route("GET /weather/favorites", s.withSession(s.handleFavorites))
	route("POST /weather/favorites", s.limited(s.handleAddFavoriteForm))
	route("POST /weather/favorites/{id}/delete", s.limited(s.handleDeleteFavoriteForm))
	route("GET /weather/{city}", s.withSession(s.handleWeather))
	route("GET /weather/{city}/chart", s.withSession(s.handleChart))
	route("GET /weather/{city}/map", s.withSession(s.handleMap))
	route("GET /weather/{city}/share.png", s.withSession(s.handleShareCard))
	route("POST /weather/{city}/favorite", s.limited(s.handleToggleFavorite))
	route("GET /settings", s.withSession(s.handleSettings))
	route("POST /settings", s.limited(s.handleSaveSettings))

	route("GET /api/weather/{city}", s.handleAPIWeather)
	route("GET /api/weather/{city}/chart", s.handleAPIChart)
	route("GET /api/weather/{city}/map", s.handleAPIMap)
	route("GET /api/cities", s.handleAPICities)
	route("GET /api/slug", s.handleAPISlug)
	route("GET /api/favorites", s.withSession(s.handleAPIFavorites))
	route("POST /api/favorites", s.limited(s.handleAPIAddFavorite))
	route("DELETE /api/favorites/{id}", s.limited(s.handleAPIDeleteFavorite))
	route("GET /api/settings", s.withSession(s.handleAPISettings))
	route("PUT /api/settings", s.limited(s.handleAPISaveSettings))

	route("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.Handler(),
	}

	go s.runJanitor(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on :%s", s.cfg.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// runJanitor purges idle sessions and their rate limiters until ctx is done.
func (s *Server) runJanitor(ctx context.Context) {
	interval := max(s.cfg.SessionTTL/4, time.Minute)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeIdle()
		}
	}
}

func (s *Server) purgeIdle() {
	cutoff := s.now().Add(-s.cfg.SessionTTL)
	n, err := s.store.PurgeIdleSessions(cutoff)
	if err != nil {
		log.Printf("janitor: purge sessions: %v", err)
		return
	}
	dropped := s.limiter.prune(cutoff)
	if n > 0 {
		metrics.SessionsPurged.Add(float64(n))
		log.Printf("janitor: purged %d idle sessions, %d limiters", n, dropped)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.HTTPRequestLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}
