package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/lox/skyview/internal/imagegen"
	"github.com/lox/skyview/internal/metrics"
	"github.com/lox/skyview/internal/units"
)

func (s *Server) handleShareCard(w http.ResponseWriter, r *http.Request, sessionID string) {
	city, ok := cityParam(w, r, "share.png")
	if !ok {
		return
	}
	st := s.settingsFor(sessionID)

	// The card depends on the city, the unit and the theme.
	key := fmt.Sprintf("%s|%s|%t", city, st.TemperatureUnit, st.DarkMode)
	if data, ok := s.cards.Get(key); ok {
		metrics.ShareCardCacheHits.WithLabelValues("hit").Inc()
		serveShareCard(w, data)
		return
	}
	metrics.ShareCardCacheHits.WithLabelValues("miss").Inc()

	report := s.synth.Synthesize(city)
	metrics.ReportsSynthesized.WithLabelValues("share").Inc()
	page := newPage(report.City, st, report.Current.Condition, report.Current.Temp)

	data, err := imagegen.GenerateShareCard(imagegen.ShareCardData{
		City:        report.City,
		Temperature: units.FormatTemp(report.Current.Temp, st.TemperatureUnit),
		Condition:   report.Current.Condition,
		Background:  page.Palette.Background,
		Accent:      page.Palette.Accent,
	})
	if err != nil {
		log.Printf("share card %s: %v", city, err)
		http.Error(w, "failed to render share card", http.StatusInternalServerError)
		return
	}

	s.cards.Set(key, data)
	serveShareCard(w, data)
}

// serveShareCard marks cards private: they reflect per-session settings.
func serveShareCard(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=600")
	w.Write(data)
}
