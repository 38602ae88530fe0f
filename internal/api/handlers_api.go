package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/lox/skyview/internal/metrics"
	"github.com/lox/skyview/internal/models"
	"github.com/lox/skyview/internal/slug"
	"github.com/lox/skyview/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// apiCity reads {city} and normalizes it without redirecting.
func apiCity(w http.ResponseWriter, r *http.Request) (models.CityIdentifier, bool) {
	city := slug.ToIdentifier(r.PathValue("city"))
	if city == "" {
		writeError(w, http.StatusNotFound, "unknown city")
		return "", false
	}
	return city, true
}

func (s *Server) handleAPIWeather(w http.ResponseWriter, r *http.Request) {
	city, ok := apiCity(w, r)
	if !ok {
		return
	}
	metrics.ReportsSynthesized.WithLabelValues("report").Inc()
	writeJSON(w, http.StatusOK, s.synth.Synthesize(city))
}

func (s *Server) handleAPIChart(w http.ResponseWriter, r *http.Request) {
	city, ok := apiCity(w, r)
	if !ok {
		return
	}
	metrics.ReportsSynthesized.WithLabelValues("chart").Inc()
	writeJSON(w, http.StatusOK, s.synth.Chart(city))
}

func (s *Server) handleAPIMap(w http.ResponseWriter, r *http.Request) {
	city, ok := apiCity(w, r)
	if !ok {
		return
	}
	metrics.ReportsSynthesized.WithLabelValues("map").Inc()
	writeJSON(w, http.StatusOK, s.synth.Map(city))
}

type cityJSON struct {
	Name       string                `json:"name"`
	Country    string                `json:"country,omitempty"`
	Temp       *int                  `json:"temp,omitempty"`
	Condition  string                `json:"condition,omitempty"`
	Identifier models.CityIdentifier `json:"identifier"`
}

func (s *Server) handleAPICities(w http.ResponseWriter, r *http.Request) {
	popular := make([]cityJSON, 0, len(s.catalog.Popular))
	for _, p := range s.catalog.Popular {
		temp := p.Temp
		popular = append(popular, cityJSON{
			Name:       p.Name,
			Country:    p.Country,
			Temp:       &temp,
			Condition:  p.Condition,
			Identifier: slug.ToIdentifier(p.Name),
		})
	}
	recent := make([]cityJSON, 0, len(s.catalog.Recent))
	for _, l := range s.catalog.RecentLinks() {
		recent = append(recent, cityJSON{Name: l.Name, Identifier: l.Identifier})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"popular": popular,
		"recent":  recent,
	})
}

func (s *Server) handleAPISlug(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}
	id := slug.ToIdentifier(name)
	writeJSON(w, http.StatusOK, map[string]string{
		"name":       name,
		"identifier": string(id),
		"label":      slug.ToDisplayLabel(id),
	})
}

func (s *Server) handleAPIFavorites(w http.ResponseWriter, r *http.Request, sessionID string) {
	favorites, err := s.store.ListFavorites(sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"favorites": models.FilterFavorites(favorites, strings.TrimSpace(r.URL.Query().Get("q"))),
		"summary":   models.SummarizeFavorites(favorites),
	})
}

func (s *Server) handleAPIAddFavorite(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}

	saved, err := s.addFavoriteByName(sessionID, name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleAPIDeleteFavorite(w http.ResponseWriter, r *http.Request, sessionID string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid favorite id")
		return
	}
	if err := s.store.RemoveFavorite(sessionID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.FavoriteOps.WithLabelValues("remove").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPISettings(w http.ResponseWriter, r *http.Request, sessionID string) {
	writeJSON(w, http.StatusOK, s.settingsFor(sessionID))
}

// handleAPISaveSettings applies a partial update: fields missing from the
// body keep their current values.
func (s *Server) handleAPISaveSettings(w http.ResponseWriter, r *http.Request, sessionID string) {
	st := s.settingsFor(sessionID)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&st); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := s.store.SaveSettings(sessionID, st); err != nil {
		if errors.Is(err, models.ErrInvalidSetting) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": Version,
		"seeded":  s.synth.Seeded(),
	}

	if err := s.store.Ping(); err != nil {
		status["status"] = "degraded"
		status["error"] = err.Error()
		writeJSON(w, http.StatusServiceUnavailable, status)
		return
	}
	if n, err := s.store.CountSessions(); err == nil {
		status["sessions"] = n
	}
	if v, err := s.store.MigrationVersion(); err == nil {
		status["schema_version"] = v
	}
	writeJSON(w, http.StatusOK, status)
}
