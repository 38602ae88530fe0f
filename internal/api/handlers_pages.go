package api

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lox/skyview/internal/htmlutil"
	"github.com/lox/skyview/internal/metrics"
	"github.com/lox/skyview/internal/models"
	"github.com/lox/skyview/internal/slug"
	"github.com/lox/skyview/internal/store"
)

// currentLocation stands in for the device position; coordinates are never
// resolved to a real city.
const currentLocation models.CityIdentifier = "current-location"

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	s.renderStatus(w, http.StatusOK, name, data)
}

func (s *Server) renderStatus(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("template error: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) settingsFor(sessionID string) models.Settings {
	st, err := s.store.GetSettings(sessionID)
	if err != nil {
		log.Printf("get settings %s: %v", sessionID, err)
		return models.DefaultSettings()
	}
	return st
}

// cityParam reads the {city} path segment. Names that are not already in
// identifier form are redirected to their canonical path.
func cityParam(w http.ResponseWriter, r *http.Request, rest ...string) (models.CityIdentifier, bool) {
	raw := r.PathValue("city")
	city := slug.ToIdentifier(raw)
	if city == "" {
		http.NotFound(w, r)
		return "", false
	}
	if string(city) != raw {
		target := cityPath(city, rest...)
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return "", false
	}
	return city, true
}

// wantsText reports whether the client asked for plain text, either
// explicitly or by being curl.
func wantsText(r *http.Request) bool {
	if r.URL.Query().Get("format") == "text" {
		return true
	}
	return strings.HasPrefix(r.UserAgent(), "curl/")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, sessionID string) {
	s.render(w, "index.html", buildIndexData(s.catalog, s.settingsFor(sessionID)))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, cityPath(slug.ToIdentifier(q)), http.StatusSeeOther)
}

func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	log.Printf("locate: lat=%q lon=%q", q.Get("lat"), q.Get("lon"))
	http.Redirect(w, r, cityPath(currentLocation), http.StatusSeeOther)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request, sessionID string) {
	city, ok := cityParam(w, r)
	if !ok {
		return
	}

	report := s.synth.Synthesize(city)
	metrics.ReportsSynthesized.WithLabelValues("report").Inc()

	favorite, err := s.store.IsFavorite(sessionID, city)
	if err != nil {
		log.Printf("is favorite %s: %v", city, err)
	}
	data := buildWeatherData(report, s.settingsFor(sessionID), favorite)

	if !wantsText(r) {
		s.render(w, "weather.html", data)
		return
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "weather_text.html", data); err != nil {
		log.Printf("template error: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(htmlutil.ToText(buf.String())))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request, sessionID string) {
	city, ok := cityParam(w, r, "chart")
	if !ok {
		return
	}
	chart := s.synth.Chart(city)
	metrics.ReportsSynthesized.WithLabelValues("chart").Inc()
	s.render(w, "chart.html", buildChartData(chart, s.settingsFor(sessionID)))
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request, sessionID string) {
	city, ok := cityParam(w, r, "map")
	if !ok {
		return
	}
	s.renderMap(w, city, sessionID)
}

// handleMapOverview serves the map without a chosen city, centred on the
// current location.
func (s *Server) handleMapOverview(w http.ResponseWriter, r *http.Request, sessionID string) {
	s.renderMap(w, currentLocation, sessionID)
}

func (s *Server) renderMap(w http.ResponseWriter, city models.CityIdentifier, sessionID string) {
	overview := s.synth.Map(city)
	metrics.ReportsSynthesized.WithLabelValues("map").Inc()
	s.render(w, "map.html", buildMapData(overview, s.settingsFor(sessionID)))
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request, sessionID string) {
	city, ok := cityParam(w, r, "favorite")
	if !ok {
		return
	}

	existing, err := s.store.FindFavorite(sessionID, city)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if existing != nil {
		if err := s.store.RemoveFavorite(sessionID, existing.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		metrics.FavoriteOps.WithLabelValues("remove").Inc()
	} else {
		if _, err := s.store.AddFavorite(sessionID, favoriteFor(s.synth.Synthesize(city), s.catalog)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		metrics.FavoriteOps.WithLabelValues("add").Inc()
	}

	http.Redirect(w, r, cityPath(city), http.StatusSeeOther)
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request, sessionID string) {
	favorites, err := s.store.ListFavorites(sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	s.render(w, "favorites.html", buildFavoritesData(favorites, query, s.settingsFor(sessionID)))
}

func (s *Server) handleAddFavoriteForm(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostForm.Get("name"))
	if name != "" {
		if _, err := s.addFavoriteByName(sessionID, name); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	http.Redirect(w, r, "/weather/favorites", http.StatusSeeOther)
}

// addFavoriteByName stars a city typed by the user, keeping their spelling
// unless the catalog knows the city.
func (s *Server) addFavoriteByName(sessionID, name string) (models.FavoriteEntry, error) {
	report := s.synth.Synthesize(slug.ToIdentifier(name))
	f := favoriteFor(report, s.catalog)
	if _, known := s.catalog.Lookup(report.Identifier); !known {
		f.Name = name
	}
	saved, err := s.store.AddFavorite(sessionID, f)
	if err != nil {
		return models.FavoriteEntry{}, err
	}
	metrics.FavoriteOps.WithLabelValues("add").Inc()
	return saved, nil
}

func (s *Server) handleDeleteFavoriteForm(w http.ResponseWriter, r *http.Request, sessionID string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid favorite id", http.StatusBadRequest)
		return
	}
	if err := s.store.RemoveFavorite(sessionID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.FavoriteOps.WithLabelValues("remove").Inc()
	http.Redirect(w, r, "/weather/favorites", http.StatusSeeOther)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request, sessionID string) {
	saved := r.URL.Query().Get("saved") == "1"
	s.render(w, "settings.html", buildSettingsData(s.settingsFor(sessionID), saved))
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st := settingsFromForm(r.PostForm, s.settingsFor(sessionID))
	if err := s.store.SaveSettings(sessionID, st); err != nil {
		if errors.Is(err, models.ErrInvalidSetting) {
			// Show the form again with the stored values and the reason.
			data := buildSettingsData(s.settingsFor(sessionID), false)
			data.Error = err.Error()
			s.renderStatus(w, http.StatusBadRequest, "settings.html", data)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
}

// settingsFromForm overlays submitted selects onto current. Toggles follow
// checkbox semantics: absent means off.
func settingsFromForm(form url.Values, current models.Settings) models.Settings {
	st := current
	selects := map[string]*string{
		"temperatureUnit": &st.TemperatureUnit,
		"windUnit":        &st.WindUnit,
		"pressureUnit":    &st.PressureUnit,
		"language":        &st.Language,
		"timeFormat":      &st.TimeFormat,
	}
	for key, field := range selects {
		if form.Has(key) {
			*field = form.Get(key)
		}
	}

	toggles := map[string]*bool{
		"notifications": &st.Notifications,
		"weatherAlerts": &st.WeatherAlerts,
		"dailyForecast": &st.DailyForecast,
		"autoLocation":  &st.AutoLocation,
		"darkMode":      &st.DarkMode,
	}
	for key, field := range toggles {
		*field = form.Has(key)
	}
	return st
}
