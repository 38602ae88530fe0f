package api

import (
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/google/uuid"

	"github.com/lox/skyview/internal/metrics"
	"github.com/lox/skyview/internal/store"
)

const sessionCookie = "skyview_session"

type sessionHandlerFunc func(w http.ResponseWriter, r *http.Request, sessionID string)

// withSession resolves the caller's session from its cookie and passes the
// id on. Callers without a live session get a new one.
func (s *Server) withSession(h sessionHandlerFunc) http.HandlerFunc {
	return s.sessionHandler(h, false)
}

// limited is withSession for mutating routes: every request spends a token
// from the session's bucket.
func (s *Server) limited(h sessionHandlerFunc) http.HandlerFunc {
	return s.sessionHandler(h, true)
}

func (s *Server) sessionHandler(h sessionHandlerFunc, mutating bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, known, err := s.knownSession(r)
		if err != nil {
			log.Printf("session error: %v", err)
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		// Creating a session is charged to the client address, so dropping
		// the cookie neither resets the bucket nor seeds sessions for free.
		key := id
		if !known {
			key = "addr:" + clientAddr(r)
		}
		if (mutating || !known) && !s.limiter.allow(key, s.now()) {
			metrics.RateLimited.Inc()
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		if !known {
			if id, err = s.newSession(); err != nil {
				log.Printf("session error: %v", err)
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}
		}
		s.setSessionCookie(w, id)
		h(w, r, id)
	}
}

// knownSession returns the cookie's session if it is well formed and still
// live, marking it as seen.
func (s *Server) knownSession(r *http.Request) (string, bool, error) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false, nil
	}
	parsed, err := uuid.Parse(c.Value)
	if err != nil {
		return "", false, nil
	}
	id := parsed.String()

	ok, err := s.store.SessionExists(id)
	if err != nil || !ok {
		return "", false, err
	}
	if err := s.store.TouchSession(id, s.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Purged between the two queries.
			return "", false, nil
		}
		return "", false, err
	}
	return id, true, nil
}

func (s *Server) newSession() (string, error) {
	id := uuid.NewString()
	created, err := s.store.EnsureSession(id, s.now())
	if err != nil {
		return "", err
	}
	if created {
		metrics.SessionsCreated.Inc()
	}
	return id, nil
}

// setSessionCookie refreshes the cookie on every response so it outlives
// the session's idle window.
func (s *Server) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
