package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/larkapps/holistics-embed/server/sessionrepo"
	"github.com/rs/zerolog/log"
)

const sessionCookieName = "sid"

// Session cookies carry "<id>.<signature>", the signature being an HMAC-SHA256
// of the id under SESSION_SECRET. A cookie whose signature does not verify is
// treated the same as no cookie at all.
func (s *Server) signSessionID(sessionID string) string {
	return sessionID + "." + sessionIDDigest(sessionID, s.config.GetSessionSecret())
}

func (s *Server) sessionIDFromCookie(value string) (string, bool) {
	sessionID, signature, found := strings.Cut(value, ".")
	if !found || sessionID == "" {
		return "", false
	}
	expected := sessionIDDigest(sessionID, s.config.GetSessionSecret())
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return "", false
	}
	return sessionID, true
}

func sessionIDDigest(sessionID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

func (s *Server) APIMiddleware() []func(http.HandlerFunc) http.HandlerFunc {
	return []func(http.HandlerFunc) http.HandlerFunc{
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.SessionMiddleware,
	}
}

func (s *Server) LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.env != "DEV" {
			next(w, r)
			return
		}
		logRoute(r.Method, r.URL.Path)
		next(w, r)
	}
}

func (s *Server) RecoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panicked")
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next(w, r)
	}
}

// SessionMiddleware ensures every browser gets an HTTP-only, signed session
// cookie backed by the session store. No endpoint reads session data yet; the
// middleware only establishes the session.
func (s *Server) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
			if sessionID, ok := s.sessionIDFromCookie(cookie.Value); ok {
				if _, err := s.sessions.Get(sessionID); err == nil {
					next(w, r)
					return
				}
			}
		}

		sessionID := uuid.New().String()
		if err := s.sessions.Upsert(sessionID, sessionrepo.Session{
			ID:        sessionID,
			CreatedAt: time.Now(),
			Values:    make(map[string]string),
		}); err != nil {
			log.Err(err).Msg("failed to create session")
			next(w, r)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    s.signSessionID(sessionID),
			Path:     "/",
			HttpOnly: true,
			Secure:   s.env == "PROD", // Only secure behind HTTPS
			SameSite: http.SameSiteLaxMode,
		})
		next(w, r)
	}
}
