package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/larkapps/holistics-embed/embed"
	"github.com/larkapps/holistics-embed/lark"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// HealthHandler reports liveness
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// ConfigParametersHandler returns the signed JSAPI config for the page URL in
// the query string.
func (s *Server) ConfigParametersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageURL := r.URL.Query().Get("url")
		if pageURL == "" {
			writeJSONError(w, http.StatusBadRequest, "URL parameter is required")
			return
		}

		params, err := s.idp.GetConfigParameters(r.Context(), pageURL)
		if err != nil {
			log.Err(err).Msg("config parameters error")
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, params)
	}
}

// UserInfoHandler exchanges an authorization code for the user's profile.
func (s *Server) UserInfoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			writeJSONError(w, http.StatusBadRequest, "Authorization code is required")
			return
		}

		info, err := s.idp.GetLoginInfo(r.Context(), code)
		if err != nil {
			log.Err(err).Msg("user info error")
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

// AppIDHandler returns the raw app id as a text body, not JSON. The browser
// client feeds it straight into the SDK's authorization call.
func (s *Server) AppIDHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeText)
		_, _ = w.Write([]byte(s.idp.AppID()))
	}
}

type embedURLRequest struct {
	UserInfo *lark.UserInfo `json:"userInfo"`
}

// EmbedURLHandler mints a fresh embed token for the caller-supplied user info.
// It trusts the email the caller obtained from the user-info endpoint and does
// not re-verify the authorization code.
func (s *Server) EmbedURLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req embedURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserInfo == nil {
			writeJSONError(w, http.StatusBadRequest, "Missing user info. Please provide 'userInfo' parameter.")
			return
		}

		response, err := s.embeds.CreateEmbedURL(embed.UserAttributes{Email: req.UserInfo.Email})
		if err != nil {
			log.Err(err).Msg("embed URL generation error")
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// StaticHandler serves the embedded front-end assets for GET requests and
// answers everything else with the JSON 404.
func (s *Server) StaticHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fileName := strings.TrimPrefix(r.URL.Path, "/")
			if fileName == "" {
				fileName = "index.html"
			}
			if err := StreamFile(w, r, fileName); err == nil {
				return
			}
		}
		writeJSONError(w, http.StatusNotFound, "Route not found")
	}
}
