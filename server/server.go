package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/larkapps/holistics-embed/embed"
	"github.com/larkapps/holistics-embed/internal/config"
	"github.com/larkapps/holistics-embed/lark"
	"github.com/larkapps/holistics-embed/server/sessionrepo"
	"github.com/rs/zerolog/log"
)

// IdentityProvider is the server's view of the workplace-suite API client.
type IdentityProvider interface {
	GetConfigParameters(ctx context.Context, pageURL string) (*lark.ConfigParameters, error)
	GetLoginInfo(ctx context.Context, code string) (*lark.UserInfo, error)
	AppID() string
}

// EmbedURLBuilder mints signed embed tokens wrapped in clickable URLs.
type EmbedURLBuilder interface {
	CreateEmbedURL(attrs embed.UserAttributes) (*embed.URLResponse, error)
}

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	idp      IdentityProvider
	embeds   EmbedURLBuilder
	sessions sessionrepo.Repo
}

func New(cfg config.Config, idp IdentityProvider, embeds EmbedURLBuilder, sessions sessionrepo.Repo) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		idp:      idp,
		embeds:   embeds,
		sessions: sessions,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Info().Msgf("[%-19s] %s", displayMethod, path)
}
