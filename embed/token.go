package embed

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/larkapps/holistics-embed/internal/config"
	"github.com/larkapps/holistics-embed/internal/errors"
	"github.com/larkapps/holistics-embed/token"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

const (
	// tokenTTL is how long a minted embed token stays valid.
	tokenTTL = 15 * time.Minute

	objectType = "EmbedPortal"
)

// UserAttributes scopes an embed token to a single user.
type UserAttributes struct {
	Email string `json:"email"`
}

// TokenResponse is a signed embed token and its unix expiry.
type TokenResponse struct {
	Token string `json:"token"`
	Exp   int64  `json:"exp"`
}

// URLResponse is the full payload returned to the browser: the clickable
// embed URL plus the token material for the refresh loop.
type URLResponse struct {
	URL            string         `json:"url"`
	Token          string         `json:"token"`
	Exp            int64          `json:"exp"`
	UserAttributes UserAttributes `json:"userAttributes"`
}

// Service mints embed tokens and builds embed URLs from configured portal
// settings. Secrets are read per call so a missing value surfaces as a
// request-time error, never as a stale cached config.
type Service struct {
	config config.EmbedConfig
}

// NewService creates an embed service backed by the given configuration.
func NewService(cfg config.EmbedConfig) *Service {
	return &Service{config: cfg}
}

// BuildToken constructs the fixed-shape portal claims for the given user and
// signs them with the configured shared secret. The claims grant no special
// permissions and disable data export and timezone changes.
func (s *Service) BuildToken(attrs UserAttributes) (*TokenResponse, error) {
	secret := s.config.GetEmbedSecret()
	if secret == "" {
		return nil, errors.Wrapf(errors.ErrMissingSecret, "EMBED_SECRET")
	}
	portalName := s.config.GetEmbedPortalName()
	if portalName == "" {
		return nil, errors.Wrapf(errors.ErrMissingSecret, "EMBED_PORTAL_NAME")
	}

	exp := NowTimeFunc().Add(tokenTTL).Unix()
	claims := jwt.MapClaims{
		"object_name": portalName,
		"object_type": objectType,
		"user_attributes": map[string]any{
			"email": attrs.Email,
		},
		"permissions": map[string]any{},
		"exp":         exp,
		"settings": map[string]any{
			"allow_raw_data_export":                 false,
			"allow_dashboard_export":                false,
			"default_timezone":                      nil,
			"allow_dashboard_timezone_change":       false,
			"hide_dashboard_filters_controls_panel": false,
		},
	}

	signed, err := token.NewHMACSigner(secret).Sign(claims)
	if err != nil {
		return nil, errors.Wrapf(err, "build embed token")
	}
	return &TokenResponse{Token: signed, Exp: exp}, nil
}
