package embed

import (
	"fmt"
	"net/url"
	"strings"
)

// GenerateURL joins the configured base URL and portal hashcode with the
// signed token as the _token query parameter. The base and hashcode are not
// validated: a misconfigured base yields a malformed but non-failing URL.
func (s *Service) GenerateURL(attrs UserAttributes, tok string, exp int64) *URLResponse {
	base := strings.TrimSuffix(s.config.GetEmbedBase(), "/")
	hashcode := s.config.GetEmbedHashcode()

	return &URLResponse{
		URL:            fmt.Sprintf("%s/%s?_token=%s", base, hashcode, url.QueryEscape(tok)),
		Token:          tok,
		Exp:            exp,
		UserAttributes: attrs,
	}
}

// CreateEmbedURL mints a fresh token for the user and wraps it in a clickable
// embed URL.
func (s *Service) CreateEmbedURL(attrs UserAttributes) (*URLResponse, error) {
	tokenResponse, err := s.BuildToken(attrs)
	if err != nil {
		return nil, err
	}
	return s.GenerateURL(attrs, tokenResponse.Token, tokenResponse.Exp), nil
}
