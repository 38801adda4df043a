package lark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/larkapps/holistics-embed/internal/errors"
	"github.com/larkapps/holistics-embed/lark"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	baseURL string
}

func (testConfig) GetLarkAppID() string     { return "cli_test_app" }
func (testConfig) GetLarkAppSecret() string { return "test_secret" }
func (c testConfig) GetLarkBaseURL() string { return c.baseURL }

// larkStub emulates the subset of the open API the client talks to.
type larkStub struct {
	mux *http.ServeMux

	// request capture
	appTokenBody  map[string]string
	ticketAuth    string
	userTokenAuth string
	userTokenBody map[string]string
	userInfoAuth  string

	// canned responses (JSON strings); empty means a sensible success default
	appTokenResponse    string
	tenantTokenResponse string
	ticketResponse      string
	userTokenResponse   string
	userInfoResponse    string
}

func newLarkStub() *larkStub {
	s := &larkStub{mux: http.NewServeMux()}

	s.mux.HandleFunc("POST /open-apis/auth/v3/app_access_token/internal", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&s.appTokenBody)
		s.respond(w, s.appTokenResponse,
			`{"code":0,"msg":"ok","app_access_token":"app-token","expire":7200}`)
	})
	s.mux.HandleFunc("POST /open-apis/auth/v3/tenant_access_token/internal", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, s.tenantTokenResponse,
			`{"code":0,"msg":"ok","tenant_access_token":"tenant-token","expire":7200}`)
	})
	s.mux.HandleFunc("GET /open-apis/jssdk/ticket/get", func(w http.ResponseWriter, r *http.Request) {
		s.ticketAuth = r.Header.Get("Authorization")
		s.respond(w, s.ticketResponse,
			`{"code":0,"msg":"ok","data":{"ticket":"jsapi-ticket","expire_in":7200}}`)
	})
	s.mux.HandleFunc("POST /open-apis/authen/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		s.userTokenAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&s.userTokenBody)
		s.respond(w, s.userTokenResponse,
			`{"code":0,"msg":"ok","data":{"access_token":"user-token","token_type":"Bearer","expires_in":7200}}`)
	})
	s.mux.HandleFunc("GET /open-apis/authen/v1/user_info", func(w http.ResponseWriter, r *http.Request) {
		s.userInfoAuth = r.Header.Get("Authorization")
		s.respond(w, s.userInfoResponse,
			`{"code":0,"msg":"ok","data":{"name":"Ada Lovelace","email":"ada@example.com","open_id":"ou_1"}}`)
	})

	return s
}

func (s *larkStub) respond(w http.ResponseWriter, body, fallback string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if body == "" {
		body = fallback
	}
	_, _ = w.Write([]byte(body))
}

func newTestClient(t *testing.T, stub *larkStub) *lark.Client {
	t.Helper()
	ts := httptest.NewServer(stub.mux)
	t.Cleanup(ts.Close)
	return lark.NewClient(testConfig{baseURL: ts.URL}, ts.Client())
}

func TestGetConfigParameters(t *testing.T) {
	t.Run("signs the ticket for the given url", func(t *testing.T) {
		stub := newLarkStub()
		client := newTestClient(t, stub)

		pageURL := "https://app.example.com/embed?foo=bar"
		params, err := client.GetConfigParameters(context.Background(), pageURL)
		require.NoError(t, err)

		require.Equal(t, "cli_test_app", params.AppID)
		require.Equal(t, "jsapi-ticket", params.Ticket)
		require.Equal(t, lark.NonceStr, params.NonceStr)
		require.NotZero(t, params.Timestamp)
		require.Equal(t, lark.Signature("jsapi-ticket", lark.NonceStr, params.Timestamp, pageURL), params.Signature)

		// ticket request is authenticated with the tenant access token
		require.Equal(t, "Bearer tenant-token", stub.ticketAuth)
	})

	t.Run("empty url", func(t *testing.T) {
		client := newTestClient(t, newLarkStub())

		_, err := client.GetConfigParameters(context.Background(), "")
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrMissingParameter))
	})

	t.Run("ticket fetch failure embeds upstream body", func(t *testing.T) {
		stub := newLarkStub()
		stub.ticketResponse = `{"code":99991663,"msg":"tenant token invalid"}`
		client := newTestClient(t, stub)

		_, err := client.GetConfigParameters(context.Background(), "https://app.example.com")
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrUpstream))
		require.Contains(t, err.Error(), "tenant token invalid")
	})
}

func TestGetLoginInfo(t *testing.T) {
	t.Run("three step exchange", func(t *testing.T) {
		stub := newLarkStub()
		client := newTestClient(t, stub)

		info, err := client.GetLoginInfo(context.Background(), "auth-code-1")
		require.NoError(t, err)
		require.Equal(t, "Ada Lovelace", info.Name)
		require.Equal(t, "ada@example.com", info.Email)

		require.Equal(t, "cli_test_app", stub.appTokenBody["app_id"])
		require.Equal(t, "test_secret", stub.appTokenBody["app_secret"])
		require.Equal(t, "Bearer app-token", stub.userTokenAuth)
		require.Equal(t, "authorization_code", stub.userTokenBody["grant_type"])
		require.Equal(t, "auth-code-1", stub.userTokenBody["code"])
		require.Equal(t, "Bearer user-token", stub.userInfoAuth)
	})

	t.Run("empty code", func(t *testing.T) {
		client := newTestClient(t, newLarkStub())

		_, err := client.GetLoginInfo(context.Background(), "")
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrMissingParameter))
	})

	t.Run("app token failure aborts the chain", func(t *testing.T) {
		stub := newLarkStub()
		stub.appTokenResponse = `{"code":10003,"msg":"invalid app_secret"}`
		client := newTestClient(t, stub)

		_, err := client.GetLoginInfo(context.Background(), "auth-code-1")
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrUpstream))
		require.Contains(t, err.Error(), "invalid app_secret")
		require.Empty(t, stub.userTokenAuth)
	})

	t.Run("user token failure embeds upstream body", func(t *testing.T) {
		stub := newLarkStub()
		stub.userTokenResponse = `{"code":20007,"msg":"code already used"}`
		client := newTestClient(t, stub)

		_, err := client.GetLoginInfo(context.Background(), "auth-code-1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "code already used")
	})

	t.Run("user info failure embeds upstream body", func(t *testing.T) {
		stub := newLarkStub()
		stub.userInfoResponse = `{"code":20008,"msg":"user token expired"}`
		client := newTestClient(t, stub)

		_, err := client.GetLoginInfo(context.Background(), "auth-code-1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "user token expired")
	})
}
