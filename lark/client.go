package lark

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/larkapps/holistics-embed/internal/config"
	"github.com/larkapps/holistics-embed/internal/errors"
	larkoapi "github.com/larksuite/oapi-sdk-go/v3"
	larkcore "github.com/larksuite/oapi-sdk-go/v3/core"
)

// Open API paths driven through the SDK's raw-request API. The authen
// endpoints have no typed wrapper that preserves the raw response body, which
// the error contract here requires.
const (
	jsapiTicketPath     = "/open-apis/jssdk/ticket/get"
	userAccessTokenPath = "/open-apis/authen/v1/access_token"
	userInfoPath        = "/open-apis/authen/v1/user_info"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Client wraps the official open-platform SDK for a self-built app. The app
// access token is fetched per login rather than held here, and any non-zero
// upstream code fails the whole operation with the upstream response embedded
// in the error.
type Client struct {
	config config.LarkConfig
	api    *larkoapi.Client
}

// NewClient creates a Lark API client. A non-nil httpClient replaces the
// SDK's default transport, which lets tests point the client at a stub server.
func NewClient(cfg config.LarkConfig, httpClient *http.Client) *Client {
	opts := []larkoapi.ClientOptionFunc{
		larkoapi.WithOpenBaseUrl(cfg.GetLarkBaseURL()),
	}
	if httpClient != nil {
		opts = append(opts, larkoapi.WithHttpClient(httpClient))
	}
	return &Client{
		config: cfg,
		api:    larkoapi.NewClient(cfg.GetLarkAppID(), cfg.GetLarkAppSecret(), opts...),
	}
}

// AppID returns the configured Lark app id.
func (c *Client) AppID() string {
	return c.config.GetLarkAppID()
}

// GetConfigParameters fetches a JSAPI ticket and signs it together with the
// current page URL, producing everything the H5 SDK's config call needs. The
// ticket request is authenticated with a tenant access token, which the SDK
// obtains itself.
func (c *Client) GetConfigParameters(ctx context.Context, pageURL string) (*ConfigParameters, error) {
	if pageURL == "" {
		return nil, errors.Wrapf(errors.ErrMissingParameter, "url")
	}

	resp, err := c.api.Do(ctx, &larkcore.ApiReq{
		HttpMethod:                http.MethodGet,
		ApiPath:                   jsapiTicketPath,
		SupportedAccessTokenTypes: []larkcore.AccessTokenType{larkcore.AccessTokenTypeTenant},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", jsapiTicketPath)
	}

	var ticketResp jsapiTicketResponse
	if err := json.Unmarshal(resp.RawBody, &ticketResp); err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "decode response from %s: %s", jsapiTicketPath, resp.RawBody)
	}
	if ticketResp.Code != 0 || ticketResp.Data.Ticket == "" {
		return nil, errors.Wrapf(errors.ErrUpstream, "failed to get jsapi ticket: %s", resp.RawBody)
	}

	timestamp := NowTimeFunc().UnixMilli()
	return &ConfigParameters{
		AppID:     c.config.GetLarkAppID(),
		Ticket:    ticketResp.Data.Ticket,
		Signature: Signature(ticketResp.Data.Ticket, NonceStr, timestamp, pageURL),
		NonceStr:  NonceStr,
		Timestamp: timestamp,
	}, nil
}

// GetLoginInfo exchanges an authorization code for the user's profile:
// app credentials -> app access token, app token + code -> user access token,
// user token -> user info. Each step fails fast, no retries.
func (c *Client) GetLoginInfo(ctx context.Context, code string) (*UserInfo, error) {
	if code == "" {
		return nil, errors.Wrapf(errors.ErrMissingParameter, "code")
	}

	appTokenResp, err := c.api.GetAppAccessTokenBySelfBuiltApp(ctx, &larkcore.SelfBuiltAppAccessTokenReq{
		AppID:     c.config.GetLarkAppID(),
		AppSecret: c.config.GetLarkAppSecret(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "request app access token")
	}
	if appTokenResp.Code != 0 || appTokenResp.AppAccessToken == "" {
		return nil, errors.Wrapf(errors.ErrUpstream, "failed to get app access token: code %d, msg: %s",
			appTokenResp.Code, appTokenResp.Msg)
	}

	userTokenApiResp, err := c.api.Do(ctx, &larkcore.ApiReq{
		HttpMethod: http.MethodPost,
		ApiPath:    userAccessTokenPath,
		Body: map[string]string{
			"grant_type": "authorization_code",
			"code":       code,
		},
		SupportedAccessTokenTypes: []larkcore.AccessTokenType{larkcore.AccessTokenTypeApp},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", userAccessTokenPath)
	}

	var tokenResp userAccessTokenResponse
	if err := json.Unmarshal(userTokenApiResp.RawBody, &tokenResp); err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "decode response from %s: %s", userAccessTokenPath, userTokenApiResp.RawBody)
	}
	if tokenResp.Code != 0 || tokenResp.Data.AccessToken == "" {
		return nil, errors.Wrapf(errors.ErrUpstream, "failed to exchange code for user token: %s", userTokenApiResp.RawBody)
	}

	infoApiResp, err := c.api.Do(ctx, &larkcore.ApiReq{
		HttpMethod:                http.MethodGet,
		ApiPath:                   userInfoPath,
		SupportedAccessTokenTypes: []larkcore.AccessTokenType{larkcore.AccessTokenTypeUser},
	}, larkcore.WithUserAccessToken(tokenResp.Data.AccessToken))
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", userInfoPath)
	}

	var infoResp userInfoResponse
	if err := json.Unmarshal(infoApiResp.RawBody, &infoResp); err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "decode response from %s: %s", userInfoPath, infoApiResp.RawBody)
	}
	if infoResp.Code != 0 {
		return nil, errors.Wrapf(errors.ErrUpstream, "failed to get user info: %s", infoApiResp.RawBody)
	}

	return &infoResp.Data, nil
}
