package lark

// ConfigParameters is everything the client-side H5 SDK needs to initialise.
// Field names match what the SDK's config call expects, so they are produced
// once per page load and handed straight through.
type ConfigParameters struct {
	AppID     string `json:"appid"`
	Ticket    string `json:"ticket"`
	Signature string `json:"signature"`
	NonceStr  string `json:"noncestr"`
	Timestamp int64  `json:"timestamp"`
}

// UserInfo is the profile returned by authen/v1/user_info. Kept as the raw
// provider shape; only Email is consumed server-side.
type UserInfo struct {
	Name            string `json:"name"`
	EnName          string `json:"en_name,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	AvatarThumb     string `json:"avatar_thumb,omitempty"`
	AvatarMiddle    string `json:"avatar_middle,omitempty"`
	AvatarBig       string `json:"avatar_big,omitempty"`
	OpenID          string `json:"open_id,omitempty"`
	UnionID         string `json:"union_id,omitempty"`
	Email           string `json:"email,omitempty"`
	EnterpriseEmail string `json:"enterprise_email,omitempty"`
	UserID          string `json:"user_id,omitempty"`
	Mobile          string `json:"mobile,omitempty"`
	TenantKey       string `json:"tenant_key,omitempty"`
	EmployeeNo      string `json:"employee_no,omitempty"`
}

type jsapiTicketResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Ticket   string `json:"ticket"`
		ExpireIn int    `json:"expire_in"`
	} `json:"data"`
}

type userAccessTokenResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		AccessToken      string `json:"access_token"`
		TokenType        string `json:"token_type"`
		ExpiresIn        int    `json:"expires_in"`
		RefreshToken     string `json:"refresh_token"`
		RefreshExpiresIn int    `json:"refresh_expires_in"`
	} `json:"data"`
}

type userInfoResponse struct {
	Code int      `json:"code"`
	Msg  string   `json:"msg"`
	Data UserInfo `json:"data"`
}
