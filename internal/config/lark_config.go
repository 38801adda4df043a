package config

// Lark reads the workplace-suite credentials from the environment. The app id
// and secret have no defaults: requests that need them fail at call time when
// they are unset.
type Lark struct{}

var _ LarkConfig = Lark{}

func (Lark) GetLarkAppID() string {
	return GetEnv("LARK_APP_ID", "")
}

func (Lark) GetLarkAppSecret() string {
	return GetEnv("LARK_APP_SECRET", "")
}

func (Lark) GetLarkBaseURL() string {
	return GetEnv("LARK_BASE_URL", "https://open.feishu.cn")
}
