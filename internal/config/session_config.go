package config

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionSecret() string {
	return GetEnv("SESSION_SECRET", "dev-secret")
}
