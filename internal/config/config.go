package config

type Config interface {
	EnvConfig
	LarkConfig
	EmbedConfig
	SessionConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type LarkConfig interface {
	GetLarkAppID() string
	GetLarkAppSecret() string
	GetLarkBaseURL() string
}

type EmbedConfig interface {
	GetEmbedSecret() string
	GetEmbedPortalName() string
	GetEmbedBase() string
	GetEmbedHashcode() string
}

type SessionConfig interface {
	GetSessionSecret() string
}

type mainConfig struct {
	EnvVars
	Lark
	Embed
	Session
}

func New() Config {
	return mainConfig{}
}
