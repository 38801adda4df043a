package config

// Embed holds the Holistics embed portal settings. The signing secret and
// portal name are required for token minting; base URL and hashcode shape the
// final embed link.
type Embed struct{}

var _ EmbedConfig = Embed{}

func (Embed) GetEmbedSecret() string {
	return GetEnv("EMBED_SECRET", "")
}

func (Embed) GetEmbedPortalName() string {
	return GetEnv("EMBED_PORTAL_NAME", "")
}

func (Embed) GetEmbedBase() string {
	return GetEnv("EMBED_BASE", "")
}

func (Embed) GetEmbedHashcode() string {
	return GetEnv("EMBED_HASHCODE", "")
}
