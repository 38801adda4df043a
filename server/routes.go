package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	// SDK bootstrap + identity
	s.RegisterRouteHandler("GET "+RouteConfigParameters, ChainMiddleware(s.ConfigParametersHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteUserInfo, ChainMiddleware(s.UserInfoHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAppID, ChainMiddleware(s.AppIDHandler(), s.APIMiddleware()...))

	// Embed token minting
	s.RegisterRouteHandler("POST "+RouteAPIEmbedURL, ChainMiddleware(s.EmbedURLHandler(), s.APIMiddleware()...))

	// Static front-end assets plus the JSON 404 for everything unmatched.
	// The bare "/" pattern catches all methods and paths no other route claims.
	s.RegisterRouteHandler("/", ChainMiddleware(s.StaticHandler(), s.APIMiddleware()...))
}
