package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteHealth = "/health"

	// SDK bootstrap and identity routes
	RouteConfigParameters = "/get_config_parameters"
	RouteUserInfo         = "/get_user_info"
	RouteAppID            = "/get_app_id"

	// API Routes
	RouteAPIEmbedURL = "/api/embed-url"
)
