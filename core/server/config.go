package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// Empty disables authentication (single-user local install).
	ApiKey string `mapstructure:"api_key" default:""`
	// PageSize is the default page size for list endpoints.
	PageSize int `mapstructure:"page_size" default:"12"`
}
