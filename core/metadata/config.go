package metadata

// Config holds configuration for the TMDB metadata client.
type Config struct {
	// ApiKey is the TMDB API key. Metadata lookups are disabled when empty.
	ApiKey string `mapstructure:"api_key" default:""`
	// BaseURL is the root of the TMDB API.
	BaseURL string `mapstructure:"base_url" default:"https://api.themoviedb.org/3"`
	// ImageBaseURL is the prefix for poster file paths.
	ImageBaseURL string `mapstructure:"image_base_url" default:"https://image.tmdb.org/t/p/w500"`
	// TimeoutSeconds is the HTTP request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// SearchCacheMinutes is how long search results are kept in memory.
	SearchCacheMinutes int `mapstructure:"search_cache_minutes" default:"60"`
	// DetailCacheMinutes is how long movie details are kept in memory.
	DetailCacheMinutes int `mapstructure:"detail_cache_minutes" default:"1440"`
}
