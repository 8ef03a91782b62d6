package torrents

// Config holds configuration for the YTS torrent index client.
type Config struct {
	// BaseURL is the root of the YTS API.
	BaseURL string `mapstructure:"base_url" default:"https://yts.mx/api/v2"`
	// TimeoutSeconds is the HTTP request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// CacheMinutes is how long successful lookups are kept in memory.
	CacheMinutes int `mapstructure:"cache_minutes" default:"360"`
	// EmptyCacheMinutes is how long empty results are kept, so a movie
	// with no torrents does not trigger a lookup on every page view.
	EmptyCacheMinutes int `mapstructure:"empty_cache_minutes" default:"60"`
}
