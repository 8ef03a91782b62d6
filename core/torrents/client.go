package torrents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Client defines the torrent index lookups the application performs.
type Client interface {
	// ListTorrents returns every torrent the index knows for an IMDB id.
	// An empty slice with a nil error means the index legitimately has
	// nothing; a non-nil error means a transient provider failure.
	ListTorrents(ctx context.Context, imdbID string) ([]Torrent, error)
	// QualityTorrents returns torrents filtered by the quality allow-list.
	QualityTorrents(ctx context.Context, imdbID string, qualities []string) ([]Torrent, error)
}

// HTTPClient talks to the YTS API over HTTP with retries and a short-TTL
// in-memory cache in front of it.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	emptyTTL   time.Duration
	logger     *zap.Logger
}

// NewClient creates a new YTS client.
func NewClient(cfg Config, logger *zap.Logger) *HTTPClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	cacheTTL := time.Duration(cfg.CacheMinutes) * time.Minute
	if cacheTTL <= 0 {
		cacheTTL = 6 * time.Hour
	}
	emptyTTL := time.Duration(cfg.EmptyCacheMinutes) * time.Minute
	if emptyTTL <= 0 {
		emptyTTL = time.Hour
	}

	return &HTTPClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		cache:    gocache.New(cacheTTL, 10*time.Minute),
		emptyTTL: emptyTTL,
		logger:   logger,
	}
}

// ListTorrents looks up torrents for an IMDB id, serving from the in-memory
// tier when possible. Failed lookups are never cached.
func (c *HTTPClient) ListTorrents(ctx context.Context, imdbID string) ([]Torrent, error) {
	if imdbID == "" {
		return nil, fmt.Errorf("imdb id is required")
	}

	cacheKey := "yts_torrents_" + imdbID
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]Torrent), nil
	}

	list, err := c.fetch(ctx, imdbID)
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		// Shorter TTL for empty results to avoid hammering the index
		c.cache.Set(cacheKey, list, c.emptyTTL)
	} else {
		c.cache.Set(cacheKey, list, gocache.DefaultExpiration)
	}
	return list, nil
}

// QualityTorrents returns torrents filtered by the quality allow-list.
func (c *HTTPClient) QualityTorrents(ctx context.Context, imdbID string, qualities []string) ([]Torrent, error) {
	list, err := c.ListTorrents(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	return FilterByQuality(list, qualities), nil
}

func (c *HTTPClient) fetch(ctx context.Context, imdbID string) ([]Torrent, error) {
	apiURL, err := url.Parse(c.baseURL + "/list_movies.json")
	if err != nil {
		return nil, fmt.Errorf("invalid yts URL: %w", err)
	}

	params := url.Values{}
	params.Add("query_term", imdbID)
	params.Add("limit", "1")
	params.Add("sort_by", "rating")
	params.Add("order_by", "desc")
	apiURL.RawQuery = params.Encode()

	var parsed listMoviesResponse

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL.String(), nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("yts returned status %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return fmt.Errorf("failed to decode yts response: %w", err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Warn("YTS lookup failed", zap.String("imdb_id", imdbID), zap.Error(err))
		return nil, err
	}

	if parsed.Status != "ok" {
		return nil, fmt.Errorf("yts returned status %q: %s", parsed.Status, parsed.StatusMessage)
	}

	if len(parsed.Data.Movies) == 0 {
		return []Torrent{}, nil
	}
	torrents := parsed.Data.Movies[0].Torrents
	if torrents == nil {
		torrents = []Torrent{}
	}
	return torrents, nil
}
