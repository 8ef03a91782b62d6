package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"dvd-tracker/core/storage"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("metadata API key not configured")

// Client defines the metadata lookups the application performs.
type Client interface {
	// SearchMovies searches by title. Page numbering starts at 1.
	SearchMovies(ctx context.Context, query string, page int) (*SearchPage, error)
	// Details returns the merged detail record for a movie, including the
	// IMDB id, GB certification and director.
	Details(ctx context.Context, movieID int) (*MovieDetails, error)
	// Posters returns poster candidates sorted English first, then
	// untagged, then other languages, best voted first within each group.
	Posters(ctx context.Context, movieID int) ([]Poster, error)
	// PosterURL expands a poster file path into a full image URL.
	PosterURL(path string) string
	// DownloadPoster fetches a poster image into the poster bucket and
	// returns the object key.
	DownloadPoster(ctx context.Context, store storage.Client, bucket, posterPath string) (string, error)
}

// HTTPClient talks to the TMDB API with an in-memory cache in front of it.
type HTTPClient struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
	cache        *gocache.Cache
	searchTTL    time.Duration
	detailTTL    time.Duration
	group        singleflight.Group
	logger       *zap.Logger
}

// NewClient creates a new TMDB client.
func NewClient(cfg Config, logger *zap.Logger) *HTTPClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	searchTTL := time.Duration(cfg.SearchCacheMinutes) * time.Minute
	if searchTTL <= 0 {
		searchTTL = time.Hour
	}
	detailTTL := time.Duration(cfg.DetailCacheMinutes) * time.Minute
	if detailTTL <= 0 {
		detailTTL = 24 * time.Hour
	}

	return &HTTPClient{
		apiKey:       cfg.ApiKey,
		baseURL:      cfg.BaseURL,
		imageBaseURL: cfg.ImageBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		cache:     gocache.New(detailTTL, 10*time.Minute),
		searchTTL: searchTTL,
		detailTTL: detailTTL,
		logger:    logger,
	}
}

// SearchMovies searches by title. Page numbering starts at 1.
func (c *HTTPClient) SearchMovies(ctx context.Context, query string, page int) (*SearchPage, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("tmdb_search_%s_%d", query, page)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(*SearchPage), nil
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("page", strconv.Itoa(page))
	params.Add("language", "en-US")

	var result SearchPage
	if err := c.get(ctx, "/search/movie", params, &result); err != nil {
		return nil, err
	}

	c.cache.Set(cacheKey, &result, c.searchTTL)
	return &result, nil
}

// Details returns the merged detail record for a movie. Concurrent lookups
// for the same movie collapse into a single round trip.
func (c *HTTPClient) Details(ctx context.Context, movieID int) (*MovieDetails, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	cacheKey := fmt.Sprintf("tmdb_movie_%d", movieID)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(*MovieDetails), nil
	}

	value, err, _ := c.group.Do(cacheKey, func() (interface{}, error) {
		details, err := c.fetchDetails(ctx, movieID)
		if err != nil {
			return nil, err
		}
		c.cache.Set(cacheKey, details, c.detailTTL)
		return details, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*MovieDetails), nil
}

func (c *HTTPClient) fetchDetails(ctx context.Context, movieID int) (*MovieDetails, error) {
	params := url.Values{}
	params.Add("language", "en-US")

	var details MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), params, &details); err != nil {
		return nil, err
	}

	// The auxiliary endpoints enrich the record but never fail the lookup.
	if imdbID, err := c.externalIMDBID(ctx, movieID); err != nil {
		c.logger.Warn("external ids lookup failed", zap.Int("movie_id", movieID), zap.Error(err))
	} else if imdbID != "" {
		details.IMDBID = imdbID
	}

	if cert, err := c.certification(ctx, movieID); err != nil {
		c.logger.Warn("certification lookup failed", zap.Int("movie_id", movieID), zap.Error(err))
	} else {
		details.Certification = cert
	}

	if director, err := c.director(ctx, movieID); err != nil {
		c.logger.Warn("credits lookup failed", zap.Int("movie_id", movieID), zap.Error(err))
	} else {
		details.Director = director
	}

	return &details, nil
}

func (c *HTTPClient) externalIMDBID(ctx context.Context, movieID int) (string, error) {
	var result externalIDsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/external_ids", movieID), nil, &result); err != nil {
		return "", err
	}
	return result.IMDBID, nil
}

// certification returns the first non-blank GB certification, or "" when the
// movie has no GB release entry.
func (c *HTTPClient) certification(ctx context.Context, movieID int) (string, error) {
	var result releaseDatesResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/release_dates", movieID), nil, &result); err != nil {
		return "", err
	}

	for _, country := range result.Results {
		if country.CountryCode != "GB" {
			continue
		}
		for _, release := range country.ReleaseDates {
			if cert := strings.TrimSpace(release.Certification); cert != "" {
				return cert, nil
			}
		}
	}
	return "", nil
}

// director returns the director names from the credits, comma separated when
// a movie has more than one.
func (c *HTTPClient) director(ctx context.Context, movieID int) (string, error) {
	var result creditsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", movieID), nil, &result); err != nil {
		return "", err
	}

	var directors []string
	for _, person := range result.Crew {
		if person.Job == "Director" {
			directors = append(directors, person.Name)
		}
	}
	return strings.Join(directors, ", "), nil
}

// Posters returns poster candidates sorted English first, then untagged,
// then other languages, best voted first within each group.
func (c *HTTPClient) Posters(ctx context.Context, movieID int) ([]Poster, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	cacheKey := fmt.Sprintf("tmdb_images_%d", movieID)
	var result imagesResponse
	if cached, ok := c.cache.Get(cacheKey); ok {
		result = cached.(imagesResponse)
	} else {
		if err := c.get(ctx, fmt.Sprintf("/movie/%d/images", movieID), nil, &result); err != nil {
			return nil, err
		}
		c.cache.Set(cacheKey, result, c.detailTTL)
	}

	posters := make([]Poster, len(result.Posters))
	copy(posters, result.Posters)

	sort.SliceStable(posters, func(i, j int) bool {
		pi, pj := languagePriority(posters[i].Language), languagePriority(posters[j].Language)
		if pi != pj {
			return pi < pj
		}
		return posters[i].VoteAverage > posters[j].VoteAverage
	})

	for i := range posters {
		posters[i].FullURL = c.PosterURL(posters[i].FilePath)
	}
	return posters, nil
}

func languagePriority(lang *string) int {
	switch {
	case lang != nil && *lang == "en":
		return 0
	case lang == nil:
		return 1
	default:
		return 2
	}
}

// PosterURL expands a poster file path into a full image URL.
func (c *HTTPClient) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return c.imageBaseURL + path
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	apiURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid metadata URL: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	apiURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metadata API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode metadata response: %w", err)
	}
	return nil
}
