package catalog

import (
	"context"
	"fmt"
	"sort"

	"dvd-tracker/feature/catalog/models"
)

// GenreCount is one entry in the top-genres list.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BoxSetCount is one entry in the top-box-sets list.
type BoxSetCount struct {
	Name  string `json:"name" gorm:"column:box_set_name"`
	Count int    `json:"count" gorm:"column:movie_count"`
}

// DecadeCount is one bar of the decade histogram.
type DecadeCount struct {
	Decade string `json:"decade"`
	Count  int    `json:"count"`
}

// RatingStats aggregates provider ratings over rated items.
type RatingStats struct {
	Average float64 `json:"average" gorm:"column:avg_rating"`
	Max     float64 `json:"max" gorm:"column:max_rating"`
	Min     float64 `json:"min" gorm:"column:min_rating"`
	Count   int     `json:"count" gorm:"column:rated_count"`
}

// RuntimeStats aggregates runtimes over items that have one.
type RuntimeStats struct {
	Average float64 `json:"average" gorm:"column:avg_runtime"`
	Max     int     `json:"max" gorm:"column:max_runtime"`
	Min     int     `json:"min" gorm:"column:min_runtime"`
	Total   int64   `json:"total" gorm:"column:total_runtime"`
	Count   int     `json:"count" gorm:"column:runtime_count"`
}

// YearStats aggregates release years.
type YearStats struct {
	Earliest int `json:"earliest" gorm:"column:earliest_year"`
	Latest   int `json:"latest" gorm:"column:latest_year"`
	Span     int `json:"span" gorm:"-"`
	Count    int `json:"count" gorm:"column:year_count"`
}

// Stats is the full collection statistics report.
type Stats struct {
	Total        int64 `json:"total"`
	Kept         int64 `json:"kept"`
	Disposed     int64 `json:"disposed"`
	Unboxed      int64 `json:"unboxed"`
	Physical     int64 `json:"physical"`
	Downloads    int64 `json:"downloads"`
	Rips         int64 `json:"rips"`
	Tartan       int64 `json:"tartan"`
	BoxSets      int64 `json:"box_sets"`
	BoxSetMovies int64 `json:"box_set_movies"`
	Unopened     int64 `json:"unopened"`
	Unwatched    int64 `json:"unwatched"`
	WithTorrents int64 `json:"with_torrents"`

	Rating  RatingStats  `json:"rating"`
	Runtime RuntimeStats `json:"runtime"`
	Years   YearStats    `json:"years"`

	TopGenres  []GenreCount  `json:"top_genres"`
	TopBoxSets []BoxSetCount `json:"top_box_sets"`
	Decades    []DecadeCount `json:"decades"`

	RecentAdditions []models.Movie `json:"recent_additions"`
}

// Stats computes the collection statistics report in one pass of grouped
// queries.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	db := s.db.WithContext(ctx)
	out := &Stats{}

	counts := []struct {
		dst   *int64
		query string
		args  []interface{}
	}{
		{&out.Total, "", nil},
		{&out.Kept, "status = ?", []interface{}{models.StatusKept}},
		{&out.Disposed, "status = ?", []interface{}{models.StatusDisposed}},
		{&out.Unboxed, "status = ?", []interface{}{models.StatusUnboxed}},
		{&out.Physical, "media_type = ?", []interface{}{models.MediaPhysical}},
		{&out.Downloads, "media_type = ?", []interface{}{models.MediaDownload}},
		{&out.Rips, "media_type = ?", []interface{}{models.MediaRip}},
		{&out.Tartan, "is_tartan = ?", []interface{}{true}},
		{&out.BoxSetMovies, "is_box_set = ?", []interface{}{true}},
		{&out.Unopened, "is_unopened = ?", []interface{}{true}},
		{&out.Unwatched, "is_unwatched = ?", []interface{}{true}},
		{&out.WithTorrents, "has_cached_torrents = ?", []interface{}{true}},
	}
	for _, c := range counts {
		q := db.Model(&models.Movie{})
		if c.query != "" {
			q = q.Where(c.query, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count catalog items: %w", err)
		}
	}

	err := db.Model(&models.Movie{}).
		Where("is_box_set = ? AND box_set_name <> ''", true).
		Distinct("box_set_name").
		Count(&out.BoxSets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count box sets: %w", err)
	}

	err = db.Model(&models.Movie{}).
		Select("AVG(rating) AS avg_rating, MAX(rating) AS max_rating, MIN(rating) AS min_rating, COUNT(*) AS rated_count").
		Where("rating > 0").
		Scan(&out.Rating).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	err = db.Model(&models.Movie{}).
		Select("AVG(runtime) AS avg_runtime, MAX(runtime) AS max_runtime, MIN(runtime) AS min_runtime, SUM(runtime) AS total_runtime, COUNT(*) AS runtime_count").
		Where("runtime IS NOT NULL").
		Scan(&out.Runtime).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate runtimes: %w", err)
	}

	err = db.Model(&models.Movie{}).
		Select("MIN(release_year) AS earliest_year, MAX(release_year) AS latest_year, COUNT(*) AS year_count").
		Where("release_year IS NOT NULL").
		Scan(&out.Years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate years: %w", err)
	}
	if out.Years.Earliest > 0 && out.Years.Latest > 0 {
		out.Years.Span = out.Years.Latest - out.Years.Earliest
	}

	if out.TopGenres, err = s.topGenres(ctx); err != nil {
		return nil, err
	}

	err = db.Model(&models.Movie{}).
		Select("box_set_name, COUNT(id) AS movie_count").
		Where("is_box_set = ? AND box_set_name <> ''", true).
		Group("box_set_name").
		Order("movie_count DESC").
		Limit(10).
		Scan(&out.TopBoxSets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate box sets: %w", err)
	}

	if out.Decades, err = s.decades(ctx); err != nil {
		return nil, err
	}

	err = db.Order("id DESC").Limit(10).Find(&out.RecentAdditions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent additions: %w", err)
	}

	return out, nil
}

// topGenres tallies the comma separated genres field across the catalog.
// The field is denormalized text, so the split happens here rather than in
// SQL.
func (s *Service) topGenres(ctx context.Context) ([]GenreCount, error) {
	var items []models.Movie
	err := s.db.WithContext(ctx).
		Select("genres").
		Where("genres <> ''").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}

	tally := map[string]int{}
	for _, item := range items {
		for _, genre := range item.GenresList() {
			tally[genre]++
		}
	}

	out := make([]GenreCount, 0, len(tally))
	for name, count := range tally {
		out = append(out, GenreCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out, nil
}

func (s *Service) decades(ctx context.Context) ([]DecadeCount, error) {
	var years []int
	err := s.db.WithContext(ctx).Model(&models.Movie{}).
		Where("release_year IS NOT NULL").
		Pluck("release_year", &years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load release years: %w", err)
	}

	tally := map[int]int{}
	for _, year := range years {
		tally[(year/10)*10]++
	}

	decades := make([]int, 0, len(tally))
	for decade := range tally {
		decades = append(decades, decade)
	}
	sort.Ints(decades)

	out := make([]DecadeCount, 0, len(decades))
	for _, decade := range decades {
		out = append(out, DecadeCount{
			Decade: fmt.Sprintf("%ds", decade),
			Count:  tally[decade],
		})
	}
	return out, nil
}
