package catalog

import (
	"strconv"
	"strings"

	"dvd-tracker/core/metadata"
	"dvd-tracker/feature/catalog/models"
)

// ApplyMetadata copies provider fields onto a catalog item. In refresh mode
// only non-empty provider values overwrite, so a thin provider response
// never blanks out fields the user already has; the TMDB id itself is never
// changed on refresh.
func ApplyMetadata(item *models.Movie, d *metadata.MovieDetails, refresh bool) {
	if d == nil {
		return
	}

	set := func(dst *string, value string) {
		if !refresh || value != "" {
			*dst = value
		}
	}

	if !refresh {
		id := d.ID
		item.TMDBID = &id
	}

	set(&item.IMDBID, d.IMDBID)
	set(&item.Name, d.Title)
	set(&item.Overview, d.Overview)
	set(&item.Certification, d.Certification)
	set(&item.Language, d.OriginalLanguage)
	set(&item.Tagline, d.Tagline)
	set(&item.Director, d.Director)

	if year := releaseYear(d.ReleaseDate); year != nil {
		item.ReleaseYear = year
	} else if !refresh {
		item.ReleaseYear = nil
	}

	genres := joinNames(len(d.Genres), func(i int) string { return d.Genres[i].Name })
	set(&item.Genres, genres)

	companies := joinNames(len(d.ProductionCompanies), func(i int) string { return d.ProductionCompanies[i].Name })
	set(&item.ProductionCompanies, companies)

	if d.Runtime > 0 {
		runtime := d.Runtime
		item.Runtime = &runtime
	}
	if !refresh || d.VoteAverage > 0 {
		item.Rating = d.VoteAverage
		item.TMDBScore = d.VoteAverage
	}
	if !refresh || d.Budget > 0 {
		item.Budget = d.Budget
	}
	if !refresh || d.Revenue > 0 {
		item.Revenue = d.Revenue
	}
}

// releaseYear extracts the year from a provider date string (YYYY-MM-DD).
func releaseYear(date string) *int {
	if len(date) < 4 {
		return nil
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return nil
	}
	return &year
}

func joinNames(n int, name func(int) string) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, name(i))
	}
	return strings.Join(parts, ", ")
}
