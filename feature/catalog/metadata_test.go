package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dvd-tracker/core/metadata"
	"dvd-tracker/feature/catalog/models"
)

func fullDetails() *metadata.MovieDetails {
	d := &metadata.MovieDetails{
		ID:               348,
		Title:            "Alien",
		Overview:         "A space horror",
		ReleaseDate:      "1979-05-25",
		Runtime:          117,
		VoteAverage:      8.1,
		OriginalLanguage: "en",
		Budget:           11000000,
		Revenue:          104931801,
		Tagline:          "In space no one can hear you scream.",
		IMDBID:           "tt0078748",
		Certification:    "X",
		Director:         "Ridley Scott",
	}
	d.Genres = []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{{ID: 27, Name: "Horror"}, {ID: 878, Name: "Science Fiction"}}
	return d
}

func TestApplyMetadata(t *testing.T) {
	t.Run("Populates New Item", func(t *testing.T) {
		var item models.Movie
		ApplyMetadata(&item, fullDetails(), false)

		assert.Equal(t, "Alien", item.Name)
		require.NotNil(t, item.TMDBID)
		assert.Equal(t, 348, *item.TMDBID)
		assert.Equal(t, "tt0078748", item.IMDBID)
		require.NotNil(t, item.ReleaseYear)
		assert.Equal(t, 1979, *item.ReleaseYear)
		assert.Equal(t, "Horror, Science Fiction", item.Genres)
		require.NotNil(t, item.Runtime)
		assert.Equal(t, 117, *item.Runtime)
		assert.Equal(t, "X", item.Certification)
		assert.Equal(t, "Ridley Scott", item.Director)
		assert.InDelta(t, 8.1, item.Rating, 0.001)
	})

	t.Run("Refresh Keeps Fields The Provider Left Blank", func(t *testing.T) {
		year := 1979
		runtime := 117
		item := models.Movie{
			Name:        "Alien",
			TMDBID:      intPtrLocal(348),
			IMDBID:      "tt0078748",
			ReleaseYear: &year,
			Runtime:     &runtime,
			Overview:    "A space horror",
			Director:    "Ridley Scott",
		}

		thin := &metadata.MovieDetails{ID: 999, Title: "Alien"}
		ApplyMetadata(&item, thin, true)

		// The TMDB id never changes on refresh, and blank provider fields
		// leave existing values alone
		assert.Equal(t, 348, *item.TMDBID)
		assert.Equal(t, "tt0078748", item.IMDBID)
		assert.Equal(t, "A space horror", item.Overview)
		assert.Equal(t, "Ridley Scott", item.Director)
		assert.Equal(t, 1979, *item.ReleaseYear)
		assert.Equal(t, 117, *item.Runtime)
	})

	t.Run("Refresh Overwrites With Fresh Values", func(t *testing.T) {
		item := models.Movie{Name: "Allen", Overview: "typo"}
		ApplyMetadata(&item, fullDetails(), true)

		assert.Equal(t, "Alien", item.Name)
		assert.Equal(t, "A space horror", item.Overview)
		assert.Nil(t, item.TMDBID)
	})

	t.Run("Nil Details Is A No-Op", func(t *testing.T) {
		item := models.Movie{Name: "Alien"}
		ApplyMetadata(&item, nil, false)
		assert.Equal(t, "Alien", item.Name)
	})
}

func TestReleaseYearParsing(t *testing.T) {
	assert.Nil(t, releaseYear(""))
	assert.Nil(t, releaseYear("soon"))
	year := releaseYear("1982-06-25")
	require.NotNil(t, year)
	assert.Equal(t, 1982, *year)
}

func intPtrLocal(n int) *int {
	return &n
}
