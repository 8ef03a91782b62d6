package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dvd-tracker/core/database"
	"dvd-tracker/core/metadata"
	metamocks "dvd-tracker/core/metadata/mocks"
	storagemocks "dvd-tracker/core/storage/mocks"
	torrentmocks "dvd-tracker/core/torrents/mocks"
	"dvd-tracker/feature/catalog"
	"dvd-tracker/feature/catalog/models"
	"dvd-tracker/feature/catalog/reconcile"
)

type testEnv struct {
	db       *gorm.DB
	service  *catalog.Service
	meta     *metamocks.Client
	torrents *torrentmocks.Client
	store    *storagemocks.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Movie{}))

	meta := new(metamocks.Client)
	torrentClient := new(torrentmocks.Client)
	store := new(storagemocks.Client)

	svc := catalog.NewService(db, zap.NewNop(), meta, torrentClient, store, "posters", 12)
	return &testEnv{db: db, service: svc, meta: meta, torrents: torrentClient, store: store}
}

func intPtr(n int) *int {
	return &n
}

func boolPtr(b bool) *bool {
	return &b
}

func seedMovie(t *testing.T, db *gorm.DB, m models.Movie) models.Movie {
	t.Helper()
	m.Normalize()
	require.NoError(t, db.Create(&m).Error)
	return m
}

func TestCreate(t *testing.T) {
	t.Run("Assigns Next Copy Number", func(t *testing.T) {
		env := newTestEnv(t)
		seedMovie(t, env.db, models.Movie{Name: "The Matrix", TMDBID: intPtr(603)})

		item := models.Movie{Name: "The Matrix", TMDBID: intPtr(603)}
		require.NoError(t, env.service.Create(context.Background(), &item))
		assert.Equal(t, 2, item.CopyNumber)
	})

	t.Run("Requires Name", func(t *testing.T) {
		env := newTestEnv(t)
		item := models.Movie{Name: "   "}
		err := env.service.Create(context.Background(), &item)
		var verr *reconcile.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("Rejects Unknown Status", func(t *testing.T) {
		env := newTestEnv(t)
		item := models.Movie{Name: "Alien", Status: "lost"}
		assert.Error(t, env.service.Create(context.Background(), &item))
	})

	t.Run("Unboxed Gets Auto Location", func(t *testing.T) {
		env := newTestEnv(t)
		seedMovie(t, env.db, models.Movie{Name: "A", Status: models.StatusUnboxed, Location: "4"})

		item := models.Movie{Name: "B", Status: models.StatusUnboxed}
		require.NoError(t, env.service.Create(context.Background(), &item))
		assert.Equal(t, "5", item.Location)
	})

	t.Run("Unboxed Rejects Taken Location", func(t *testing.T) {
		env := newTestEnv(t)
		seedMovie(t, env.db, models.Movie{Name: "A", Status: models.StatusUnboxed, Location: "4"})

		item := models.Movie{Name: "B", Status: models.StatusUnboxed, Location: "4"}
		err := env.service.Create(context.Background(), &item)
		var verr *reconcile.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "location", verr.Field)
	})
}

func TestGet(t *testing.T) {
	env := newTestEnv(t)
	a := seedMovie(t, env.db, models.Movie{Name: "The Matrix", TMDBID: intPtr(603)})
	seedMovie(t, env.db, models.Movie{Name: "The Matrix", TMDBID: intPtr(603), CopyNumber: 2, CopyNotes: "Steelbook"})

	detail, err := env.service.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Copy #1", detail.CopyLabel)
	require.Len(t, detail.Duplicates, 1)
	assert.Equal(t, "Steelbook", detail.Duplicates[0].CopyNotes)

	_, err = env.service.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	seedMovie(t, env.db, models.Movie{Name: "Alien", Overview: "A space horror", Status: models.StatusKept, HasCachedTorrents: true})
	seedMovie(t, env.db, models.Movie{Name: "Blade Runner", Genres: "Science Fiction", Status: models.StatusDisposed})
	seedMovie(t, env.db, models.Movie{Name: "Casablanca", Status: models.StatusKept, IsTartan: true})

	t.Run("No Filters", func(t *testing.T) {
		result, err := env.service.List(context.Background(), catalog.ListFilters{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, result.Total)
		assert.Equal(t, "Alien", result.Items[0].Name)
	})

	t.Run("Search Covers Overview And Genres", func(t *testing.T) {
		result, err := env.service.List(context.Background(), catalog.ListFilters{Search: "horror"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Alien", result.Items[0].Name)

		result, err = env.service.List(context.Background(), catalog.ListFilters{Search: "Science"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Blade Runner", result.Items[0].Name)
	})

	t.Run("Status Filter", func(t *testing.T) {
		result, err := env.service.List(context.Background(), catalog.ListFilters{Status: models.StatusKept})
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Total)
	})

	t.Run("Flag Filter", func(t *testing.T) {
		result, err := env.service.List(context.Background(), catalog.ListFilters{IsTartan: boolPtr(true)})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Casablanca", result.Items[0].Name)
	})

	t.Run("Torrent Availability Filter", func(t *testing.T) {
		result, err := env.service.List(context.Background(), catalog.ListFilters{HasTorrents: boolPtr(true)})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Alien", result.Items[0].Name)
	})

	t.Run("Pagination", func(t *testing.T) {
		env := newTestEnv(t)
		for i := 0; i < 15; i++ {
			seedMovie(t, env.db, models.Movie{Name: string(rune('A'+i)) + " Movie"})
		}

		result, err := env.service.List(context.Background(), catalog.ListFilters{Page: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 15, result.Total)
		assert.Equal(t, 2, result.TotalPages)
		assert.Len(t, result.Items, 3)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Persists Changes", func(t *testing.T) {
		env := newTestEnv(t)
		item := seedMovie(t, env.db, models.Movie{Name: "Alien", StorageBox: "Box 1"})

		item.StorageBox = "Box 2"
		item.IsUnwatched = true
		require.NoError(t, env.service.Update(context.Background(), &item))

		var stored models.Movie
		require.NoError(t, env.db.First(&stored, item.ID).Error)
		assert.Equal(t, "Box 2", stored.StorageBox)
		assert.True(t, stored.IsUnwatched)
	})

	t.Run("Validates Location On Unboxing", func(t *testing.T) {
		env := newTestEnv(t)
		seedMovie(t, env.db, models.Movie{Name: "A", Status: models.StatusUnboxed, Location: "7"})
		item := seedMovie(t, env.db, models.Movie{Name: "B", Status: models.StatusKept})

		item.Status = models.StatusUnboxed
		item.Location = "7"
		err := env.service.Update(context.Background(), &item)
		var verr *reconcile.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "location", verr.Field)
	})

	t.Run("Own Location Survives Edit", func(t *testing.T) {
		env := newTestEnv(t)
		item := seedMovie(t, env.db, models.Movie{Name: "A", Status: models.StatusUnboxed, Location: "7"})

		item.CopyNotes = "scratched"
		assert.NoError(t, env.service.Update(context.Background(), &item))
	})
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	item := seedMovie(t, env.db, models.Movie{Name: "Alien"})

	require.NoError(t, env.service.Delete(context.Background(), item.ID))

	var count int64
	env.db.Model(&models.Movie{}).Count(&count)
	assert.EqualValues(t, 0, count)

	assert.ErrorIs(t, env.service.Delete(context.Background(), item.ID), catalog.ErrNotFound)
}

func TestCreateFromMetadata(t *testing.T) {
	env := newTestEnv(t)

	env.meta.On("Details", context.Background(), 348).Return(&metadata.MovieDetails{
		ID:          348,
		Title:       "Alien",
		Overview:    "A space horror",
		ReleaseDate: "1979-05-25",
		Runtime:     117,
		VoteAverage: 8.1,
		IMDBID:      "tt0078748",
		Director:    "Ridley Scott",
	}, nil)

	item := models.Movie{Status: models.StatusKept, StorageBox: "Box 3"}
	require.NoError(t, env.service.CreateFromMetadata(context.Background(), 348, &item))

	assert.Equal(t, "Alien", item.Name)
	assert.Equal(t, 348, *item.TMDBID)
	assert.Equal(t, "tt0078748", item.IMDBID)
	assert.Equal(t, 1979, *item.ReleaseYear)
	assert.Equal(t, "Box 3", item.StorageBox)
	env.meta.AssertExpectations(t)

	// Second copy joins the duplicate set
	second := models.Movie{}
	require.NoError(t, env.service.CreateFromMetadata(context.Background(), 348, &second))
	assert.Equal(t, 2, second.CopyNumber)
}

func TestAutocomplete(t *testing.T) {
	env := newTestEnv(t)
	seedMovie(t, env.db, models.Movie{Name: "A", IsBoxSet: true, BoxSetName: "Alien Anthology"})
	seedMovie(t, env.db, models.Movie{Name: "B", IsBoxSet: true, BoxSetName: "Alien Anthology"})
	seedMovie(t, env.db, models.Movie{Name: "C", IsBoxSet: true, BoxSetName: "Bond Collection"})
	seedMovie(t, env.db, models.Movie{Name: "D", StorageBox: "Attic 1"})

	names, err := env.service.BoxSetNames(context.Background(), "alien")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien Anthology"}, names)

	boxes, err := env.service.StorageBoxes(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Attic 1"}, boxes)
}
