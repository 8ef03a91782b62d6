package catalog_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dvd-tracker/feature/catalog/models"
)

func TestExportCSV(t *testing.T) {
	env := newTestEnv(t)

	checked := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedMovie(t, env.db, models.Movie{
		Name: "Blade Runner", TMDBID: intPtr(78), IMDBID: "tt0083658",
		ReleaseYear: intPtr(1982), Status: models.StatusKept, StorageBox: "Box 1",
		Genres: "Science Fiction", TorrentsCheckedAt: &checked, HasCachedTorrents: true,
	})
	seedMovie(t, env.db, models.Movie{
		Name: "Alien", CopyNumber: 2, CopyNotes: "Director's Cut",
		Status: models.StatusUnboxed, Location: "3",
	})

	var buf bytes.Buffer
	require.NoError(t, env.service.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "id", header[0])
	assert.Equal(t, "name", header[1])

	// Ordered by name, so Alien first
	alien := records[1]
	assert.Equal(t, "Alien", alien[1])
	assert.Equal(t, "", alien[2])
	assert.Equal(t, "2", alien[5])
	assert.Equal(t, "Director's Cut", alien[6])
	assert.Equal(t, "unboxed", alien[7])
	assert.Equal(t, "3", alien[10])

	bladeRunner := records[2]
	assert.Equal(t, "Blade Runner", bladeRunner[1])
	assert.Equal(t, "78", bladeRunner[2])
	assert.Equal(t, "tt0083658", bladeRunner[3])
	assert.Equal(t, "1982", bladeRunner[4])
	assert.Equal(t, "true", bladeRunner[24])
	assert.Equal(t, "2026-08-01T12:00:00Z", bladeRunner[25])
}

func TestExportCSVEmptyCatalog(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	require.NoError(t, env.service.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
