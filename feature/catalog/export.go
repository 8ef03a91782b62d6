package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"dvd-tracker/feature/catalog/models"
)

var exportHeader = []string{
	"id", "name", "tmdb_id", "imdb_id", "release_year", "copy_number",
	"copy_notes", "status", "media_type", "storage_box", "location",
	"overview", "genres", "runtime", "rating", "certification", "language",
	"director", "tagline", "is_tartan", "is_box_set", "box_set_name",
	"is_unopened", "is_unwatched", "has_cached_torrents",
	"torrents_checked_at", "created_at",
}

// ExportCSV writes the whole catalog as CSV, one row per item, ordered by
// name.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	var items []models.Movie
	err := s.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	if err != nil {
		return fmt.Errorf("failed to load catalog for export: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range items {
		if err := writer.Write(exportRow(&items[i])); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportRow(m *models.Movie) []string {
	return []string{
		strconv.FormatUint(uint64(m.ID), 10),
		m.Name,
		intPtrField(m.TMDBID),
		m.IMDBID,
		intPtrField(m.ReleaseYear),
		strconv.Itoa(m.CopyNumber),
		m.CopyNotes,
		m.Status,
		m.MediaType,
		m.StorageBox,
		m.Location,
		m.Overview,
		m.Genres,
		intPtrField(m.Runtime),
		strconv.FormatFloat(m.Rating, 'f', 1, 64),
		m.Certification,
		m.Language,
		m.Director,
		m.Tagline,
		strconv.FormatBool(m.IsTartan),
		strconv.FormatBool(m.IsBoxSet),
		m.BoxSetName,
		strconv.FormatBool(m.IsUnopened),
		strconv.FormatBool(m.IsUnwatched),
		strconv.FormatBool(m.HasCachedTorrents),
		timePtrField(m.TorrentsCheckedAt),
		m.CreatedAt.Format(time.RFC3339),
	}
}

func intPtrField(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func timePtrField(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
