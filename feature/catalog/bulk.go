package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dvd-tracker/feature/catalog/models"
	"dvd-tracker/feature/catalog/reconcile"
)

// BulkImportRequest is a newline separated list of titles plus the defaults
// every created item receives.
type BulkImportRequest struct {
	Titles       string `json:"titles"`
	Status       string `json:"status"`
	MediaType    string `json:"media_type"`
	SkipExisting bool   `json:"skip_existing"`
	IsTartan     bool   `json:"is_tartan"`
	IsBoxSet     bool   `json:"is_box_set"`
	BoxSetName   string `json:"box_set_name"`
	IsUnopened   bool   `json:"is_unopened"`
	IsUnwatched  bool   `json:"is_unwatched"`
	StorageBox   string `json:"storage_box"`
}

// BulkImportResult is the per-title outcome report for one import job.
type BulkImportResult struct {
	JobID          string   `json:"job_id"`
	TotalProcessed int      `json:"total_processed"`
	Added          []string `json:"added"`
	Skipped        []string `json:"skipped"`
	NotFound       []string `json:"not_found"`
	Errors         []string `json:"errors"`
}

// BulkImport looks up each title on the metadata provider, takes the first
// match, and creates a catalog item with the request defaults. One bad title
// never aborts the rest of the job.
func (s *Service) BulkImport(ctx context.Context, req BulkImportRequest) (*BulkImportResult, error) {
	if req.Status == "" {
		req.Status = models.StatusKept
	}
	if req.MediaType == "" {
		req.MediaType = models.MediaPhysical
	}
	if !models.ValidStatus(req.Status) {
		return nil, &reconcile.ValidationError{Field: "status", Message: "invalid status"}
	}
	if !models.ValidMediaType(req.MediaType) {
		return nil, &reconcile.ValidationError{Field: "media_type", Message: "invalid media type"}
	}

	var titles []string
	for _, line := range strings.Split(req.Titles, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			titles = append(titles, line)
		}
	}

	result := &BulkImportResult{
		JobID:          uuid.NewString(),
		TotalProcessed: len(titles),
		Added:          []string{},
		Skipped:        []string{},
		NotFound:       []string{},
		Errors:         []string{},
	}

	log := s.logger.With(zap.String("job_id", result.JobID))
	log.Info("bulk import started", zap.Int("titles", len(titles)))

	for _, title := range titles {
		s.importTitle(ctx, req, title, result, log)
	}

	log.Info("bulk import finished",
		zap.Int("added", len(result.Added)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("not_found", len(result.NotFound)),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

func (s *Service) importTitle(ctx context.Context, req BulkImportRequest, title string, result *BulkImportResult, log *zap.Logger) {
	page, err := s.meta.SearchMovies(ctx, title, 1)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Error processing %q: %v", title, err))
		return
	}
	if len(page.Results) == 0 {
		result.NotFound = append(result.NotFound, title)
		return
	}

	// First hit is the most relevant match
	tmdbID := page.Results[0].ID

	if req.SkipExisting {
		var existing models.Movie
		err := s.db.WithContext(ctx).Where("tmdb_id = ?", tmdbID).First(&existing).Error
		if err == nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s (already have: %s)", title, existing.Name))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing %q: %v", title, err))
			return
		}
	}

	item := models.Movie{
		Status:      req.Status,
		MediaType:   req.MediaType,
		IsTartan:    req.IsTartan,
		IsBoxSet:    req.IsBoxSet,
		IsUnopened:  req.IsUnopened,
		IsUnwatched: req.IsUnwatched,
	}
	if req.IsBoxSet {
		item.BoxSetName = req.BoxSetName
	}
	if req.Status == models.StatusKept {
		item.StorageBox = req.StorageBox
	}

	if err := s.CreateFromMetadata(ctx, tmdbID, &item); err != nil {
		log.Warn("bulk import item failed", zap.String("title", title), zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("Error processing %q: %v", title, err))
		return
	}
	result.Added = append(result.Added, item.Name)
}

// bulkEditableFields is the closed allow-list for the single-field update
// endpoint.
var bulkEditableFields = map[string]bool{
	"status":       true,
	"media_type":   true,
	"storage_box":  true,
	"box_set_name": true,
	"is_box_set":   true,
	"is_tartan":    true,
	"is_unopened":  true,
	"is_unwatched": true,
}

// BulkUpdateField updates a single field on a single item. Only the fields
// in the allow-list may be touched, and enum fields are validated.
func (s *Service) BulkUpdateField(ctx context.Context, id uint, field string, value string) error {
	if !bulkEditableFields[field] {
		return &reconcile.ValidationError{Field: field, Message: "field is not editable"}
	}

	var update interface{} = strings.TrimSpace(value)
	switch field {
	case "status":
		if !models.ValidStatus(value) {
			return &reconcile.ValidationError{Field: "status", Message: "invalid status"}
		}
	case "media_type":
		if !models.ValidMediaType(value) {
			return &reconcile.ValidationError{Field: "media_type", Message: "invalid media type"}
		}
	case "is_box_set", "is_tartan", "is_unopened", "is_unwatched":
		update = value == "true"
	}

	result := s.db.WithContext(ctx).Model(&models.Movie{}).
		Where("id = ?", id).
		Update(field, update)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", field, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
