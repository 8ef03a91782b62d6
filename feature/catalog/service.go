package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dvd-tracker/core/metadata"
	"dvd-tracker/core/storage"
	"dvd-tracker/core/torrents"
	"dvd-tracker/feature/catalog/models"
	"dvd-tracker/feature/catalog/reconcile"
)

// ErrNotFound is returned when a catalog item does not exist.
var ErrNotFound = errors.New("catalog item not found")

// Service handles catalog operations.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	meta     metadata.Client
	torrents torrents.Client
	store    storage.Client
	bucket   string
	pageSize int
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger, meta metadata.Client, torrentClient torrents.Client, store storage.Client, bucket string, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &Service{
		db:       db,
		logger:   logger,
		meta:     meta,
		torrents: torrentClient,
		store:    store,
		bucket:   bucket,
		pageSize: pageSize,
	}
}

// ListFilters are the supported list view filters. Nil booleans mean
// "don't filter on this flag".
type ListFilters struct {
	Search      string `query:"search"`
	Status      string `query:"status"`
	MediaType   string `query:"media_type"`
	IsTartan    *bool  `query:"is_tartan"`
	IsBoxSet    *bool  `query:"is_box_set"`
	IsUnopened  *bool  `query:"is_unopened"`
	IsUnwatched *bool  `query:"is_unwatched"`
	// HasTorrents filters on the cached availability flag; it never
	// triggers a provider call.
	HasTorrents *bool `query:"has_torrents"`
	Page        int   `query:"page"`
}

// ListResult is one page of catalog items.
type ListResult struct {
	Items      []models.Movie `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

func (s *Service) applyFilters(query *gorm.DB, f ListFilters) *gorm.DB {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where(
			"name LIKE ? OR overview LIKE ? OR genres LIKE ? OR box_set_name LIKE ?",
			like, like, like, like)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.MediaType != "" {
		query = query.Where("media_type = ?", f.MediaType)
	}
	if f.IsTartan != nil {
		query = query.Where("is_tartan = ?", *f.IsTartan)
	}
	if f.IsBoxSet != nil {
		query = query.Where("is_box_set = ?", *f.IsBoxSet)
	}
	if f.IsUnopened != nil {
		query = query.Where("is_unopened = ?", *f.IsUnopened)
	}
	if f.IsUnwatched != nil {
		query = query.Where("is_unwatched = ?", *f.IsUnwatched)
	}
	if f.HasTorrents != nil {
		query = query.Where("has_cached_torrents = ?", *f.HasTorrents)
	}
	return query
}

// List returns one page of the catalog, filtered.
func (s *Service) List(ctx context.Context, f ListFilters) (*ListResult, error) {
	query := s.applyFilters(s.db.WithContext(ctx).Model(&models.Movie{}), f)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count catalog items: %w", err)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	totalPages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))

	var items []models.Movie
	err := query.Order("name ASC").
		Offset((page - 1) * s.pageSize).
		Limit(s.pageSize).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}

	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Detail is a catalog item plus its derived display data.
type Detail struct {
	models.Movie
	CopyLabel  string         `json:"copy_label"`
	Duplicates []models.Movie `json:"duplicates"`
}

// Get returns a single item with its copy label and the other copies of the
// same movie.
func (s *Service) Get(ctx context.Context, id uint) (*Detail, error) {
	var item models.Movie
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog item: %w", err)
	}

	set, err := reconcile.DuplicateSet(s.db.WithContext(ctx), &item)
	if err != nil {
		return nil, err
	}

	duplicates := make([]models.Movie, 0, len(set))
	for _, member := range set {
		if member.ID != item.ID {
			duplicates = append(duplicates, member)
		}
	}

	return &Detail{
		Movie:      item,
		CopyLabel:  reconcile.CopyLabel(&item, len(set)),
		Duplicates: duplicates,
	}, nil
}

// Create validates and persists a new item. The copy number is resolved
// against the item's duplicate set when the caller leaves it at zero.
func (s *Service) Create(ctx context.Context, item *models.Movie) error {
	item.Normalize()
	if item.Name == "" {
		return &reconcile.ValidationError{Field: "name", Message: "name is required"}
	}
	if !models.ValidStatus(item.Status) {
		return &reconcile.ValidationError{Field: "status", Message: "invalid status"}
	}
	if !models.ValidMediaType(item.MediaType) {
		return &reconcile.ValidationError{Field: "media_type", Message: "invalid media type"}
	}

	db := s.db.WithContext(ctx)

	next, err := reconcile.NextCopyNumber(db, item)
	if err != nil {
		return err
	}
	if next > 1 {
		item.CopyNumber = next
	}

	if item.Status == models.StatusUnboxed {
		if item.Location == "" {
			loc, err := reconcile.NextLocationNumber(db)
			if err != nil {
				return err
			}
			item.Location = fmt.Sprintf("%d", loc)
		}
		if err := reconcile.ValidateLocation(db, item); err != nil {
			return err
		}
	}

	if err := db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create catalog item: %w", err)
	}
	return nil
}

// CreateFromMetadata creates an item populated from the metadata provider.
// An existing copy of the same movie does not block creation; the new row
// joins the duplicate set with the next copy number.
func (s *Service) CreateFromMetadata(ctx context.Context, tmdbID int, item *models.Movie) error {
	details, err := s.meta.Details(ctx, tmdbID)
	if err != nil {
		return fmt.Errorf("metadata lookup failed: %w", err)
	}

	ApplyMetadata(item, details, false)

	if err := s.Create(ctx, item); err != nil {
		return err
	}

	if details.PosterPath != "" {
		s.attachPoster(ctx, item, details.PosterPath)
	}
	return nil
}

// attachPoster downloads the poster into the bucket. Failure is logged and
// never fails the save.
func (s *Service) attachPoster(ctx context.Context, item *models.Movie, posterPath string) {
	key, err := s.meta.DownloadPoster(ctx, s.store, s.bucket, posterPath)
	if err != nil {
		s.logger.Warn("poster download failed",
			zap.Uint("movie_id", item.ID),
			zap.Error(err))
		return
	}
	if err := s.db.WithContext(ctx).Model(item).Update("poster_key", key).Error; err != nil {
		s.logger.Warn("failed to save poster key", zap.Uint("movie_id", item.ID), zap.Error(err))
		return
	}
	item.PosterKey = key
}

// Update validates and persists changes to an existing item.
func (s *Service) Update(ctx context.Context, item *models.Movie) error {
	item.Normalize()
	if item.ID == 0 {
		return ErrNotFound
	}
	if item.Name == "" {
		return &reconcile.ValidationError{Field: "name", Message: "name is required"}
	}
	if !models.ValidStatus(item.Status) {
		return &reconcile.ValidationError{Field: "status", Message: "invalid status"}
	}
	if !models.ValidMediaType(item.MediaType) {
		return &reconcile.ValidationError{Field: "media_type", Message: "invalid media type"}
	}

	db := s.db.WithContext(ctx)
	if item.Status == models.StatusUnboxed {
		if err := reconcile.ValidateLocation(db, item); err != nil {
			return err
		}
	}

	err := db.Model(&models.Movie{}).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(item).Error
	if err != nil {
		return fmt.Errorf("failed to update catalog item: %w", err)
	}
	return nil
}

// Delete removes an item permanently.
func (s *Service) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete catalog item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RefreshTorrents refreshes the availability cache for one item.
func (s *Service) RefreshTorrents(ctx context.Context, id uint) (reconcile.RefreshOutcome, *models.Movie, error) {
	var item models.Movie
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil, ErrNotFound
	}
	if err != nil {
		return 0, nil, fmt.Errorf("failed to load catalog item: %w", err)
	}

	outcome, err := reconcile.RefreshAvailability(ctx, s.db.WithContext(ctx), &item, s.torrents, s.logger)
	if err != nil {
		return 0, nil, err
	}
	return outcome, &item, nil
}

// SearchMetadata proxies a title search to the metadata provider for the
// add-movie flow.
func (s *Service) SearchMetadata(ctx context.Context, query string, page int) (*metadata.SearchPage, error) {
	return s.meta.SearchMovies(ctx, query, page)
}

// NextLocations returns advisory shelf numbers for batch unboxing forms.
func (s *Service) NextLocations(ctx context.Context, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}
	return reconcile.NextSequentialLocations(s.db.WithContext(ctx), count)
}

// BoxSetNames returns distinct box set names matching the prefix, for
// autocomplete.
func (s *Service) BoxSetNames(ctx context.Context, query string) ([]string, error) {
	return s.distinctValues(ctx, "box_set_name", query)
}

// StorageBoxes returns distinct storage box labels matching the prefix, for
// autocomplete.
func (s *Service) StorageBoxes(ctx context.Context, query string) ([]string, error) {
	return s.distinctValues(ctx, "storage_box", query)
}

func (s *Service) distinctValues(ctx context.Context, column, query string) ([]string, error) {
	var values []string
	err := s.db.WithContext(ctx).Model(&models.Movie{}).
		Distinct(column).
		Where(column + " <> ''").
		Where(column+" LIKE ?", "%"+query+"%").
		Order(column + " ASC").
		Limit(10).
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query %s values: %w", column, err)
	}
	return values, nil
}
