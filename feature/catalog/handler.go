package catalog

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dvd-tracker/core/logger"
	"dvd-tracker/feature/catalog/models"
	"dvd-tracker/feature/catalog/reconcile"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/movies")
	group.Get("/", h.HandleList)
	group.Get("/stats", h.HandleStats)
	group.Get("/export", h.HandleExport)
	group.Get("/search", h.HandleSearchMetadata)
	group.Get("/locations/next", h.HandleNextLocations)
	group.Get("/autocomplete/box-sets", h.HandleBoxSetAutocomplete)
	group.Get("/autocomplete/storage-boxes", h.HandleStorageBoxAutocomplete)
	group.Post("/", h.HandleCreate)
	group.Post("/tmdb/:tmdbId", h.HandleCreateFromMetadata)
	group.Post("/bulk-import", h.HandleBulkImport)
	group.Post("/bulk-update", h.HandleBulkUpdate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
	group.Post("/:id/refresh-torrents", h.HandleRefreshTorrents)
}

// failure maps service errors onto HTTP responses. Validation problems come
// back field scoped so forms can highlight the right input.
func failure(c *fiber.Ctx, err error) error {
	var verr *reconcile.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
			"field": verr.Field,
		})
	}
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "movie not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (h *Handler) itemID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, &reconcile.ValidationError{Field: "id", Message: "invalid id"}
	}
	return uint(id), nil
}

// HandleList returns one page of the catalog.
// @Summary List Movies
// @Description List catalog items with filtering and pagination.
// @Tags movies
// @Produce json
// @Param search query string false "Search over name, overview, genres and box set name"
// @Param status query string false "Lifecycle state (kept, disposed, unboxed)"
// @Param media_type query string false "Media type (physical, download, rip)"
// @Param has_torrents query bool false "Filter on cached torrent availability"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} catalog.ListResult "Movie Page"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /movies [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	var filters ListFilters
	if err := c.QueryParser(&filters); err != nil {
		return failure(c, &reconcile.ValidationError{Field: "query", Message: "invalid filter parameters"})
	}

	result, err := h.service.List(c.Context(), filters)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("List failed", zap.Error(err))
		return failure(c, err)
	}
	return c.JSON(result)
}

// HandleGet returns a single movie with its copy label and duplicates.
// @Summary Get Movie
// @Description Get a catalog item including copy label and other copies of the same movie.
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} catalog.Detail "Movie Detail"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /movies/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := h.itemID(c)
	if err != nil {
		return failure(c, err)
	}

	detail, err := h.service.Get(c.Context(), id)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(detail)
}

// HandleCreate adds a movie entered by hand.
// @Summary Create Movie
// @Description Create a catalog item manually. The copy number is assigned from the duplicate set.
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body models.Movie true "Movie"
// @Success 201 {object} models.Movie "Created Movie"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /movies [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var item models.Movie
	if err := c.BodyParser(&item); err != nil {
		return failure(c, &reconcile.ValidationError{Field: "body", Message: "invalid request body"})
	}
	item.ID = 0

	if err := h.service.Create(c.Context(), &item); err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleCreateFromMetadata adds a movie populated from the metadata provider.
// @Summary Create Movie From TMDB
// @Description Create a catalog item from a TMDB id. Owning the movie already does not block; the new row becomes the next copy.
// @Tags movies
// @Accept json
// @Produce json
// @Param tmdbId path int true "TMDB Movie ID"
// @Param movie body models.Movie false "Overrides (status, media type, storage box, flags)"
// @Success 201 {object} models.Movie "Created Movie"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /movies/tmdb/{tmdbId} [post]
func (h *Handler) HandleCreateFromMetadata(c *fiber.Ctx) error {
	tmdbID, err := strconv.Atoi(c.Params("tmdbId"))
	if err != nil {
		return failure(c, &reconcile.ValidationError{Field: "tmdbId", Message: "invalid TMDB id"})
	}

	var item models.Movie
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&item); err != nil {
			return failure(c, &reconcile.ValidationError{Field: "body", Message: "invalid request body"})
		}
	}
	item.ID = 0

	if err := h.service.CreateFromMetadata(c.Context(), tmdbID, &item); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Create from metadata failed", zap.Error(err))
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdate edits an existing movie.
// @Summary Update Movie
// @Description Update a catalog item. Unboxed items get their location validated before the write.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body models.Movie true "Movie"
// @Success 200 {object} models.Movie "Updated Movie"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /movies/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := h.itemID(c)
	if err != nil {
		return failure(c, err)
	}

	if _, err := h.service.Get(c.Context(), id); err != nil {
		return failure(c, err)
	}

	var item models.Movie
	if err := c.BodyParser(&item); err != nil {
		return failure(c, &reconcile.ValidationError{Field: "body", Message: "invalid request body"})
	}
	item.ID = id

	if err := h.service.Update(c.Context(), &item); err != nil {
		return failure(c, err)
	}
	return c.JSON(item)
}

// HandleDelete removes a movie permanently.
// @Summary Delete Movie
// @Description Delete a catalog item. There is no soft delete.
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /movies/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := h.itemID(c)
	if err != nil {
		return failure(c, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"message": "movie deleted"})
}

// HandleRefreshTorrents refreshes the availability cache for one movie.
// @Summary Refresh Torrent Availability
// @Description Fetch the current torrent list for a movie and overwrite its cache. Reports whether the item lacks an IMDB id or the provider failed.
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} map[string]interface{} "Refresh Outcome"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Provider Error"
// @Router /movies/{id}/refresh-torrents [post]
func (h *Handler) HandleRefreshTorrents(c *fiber.Ctx) error {
	id, err := h.itemID(c)
	if err != nil {
		return failure(c, err)
	}

	outcome, item, err := h.service.RefreshTorrents(c.Context(), id)
	if err != nil {
		return failure(c, err)
	}

	switch outcome {
	case reconcile.RefreshNoIMDBID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"outcome": outcome.String(),
			"error":   "movie has no IMDB id; add one first",
		})
	case reconcile.RefreshProviderError:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"outcome": outcome.String(),
			"error":   "availability provider unavailable; existing cache kept",
		})
	default:
		return c.JSON(fiber.Map{
			"outcome":  outcome.String(),
			"torrents": item.Torrents,
		})
	}
}

// HandleStats returns the collection statistics report.
// @Summary Collection Statistics
// @Description Counts by state, media type and flags, plus rating, runtime, year, genre, decade and box set breakdowns.
// @Tags movies
// @Produce json
// @Success 200 {object} catalog.Stats "Statistics"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /movies/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Stats failed", zap.Error(err))
		return failure(c, err)
	}
	return c.JSON(stats)
}

// HandleExport streams the catalog as CSV.
// @Summary Export Catalog
// @Description Download the whole catalog as a CSV file.
// @Tags movies
// @Produce text/csv
// @Success 200 {string} string "CSV"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /movies/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movies.csv"`)

	if err := h.service.ExportCSV(c.Context(), c.Response().BodyWriter()); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Export failed", zap.Error(err))
		return failure(c, err)
	}
	return nil
}

// HandleSearchMetadata proxies a title search to the metadata provider.
// @Summary Search TMDB
// @Description Search the metadata provider by title, for the add-movie flow.
// @Tags movies
// @Produce json
// @Param query query string true "Title to search for"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} metadata.SearchPage "Search Results"
// @Failure 502 {object} map[string]string "Provider Error"
// @Router /movies/search [get]
func (h *Handler) HandleSearchMetadata(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return failure(c, &reconcile.ValidationError{Field: "query", Message: "query is required"})
	}

	page, err := h.service.SearchMetadata(c.Context(), query, c.QueryInt("page", 1))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Metadata search failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "metadata provider unavailable",
		})
	}
	return c.JSON(page)
}

// HandleBulkImport imports a list of titles via the metadata provider.
// @Summary Bulk Import Movies
// @Description Import a newline separated list of titles, taking the first TMDB match for each. Returns a per-title outcome report.
// @Tags movies
// @Accept json
// @Produce json
// @Param request body catalog.BulkImportRequest true "Import Request"
// @Success 200 {object} catalog.BulkImportResult "Import Report"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /movies/bulk-import [post]
func (h *Handler) HandleBulkImport(c *fiber.Ctx) error {
	var req BulkImportRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, &reconcile.ValidationError{Field: "body", Message: "invalid request body"})
	}

	result, err := h.service.BulkImport(c.Context(), req)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(result)
}

type bulkUpdateRequest struct {
	ID    uint   `json:"id"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// HandleBulkUpdate updates one field on one movie from the bulk edit table.
// @Summary Bulk Update Field
// @Description Update a single allow-listed field on a movie.
// @Tags movies
// @Accept json
// @Produce json
// @Param request body catalog.bulkUpdateRequest true "Update Request"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /movies/bulk-update [post]
func (h *Handler) HandleBulkUpdate(c *fiber.Ctx) error {
	var req bulkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, &reconcile.ValidationError{Field: "body", Message: "invalid request body"})
	}
	if req.ID == 0 || req.Field == "" {
		return failure(c, &reconcile.ValidationError{Field: "body", Message: "id and field are required"})
	}

	if err := h.service.BulkUpdateField(c.Context(), req.ID, req.Field, req.Value); err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"message": "updated " + req.Field})
}

// HandleNextLocations suggests consecutive shelf numbers for batch unboxing.
// @Summary Next Unboxed Locations
// @Description Advisory consecutive location numbers starting at the next free one. Nothing is reserved.
// @Tags movies
// @Produce json
// @Param count query int false "How many numbers to suggest"
// @Success 200 {object} map[string][]string "Locations"
// @Router /movies/locations/next [get]
func (h *Handler) HandleNextLocations(c *fiber.Ctx) error {
	locations, err := h.service.NextLocations(c.Context(), c.QueryInt("count", 1))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"locations": locations})
}

// HandleBoxSetAutocomplete returns box set name suggestions.
// @Summary Box Set Autocomplete
// @Description Distinct box set names matching the query.
// @Tags movies
// @Produce json
// @Param query query string false "Prefix to match"
// @Success 200 {object} map[string][]string "Suggestions"
// @Router /movies/autocomplete/box-sets [get]
func (h *Handler) HandleBoxSetAutocomplete(c *fiber.Ctx) error {
	names, err := h.service.BoxSetNames(c.Context(), c.Query("query"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": names})
}

// HandleStorageBoxAutocomplete returns storage box suggestions.
// @Summary Storage Box Autocomplete
// @Description Distinct storage box labels matching the query.
// @Tags movies
// @Produce json
// @Param query query string false "Prefix to match"
// @Success 200 {object} map[string][]string "Suggestions"
// @Router /movies/autocomplete/storage-boxes [get]
func (h *Handler) HandleStorageBoxAutocomplete(c *fiber.Ctx) error {
	boxes, err := h.service.StorageBoxes(c.Context(), c.Query("query"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": boxes})
}
