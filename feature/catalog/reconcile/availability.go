package reconcile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"dvd-tracker/core/torrents"
	"dvd-tracker/feature/catalog/models"
)

// DefaultCacheMaxAge is how long a persisted availability snapshot is
// trusted before a refresh is worth attempting.
const DefaultCacheMaxAge = 24 * time.Hour

// RefreshOutcome classifies the result of an availability refresh so the
// caller can tell "add an IMDB id first" apart from "provider is down".
type RefreshOutcome int

const (
	// RefreshOK means the cache and timestamp were overwritten, possibly
	// with an empty list.
	RefreshOK RefreshOutcome = iota
	// RefreshNoIMDBID means the item cannot be looked up; no network call
	// was made and nothing changed.
	RefreshNoIMDBID
	// RefreshProviderError means the provider failed transiently; the
	// previous cache and timestamp are untouched.
	RefreshProviderError
)

// String returns a short label for logging.
func (o RefreshOutcome) String() string {
	switch o {
	case RefreshOK:
		return "ok"
	case RefreshNoIMDBID:
		return "no_imdb_id"
	case RefreshProviderError:
		return "provider_error"
	default:
		return "unknown"
	}
}

// CacheIsFresh reports whether the item's availability snapshot is recent
// enough to skip a refresh. An item never refreshed is always stale.
func CacheIsFresh(item *models.Movie, maxAge time.Duration) bool {
	if item.TorrentsCheckedAt == nil {
		return false
	}
	return time.Since(*item.TorrentsCheckedAt) < maxAge
}

// RefreshAvailability fetches the current torrent list for the item and
// overwrites its cache in full. On provider failure the stored cache and
// timestamp are left exactly as they were. The outcome reports what the
// provider did; a non-nil error means the lookup succeeded but persisting
// the cache failed, and the item is left unchanged. There is no per-item
// mutual exclusion; concurrent refreshes each call the provider and the
// last write wins.
func RefreshAvailability(ctx context.Context, db *gorm.DB, item *models.Movie, client torrents.Client, logger *zap.Logger) (RefreshOutcome, error) {
	if item.IMDBID == "" {
		return RefreshNoIMDBID, nil
	}

	list, err := client.QualityTorrents(ctx, item.IMDBID, torrents.DefaultQualities)
	if err != nil {
		logger.Warn("availability refresh failed",
			zap.Uint("movie_id", item.ID),
			zap.String("imdb_id", item.IMDBID),
			zap.Error(err))
		return RefreshProviderError, nil
	}

	now := time.Now()
	cache := datatypes.NewJSONSlice(list)
	hasEntries := len(list) > 0

	err = db.Model(item).Updates(map[string]interface{}{
		"torrents":            cache,
		"torrents_checked_at": &now,
		"has_cached_torrents": hasEntries,
	}).Error
	if err != nil {
		logger.Error("failed to persist availability cache",
			zap.Uint("movie_id", item.ID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to persist availability cache: %w", err)
	}

	item.Torrents = cache
	item.TorrentsCheckedAt = &now
	item.HasCachedTorrents = hasEntries
	return RefreshOK, nil
}

// HasAvailableEntries is the cheap read path for list views: a non-empty
// cache answers immediately and nothing here ever calls the provider.
func HasAvailableEntries(item *models.Movie) bool {
	return len(item.Torrents) > 0
}
