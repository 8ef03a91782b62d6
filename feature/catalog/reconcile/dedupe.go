package reconcile

import (
	"fmt"

	"gorm.io/gorm"

	"dvd-tracker/feature/catalog/models"
)

// DuplicateSet returns every catalog row that represents the same movie as
// item, ordered by copy number. When the item carries a TMDB id the match is
// on that id alone; otherwise it falls back to exact name plus release year,
// where two rows with no year at all also count as the same movie. The item
// itself is part of its own set once persisted.
func DuplicateSet(db *gorm.DB, item *models.Movie) ([]models.Movie, error) {
	query := db.Model(&models.Movie{})

	if item.TMDBID != nil {
		query = query.Where("tmdb_id = ?", *item.TMDBID)
	} else {
		query = query.Where("tmdb_id IS NULL").Where("name = ?", item.Name)
		if item.ReleaseYear != nil {
			query = query.Where("release_year = ?", *item.ReleaseYear)
		} else {
			query = query.Where("release_year IS NULL")
		}
	}

	var set []models.Movie
	if err := query.Order("copy_number ASC").Find(&set).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve duplicate set: %w", err)
	}
	return set, nil
}

// HasDuplicates reports whether any other row represents the same movie.
// Exclusion is by row identity, not field equality.
func HasDuplicates(db *gorm.DB, item *models.Movie) (bool, error) {
	set, err := DuplicateSet(db, item)
	if err != nil {
		return false, err
	}
	for _, member := range set {
		if member.ID != item.ID {
			return true, nil
		}
	}
	return false, nil
}

// NextCopyNumber returns the copy number a new or renumbered copy of this
// movie should take: one more than the highest in the set, or 1 when the
// item has no duplicates. The number is free at call time only; nothing
// reserves it.
func NextCopyNumber(db *gorm.DB, item *models.Movie) (int, error) {
	set, err := DuplicateSet(db, item)
	if err != nil {
		return 0, err
	}

	others := 0
	max := 0
	for _, member := range set {
		if member.ID != item.ID {
			others++
		}
		if member.CopyNumber > max {
			max = member.CopyNumber
		}
	}
	if others == 0 {
		return 1, nil
	}
	return max + 1, nil
}

// CopyLabel renders the copy annotation shown next to a title. A lone first
// copy gets no label.
func CopyLabel(item *models.Movie, setSize int) string {
	if setSize <= 1 && item.CopyNumber == 1 {
		return ""
	}
	if item.CopyNotes != "" {
		return fmt.Sprintf("Copy #%d (%s)", item.CopyNumber, item.CopyNotes)
	}
	return fmt.Sprintf("Copy #%d", item.CopyNumber)
}
