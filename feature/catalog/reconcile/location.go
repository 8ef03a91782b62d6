package reconcile

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"dvd-tracker/feature/catalog/models"
)

// ValidationError is a field-scoped rejection of a write. It is surfaced to
// the user against the named field rather than as a generic failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NextLocationNumber returns the next free shelf number for an unboxed item:
// one more than the highest numeric location in use, or 1 when nothing is
// unboxed. Comparison is numeric, never lexicographic, and rows whose
// location does not parse are skipped.
func NextLocationNumber(db *gorm.DB) (int, error) {
	var locations []string
	err := db.Model(&models.Movie{}).
		Where("status = ?", models.StatusUnboxed).
		Pluck("location", &locations).Error
	if err != nil {
		return 0, fmt.Errorf("failed to scan unboxed locations: %w", err)
	}

	max := 0
	for _, loc := range locations {
		n, err := strconv.Atoi(loc)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1, nil
}

// IsLocationTaken reports whether another unboxed item already holds the
// candidate location. Pass the item's own id as excludeID when re-validating
// an edit so it does not conflict with itself; 0 excludes nothing.
func IsLocationTaken(db *gorm.DB, candidate string, excludeID uint) (bool, error) {
	query := db.Model(&models.Movie{}).
		Where("status = ?", models.StatusUnboxed).
		Where("location = ?", candidate)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check location: %w", err)
	}
	return count > 0, nil
}

// NextSequentialLocations returns count consecutive shelf numbers starting
// at the next free one. Purely advisory for batch form pre-fill; nothing is
// reserved and two concurrent callers can see overlapping ranges.
func NextSequentialLocations(db *gorm.DB, count int) ([]string, error) {
	start, err := NextLocationNumber(db)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, strconv.Itoa(start+i))
	}
	return out, nil
}

// ValidateLocation checks an item entering or staying in the unboxed state
// before it is saved. The location must be a positive integer string not
// held by any other unboxed item. A violation returns a *ValidationError
// and the caller must refuse the write.
func ValidateLocation(db *gorm.DB, item *models.Movie) error {
	n, err := strconv.Atoi(item.Location)
	if err != nil || n < 1 {
		return &ValidationError{
			Field:   "location",
			Message: "location must be a positive number",
		}
	}

	taken, err := IsLocationTaken(db, item.Location, item.ID)
	if err != nil {
		return err
	}
	if taken {
		return &ValidationError{
			Field:   "location",
			Message: fmt.Sprintf("location %s is already in use", item.Location),
		}
	}
	return nil
}
