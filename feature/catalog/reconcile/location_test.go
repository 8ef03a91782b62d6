package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dvd-tracker/feature/catalog/models"
)

func TestNextLocationNumber(t *testing.T) {
	t.Run("Starts At 1", func(t *testing.T) {
		db := newTestDB(t)
		createMovie(t, db, models.Movie{Name: "Boxed", Status: models.StatusKept, StorageBox: "Box 1"})

		next, err := NextLocationNumber(db)
		require.NoError(t, err)
		assert.Equal(t, 1, next)
	})

	t.Run("Numeric Max Not Lexicographic", func(t *testing.T) {
		db := newTestDB(t)
		for _, loc := range []string{"2", "9", "10"} {
			createMovie(t, db, models.Movie{Name: "Unboxed " + loc, Status: models.StatusUnboxed, Location: loc})
		}

		next, err := NextLocationNumber(db)
		require.NoError(t, err)
		assert.Equal(t, 11, next)
	})

	t.Run("Ignores Unparseable Locations", func(t *testing.T) {
		db := newTestDB(t)
		createMovie(t, db, models.Movie{Name: "A", Status: models.StatusUnboxed, Location: "5"})
		createMovie(t, db, models.Movie{Name: "B", Status: models.StatusUnboxed, Location: "shelf"})
		createMovie(t, db, models.Movie{Name: "C", Status: models.StatusUnboxed})

		next, err := NextLocationNumber(db)
		require.NoError(t, err)
		assert.Equal(t, 6, next)
	})
}

func TestIsLocationTaken(t *testing.T) {
	db := newTestDB(t)
	holder := createMovie(t, db, models.Movie{Name: "Holder", Status: models.StatusUnboxed, Location: "5"})
	createMovie(t, db, models.Movie{Name: "Kept Five", Status: models.StatusKept, Location: "5"})

	t.Run("Taken By Another Unboxed Item", func(t *testing.T) {
		taken, err := IsLocationTaken(db, "5", 0)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("Own ID Excluded", func(t *testing.T) {
		taken, err := IsLocationTaken(db, "5", holder.ID)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("Free Location", func(t *testing.T) {
		taken, err := IsLocationTaken(db, "6", 0)
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestNextSequentialLocations(t *testing.T) {
	db := newTestDB(t)
	createMovie(t, db, models.Movie{Name: "A", Status: models.StatusUnboxed, Location: "3"})

	locs, err := NextSequentialLocations(db, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "5", "6"}, locs)
}

func TestValidateLocation(t *testing.T) {
	db := newTestDB(t)
	holder := createMovie(t, db, models.Movie{Name: "Holder", Status: models.StatusUnboxed, Location: "5"})

	t.Run("Valid Free Location", func(t *testing.T) {
		item := models.Movie{Name: "New", Status: models.StatusUnboxed, Location: "6"}
		assert.NoError(t, ValidateLocation(db, &item))
	})

	t.Run("Rejects Non Numeric", func(t *testing.T) {
		item := models.Movie{Name: "New", Status: models.StatusUnboxed, Location: "shelf"}
		err := ValidateLocation(db, &item)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "location", verr.Field)
	})

	t.Run("Rejects Zero And Negative", func(t *testing.T) {
		for _, loc := range []string{"0", "-3", ""} {
			item := models.Movie{Name: "New", Status: models.StatusUnboxed, Location: loc}
			assert.Error(t, ValidateLocation(db, &item))
		}
	})

	t.Run("Rejects Taken Location", func(t *testing.T) {
		item := models.Movie{Name: "New", Status: models.StatusUnboxed, Location: "5"}
		err := ValidateLocation(db, &item)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "already in use")
	})

	t.Run("Edit Does Not Conflict With Itself", func(t *testing.T) {
		assert.NoError(t, ValidateLocation(db, &holder))
	})
}
