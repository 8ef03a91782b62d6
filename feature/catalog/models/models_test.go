package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	m := Movie{
		Name:       "  Alien ",
		CopyNotes:  " scratched  ",
		StorageBox: "   ",
		Location:   " 5 ",
	}
	m.Normalize()

	assert.Equal(t, "Alien", m.Name)
	assert.Equal(t, "scratched", m.CopyNotes)
	assert.Empty(t, m.StorageBox)
	assert.Equal(t, "5", m.Location)
	assert.Equal(t, 1, m.CopyNumber)
	assert.Equal(t, StatusKept, m.Status)
	assert.Equal(t, MediaPhysical, m.MediaType)
}

func TestGenresList(t *testing.T) {
	m := Movie{Genres: "Horror, Science Fiction, , Thriller"}
	assert.Equal(t, []string{"Horror", "Science Fiction", "Thriller"}, m.GenresList())

	assert.Nil(t, (&Movie{}).GenresList())
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidStatus(StatusUnboxed))
	assert.False(t, ValidStatus("lost"))
	assert.True(t, ValidMediaType(MediaRip))
	assert.False(t, ValidMediaType("vhs"))
}
