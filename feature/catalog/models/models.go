package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"dvd-tracker/core/torrents"
)

// Status is the lifecycle state of a catalog item.
const (
	StatusKept     = "kept"
	StatusDisposed = "disposed"
	StatusUnboxed  = "unboxed"
)

// Media types.
const (
	MediaPhysical = "physical"
	MediaDownload = "download"
	MediaRip      = "rip"
)

// Statuses lists the valid lifecycle states.
var Statuses = []string{StatusKept, StatusDisposed, StatusUnboxed}

// MediaTypes lists the valid media types.
var MediaTypes = []string{MediaPhysical, MediaDownload, MediaRip}

// Movie is a single copy of a title in the collection. Two rows with the
// same TMDB id (or the same name and year) are separate physical copies of
// the same movie.
type Movie struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Name        string `gorm:"column:name;type:varchar(255);index" json:"name"`
	TMDBID      *int   `gorm:"column:tmdb_id;index" json:"tmdb_id"`
	IMDBID      string `gorm:"column:imdb_id;type:varchar(20)" json:"imdb_id"`
	ReleaseYear *int   `gorm:"column:release_year" json:"release_year"`

	// Copy bookkeeping for duplicate titles.
	CopyNumber int    `gorm:"column:copy_number;default:1" json:"copy_number"`
	CopyNotes  string `gorm:"column:copy_notes;type:varchar(255)" json:"copy_notes"`

	Status    string `gorm:"column:status;type:varchar(16);default:kept;index" json:"status"`
	MediaType string `gorm:"column:media_type;type:varchar(16);default:physical" json:"media_type"`
	// StorageBox is where a kept item lives.
	StorageBox string `gorm:"column:storage_box;type:varchar(100)" json:"storage_box"`
	// Location is the shelf number of an unboxed item. Digits only, unique
	// among unboxed items.
	Location string `gorm:"column:location;type:varchar(20)" json:"location"`

	// Availability cache. HasCachedTorrents is kept in sync on every cache
	// write so list filtering does not need to unpack the JSON column.
	Torrents          datatypes.JSONSlice[torrents.Torrent] `gorm:"column:torrents" json:"torrents"`
	TorrentsCheckedAt *time.Time                            `gorm:"column:torrents_checked_at" json:"torrents_checked_at"`
	HasCachedTorrents bool                                  `gorm:"column:has_cached_torrents;default:false;index" json:"has_cached_torrents"`

	Overview            string  `gorm:"column:overview;type:text" json:"overview"`
	Genres              string  `gorm:"column:genres;type:varchar(255)" json:"genres"`
	Runtime             *int    `gorm:"column:runtime" json:"runtime"`
	Rating              float64 `gorm:"column:rating;default:0" json:"rating"`
	Certification       string  `gorm:"column:certification;type:varchar(10)" json:"certification"`
	TMDBScore           float64 `gorm:"column:tmdb_score;default:0" json:"tmdb_score"`
	Language            string  `gorm:"column:language;type:varchar(10)" json:"language"`
	Budget              int64   `gorm:"column:budget;default:0" json:"budget"`
	Revenue             int64   `gorm:"column:revenue;default:0" json:"revenue"`
	ProductionCompanies string  `gorm:"column:production_companies;type:varchar(500)" json:"production_companies"`
	Tagline             string  `gorm:"column:tagline;type:varchar(500)" json:"tagline"`
	Director            string  `gorm:"column:director;type:varchar(255)" json:"director"`
	// PosterKey is the object key of the downloaded poster in the bucket.
	PosterKey string `gorm:"column:poster_key;type:varchar(255)" json:"poster_key"`

	IsTartan    bool   `gorm:"column:is_tartan;default:false" json:"is_tartan"`
	IsBoxSet    bool   `gorm:"column:is_box_set;default:false" json:"is_box_set"`
	BoxSetName  string `gorm:"column:box_set_name;type:varchar(255)" json:"box_set_name"`
	IsUnopened  bool   `gorm:"column:is_unopened;default:false" json:"is_unopened"`
	IsUnwatched bool   `gorm:"column:is_unwatched;default:false" json:"is_unwatched"`
}

// TableName overrides the table name.
func (Movie) TableName() string {
	return "movies"
}

// Normalize trims the free-text fields so "no value" is always the empty
// string, never whitespace.
func (m *Movie) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.CopyNotes = strings.TrimSpace(m.CopyNotes)
	m.StorageBox = strings.TrimSpace(m.StorageBox)
	m.Location = strings.TrimSpace(m.Location)
	m.BoxSetName = strings.TrimSpace(m.BoxSetName)
	if m.CopyNumber < 1 {
		m.CopyNumber = 1
	}
	if m.Status == "" {
		m.Status = StatusKept
	}
	if m.MediaType == "" {
		m.MediaType = MediaPhysical
	}
}

// GenresList splits the comma separated genres field.
func (m *Movie) GenresList() []string {
	if m.Genres == "" {
		return nil
	}
	parts := strings.Split(m.Genres, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidMediaType reports whether s is a known media type.
func ValidMediaType(s string) bool {
	for _, v := range MediaTypes {
		if v == s {
			return true
		}
	}
	return false
}
