// Package catalog is the movie collection itself: CRUD over catalog items,
// list filtering, duplicate-aware creation, bulk import from the metadata
// provider, statistics, and CSV export.
package catalog
