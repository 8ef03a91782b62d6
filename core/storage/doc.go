// Package storage provides the object storage client for poster images.
//
// Posters downloaded from TMDB are stored as objects in an S3-compatible
// bucket (Minio). The Client interface wraps the subset of minio-go the
// application uses so feature code can be tested against the mocks
// subpackage instead of a live endpoint.
package storage
