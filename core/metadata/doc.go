// Package metadata fetches movie metadata from The Movie Database. Details
// are merged from several endpoints into one record and cached in memory so
// the same title is only fetched once per TTL window.
package metadata
