// Package database handles database connections and schema inspection.
//
// It provides a thin wrapper around GORM that configures MySQL for
// production use and sqlite for tests and small single-user installs.
//
// # Connect
//
// Connect builds the DSN from Config, silences GORM's own logger (the
// application logger owns output), tunes the connection pool, and verifies
// the connection with a ping before returning.
//
// # Schema Inspection
//
// GetTableColumns and VerifyTable inspect the live schema. The start
// command uses them after migration to confirm the movies table carries
// the columns the catalog feature depends on.
package database
