// Package store persists a ledger of scenario runs in SQLite.
//
// Each executed scenario becomes one row in the runs table, keyed by
// the run's UUID, so conformance results can be inspected after the
// fact with `verity history`. The database is created on first open
// with WAL mode and a single-writer connection pool.
package store
