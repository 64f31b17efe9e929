// Package database provides connection pool management for the canonical
// PostgreSQL store.
//
// Every ingestion task acquires connections from one shared pgx pool; the
// pool, not the task count, bounds open connections toward the database.
package database
