// Package taskstore persists tasks in a local SQLite database.
//
// This is the local-only storage mode's data layer and the search
// core's task source: ActiveTasks supplies the snapshot a scoring pass
// scans, and the search core never writes back.
//
// # Soft Delete
//
// DeleteTask and AbandonTask flag rows instead of removing them.
// Flagged rows are excluded from ActiveTasks and therefore from every
// search result and suggestion list, but remain reachable through
// GetTask and unfiltered ListTasks calls.
//
// # Drivers
//
// Two SQLite drivers are supported via build tags:
//
//	CGO_ENABLED=0 go build ./...                      modernc.org/sqlite (default)
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./...     mattn/go-sqlite3
//
// Both run the same schema and pragmas (WAL, foreign keys, single
// writer connection). Use ":memory:" as the path for tests.
//
// # Bulk Import
//
// BulkImport validates and inserts tasks in concurrent batches, each
// batch in its own transaction. Invalid tasks are skipped and reported
// in ImportStats rather than aborting the run.
package taskstore
