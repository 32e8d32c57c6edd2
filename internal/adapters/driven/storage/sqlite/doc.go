// Package sqlite provides a SQLite-backed corpus store using the pure-Go
// modernc.org/sqlite driver. The store is written by the offline
// ingestion job and read once at startup; query-time code never touches
// it.
package sqlite
