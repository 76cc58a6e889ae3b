// Package events provides the local persistence layer for event records.
//
// # Overview
//
// The package defines a Repository interface for CRUD and query operations on
// event Records, a SQLite-backed implementation, a Mapper converting between
// the flat Record and the rich models.Event, and a caching decorator that
// memoizes point lookups.
//
// # Data Model
//
// A Record is the storable shape of an event: composites (location, the start
// timestamp) are flattened into scalar columns, list fields are JSON-encoded
// arrays of strings, and every row carries cached_at — the ingestion instant
// in unix milliseconds that drives the eviction sweep. Locations reconstruct
// on read only when all three constituent columns are non-NULL.
//
// # Concurrency
//
// The SQLite implementation is safe for concurrent use when backed by a
// properly configured *sql.DB (the cache opens it in WAL mode with a busy
// timeout). Single-statement upserts and deletes give per-key atomicity.
package events
