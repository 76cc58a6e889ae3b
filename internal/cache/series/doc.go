// Package series provides the local persistence layer for event serie
// records: the Repository interface, its SQLite implementation, the
// Record⇄models.Serie mapper, and a caching decorator for point lookups.
//
// A serie's LastEventEndTime is a flattened timestamp pair that is nullable
// as a unit: it reconstructs on read only when both columns are non-NULL.
package series
