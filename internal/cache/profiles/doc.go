// Package profiles provides the local persistence layer for user profile
// records: the Repository interface, its SQLite implementation, the
// Record⇄models.Profile mapper, and a caching decorator for point lookups.
//
// Profiles are keyed by user UID and carry several optional scalar fields
// that map between Go's "" and SQL NULL, plus two timestamp pairs that are
// each nullable as a unit.
package profiles
