// Package groups provides the local persistence layer for group records:
// the Repository interface, its SQLite implementation, the
// Record⇄models.Group mapper, and a caching decorator for point lookups.
package groups
