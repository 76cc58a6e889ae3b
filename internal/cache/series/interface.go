package series

import (
	"context"

	"github.com/dmitrijs2005/eventcache/internal/models"
)

// Repository describes CRUD and query operations on serie records. Absent
// keys are success outcomes; storage failure is the only error kind surfaced.
type Repository interface {
	// Upsert inserts a record or replaces the existing one with the same
	// SerieID.
	Upsert(ctx context.Context, rec Record) error

	// UpsertBatch upserts every record inside one transaction. An empty
	// batch is a no-op that performs no writes.
	UpsertBatch(ctx context.Context, recs []Record) error

	// GetByID returns the record for id, with found=false when absent.
	GetByID(ctx context.Context, id string) (Record, bool, error)

	// GetAll returns every cached record, unordered.
	GetAll(ctx context.Context) ([]Record, error)

	// GetByOwner returns records whose owner_id matches exactly.
	GetByOwner(ctx context.Context, ownerID string) ([]Record, error)

	// GetPublic returns up to limit public records, newest date first.
	GetPublic(ctx context.Context, limit int) ([]Record, error)

	// GetUpcoming returns up to limit records dated at or after ref,
	// newest date first.
	GetUpcoming(ctx context.Context, ref models.Timestamp, limit int) ([]Record, error)

	// DeleteByID removes the record for id; absent keys are a no-op.
	DeleteByID(ctx context.Context, id string) error

	// DeleteAll empties the store; a no-op when already empty.
	DeleteAll(ctx context.Context) error

	// DeleteOlderThan removes records with cached_at strictly below
	// cutoffMillis and reports how many were removed.
	DeleteOlderThan(ctx context.Context, cutoffMillis int64) (int64, error)
}
