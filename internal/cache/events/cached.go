package events

import (
	"context"

	"github.com/dmitrijs2005/eventcache/internal/memo"
	"github.com/dmitrijs2005/eventcache/internal/models"
)

// CachedRepository decorates a Repository with an in-process memo for point
// lookups. Writes invalidate the affected key; bulk deletions invalidate
// everything, so readers always observe their own writes.
type CachedRepository struct {
	base Repository
	memo *memo.ByID[Record]
}

// NewCachedRepository wraps base with a memo sized by cfg.
func NewCachedRepository(base Repository, cfg memo.Config) *CachedRepository {
	c := &CachedRepository{base: base}
	c.memo = memo.NewByID("events", cfg, base.GetByID)
	return c
}

func (c *CachedRepository) Upsert(ctx context.Context, rec Record) error {
	if err := c.base.Upsert(ctx, rec); err != nil {
		return err
	}
	c.memo.Invalidate(rec.EventID)
	return nil
}

func (c *CachedRepository) UpsertBatch(ctx context.Context, recs []Record) error {
	if err := c.base.UpsertBatch(ctx, recs); err != nil {
		return err
	}
	for _, rec := range recs {
		c.memo.Invalidate(rec.EventID)
	}
	return nil
}

func (c *CachedRepository) GetByID(ctx context.Context, id string) (Record, bool, error) {
	return c.memo.Get(ctx, id)
}

func (c *CachedRepository) GetAll(ctx context.Context) ([]Record, error) {
	return c.base.GetAll(ctx)
}

func (c *CachedRepository) GetByOwner(ctx context.Context, ownerID string) ([]Record, error) {
	return c.base.GetByOwner(ctx, ownerID)
}

func (c *CachedRepository) GetPublic(ctx context.Context, limit int) ([]Record, error) {
	return c.base.GetPublic(ctx, limit)
}

func (c *CachedRepository) GetUpcoming(ctx context.Context, ref models.Timestamp, limit int) ([]Record, error) {
	return c.base.GetUpcoming(ctx, ref, limit)
}

func (c *CachedRepository) DeleteByID(ctx context.Context, id string) error {
	if err := c.base.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.memo.Invalidate(id)
	return nil
}

func (c *CachedRepository) DeleteAll(ctx context.Context) error {
	if err := c.base.DeleteAll(ctx); err != nil {
		return err
	}
	c.memo.InvalidateAll()
	return nil
}

func (c *CachedRepository) DeleteOlderThan(ctx context.Context, cutoffMillis int64) (int64, error) {
	removed, err := c.base.DeleteOlderThan(ctx, cutoffMillis)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		c.memo.InvalidateAll()
	}
	return removed, nil
}

var _ Repository = (*CachedRepository)(nil)
