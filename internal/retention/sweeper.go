// Package retention evicts cache records older than a configured TTL.
package retention

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/eventcache/internal/logging"
)

// timeNow is a seam for tests that pin the sweep reference time.
var timeNow = time.Now

// Store is the slice of a repository the sweeper needs.
type Store interface {
	DeleteOlderThan(ctx context.Context, cutoffMillis int64) (int64, error)
}

// target pairs a store with the name used in logs.
type target struct {
	name  string
	store Store
}

// Sweeper periodically removes records whose ingestion timestamp has aged
// past the retention period.
type Sweeper struct {
	retention time.Duration
	interval  time.Duration
	targets   []target
	log       logging.Logger
}

// Config sets the sweep cadence.
type Config struct {
	// Retention is how long a record may live after ingestion.
	Retention time.Duration

	// Interval is how often Run sweeps.
	Interval time.Duration
}

// NewSweeper returns a sweeper over no stores; register them with Add.
// A nil logger is replaced with a no-op one.
func NewSweeper(cfg Config, log logging.Logger) *Sweeper {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Sweeper{
		retention: cfg.Retention,
		interval:  cfg.Interval,
		log:       log,
	}
}

// Add registers a store under name for sweeping.
func (s *Sweeper) Add(name string, store Store) {
	s.targets = append(s.targets, target{name: name, store: store})
}

// Cutoff returns the current expiry instant in unix milliseconds: records
// ingested before now minus the retention period are expired.
func (s *Sweeper) Cutoff() int64 {
	return timeNow().Add(-s.retention).UnixMilli()
}

// SweepOnce removes records older than cutoff (unix milliseconds) from every
// registered store. A failing store does not stop the sweep of the others;
// the errors are joined. Sweeping twice with the same cutoff removes nothing
// on the second pass.
func (s *Sweeper) SweepOnce(ctx context.Context, cutoff int64) (int64, error) {
	var total int64
	var errs []error
	for _, t := range s.targets {
		removed, err := t.store.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			s.log.Error(ctx, "sweep failed", "store", t.name, "error", err)
			errs = append(errs, err)
			continue
		}
		if removed > 0 {
			s.log.Info(ctx, "swept expired records", "store", t.name, "removed", removed)
		}
		total += removed
	}
	return total, errors.Join(errs...)
}

// Run sweeps on every interval tick until ctx is cancelled. Sweep errors
// are logged and do not stop the loop.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info(ctx, "retention sweeper started",
		"retention", s.retention.String(), "interval", s.interval.String())

	for {
		select {
		case <-ctx.Done():
			s.log.Info(ctx, "retention sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx, s.Cutoff()); err != nil {
				s.log.Error(ctx, "sweep pass finished with errors", "error", err)
			}
		}
	}
}
