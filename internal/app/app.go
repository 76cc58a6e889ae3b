// Package app wires configuration, the cache database and the retention
// sweeper into the cachectl command surface.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/eventcache/internal/cache"
	"github.com/dmitrijs2005/eventcache/internal/config"
	"github.com/dmitrijs2005/eventcache/internal/logging"
	"github.com/dmitrijs2005/eventcache/internal/memo"
	"github.com/dmitrijs2005/eventcache/internal/retention"
)

// App owns the lazily opened cache and executes one subcommand per run.
type App struct {
	cfg      *config.Config
	log      logging.Logger
	provider *cache.Provider
	out      io.Writer
}

// NewApp builds an App around cfg. The cache database is not opened until a
// subcommand needs it.
func NewApp(cfg *config.Config, log logging.Logger, out io.Writer) *App {
	a := &App{cfg: cfg, log: log, out: out}
	a.provider = cache.NewProvider(func(ctx context.Context) (*cache.Cache, error) {
		return cache.Open(ctx, cache.Options{
			Path: cfg.DatabasePath,
			Memo: a.memoConfig(),
		}, log)
	})
	return a
}

func (a *App) memoConfig() memo.Config {
	cfg := memo.DefaultConfig()
	if a.cfg.MemoCapacity > 0 {
		cfg.Capacity = a.cfg.MemoCapacity
	}
	if a.cfg.MemoTTL > 0 {
		cfg.TTL = a.cfg.MemoTTL
	}
	return cfg
}

// Run executes the subcommand named by args[0]. With no arguments it prints
// usage and fails.
func (a *App) Run(ctx context.Context, args []string) error {
	defer func() { _ = a.provider.Close() }()

	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "migrate":
		return a.runMigrate(ctx)
	case "sweep":
		return a.runSweep(ctx)
	case "watch":
		return a.runWatch(ctx)
	case "seed":
		return a.runSeed(ctx)
	case "stats":
		return a.runStats(ctx)
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, `usage: cachectl <command>

commands:
  migrate   open the database and apply pending migrations
  sweep     remove records older than the retention period, once
  watch     sweep on an interval until interrupted
  seed      insert sample records for local development
  stats     print per-store record counts`)
}

// runMigrate opens the database, which applies pending migrations as a side
// effect of cache.Open.
func (a *App) runMigrate(ctx context.Context) error {
	if _, err := a.provider.Get(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "migrations applied")
	return nil
}

func (a *App) sweeper(c *cache.Cache) *retention.Sweeper {
	s := retention.NewSweeper(retention.Config{
		Retention: a.cfg.RetentionPeriod,
		Interval:  a.cfg.SweepInterval,
	}, a.log)
	s.Add("events", c.Events)
	s.Add("series", c.Series)
	s.Add("profiles", c.Profiles)
	s.Add("groups", c.Groups)
	return s
}

func (a *App) runSweep(ctx context.Context) error {
	c, err := a.provider.Get(ctx)
	if err != nil {
		return err
	}
	s := a.sweeper(c)
	removed, err := s.SweepOnce(ctx, s.Cutoff())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "removed %d expired records\n", removed)
	return nil
}

// runWatch sweeps on the configured interval until ctx is cancelled.
func (a *App) runWatch(ctx context.Context) error {
	c, err := a.provider.Get(ctx)
	if err != nil {
		return err
	}
	a.sweeper(c).Run(ctx)
	return nil
}

func (a *App) runStats(ctx context.Context) error {
	c, err := a.provider.Get(ctx)
	if err != nil {
		return err
	}

	counts := []struct {
		name  string
		count func() (int, error)
	}{
		{"events", func() (int, error) { r, err := c.Events.GetAll(ctx); return len(r), err }},
		{"series", func() (int, error) { r, err := c.Series.GetAll(ctx); return len(r), err }},
		{"profiles", func() (int, error) { r, err := c.Profiles.GetAll(ctx); return len(r), err }},
		{"groups", func() (int, error) { r, err := c.Groups.GetAll(ctx); return len(r), err }},
	}
	for _, entry := range counts {
		n, err := entry.count()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%-10s %d\n", entry.name, n)
	}

	oldest, err := a.oldestCachedAt(ctx, c)
	if err != nil {
		return err
	}
	if oldest > 0 {
		fmt.Fprintf(a.out, "oldest record cached at %s\n",
			time.UnixMilli(oldest).UTC().Format(time.RFC3339))
	}
	return nil
}

func (a *App) oldestCachedAt(ctx context.Context, c *cache.Cache) (int64, error) {
	var oldest int64
	for _, table := range []string{"events", "series", "profiles", "groups"} {
		var v int64
		row := c.DB().QueryRowContext(ctx, `SELECT COALESCE(MIN(cached_at), 0) FROM `+table)
		if err := row.Scan(&v); err != nil {
			return 0, err
		}
		if v > 0 && (oldest == 0 || v < oldest) {
			oldest = v
		}
	}
	return oldest, nil
}
