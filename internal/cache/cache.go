// Package cache assembles the local cache database: it opens the SQLite
// file, applies embedded migrations and hands out the per-entity stores.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/eventcache/internal/cache/events"
	"github.com/dmitrijs2005/eventcache/internal/cache/groups"
	"github.com/dmitrijs2005/eventcache/internal/cache/migrations"
	"github.com/dmitrijs2005/eventcache/internal/cache/profiles"
	"github.com/dmitrijs2005/eventcache/internal/cache/series"
	"github.com/dmitrijs2005/eventcache/internal/logging"
	"github.com/dmitrijs2005/eventcache/internal/memo"
)

// Options configures how the cache database is opened.
type Options struct {
	// Path is the SQLite file path; ":memory:" keeps everything in RAM.
	Path string

	// Memo sizes the per-store lookup memos; zero fields fall back to
	// memo.DefaultConfig values.
	Memo memo.Config
}

// Cache owns the database connection and the per-entity stores built on it.
type Cache struct {
	db  *sql.DB
	log logging.Logger

	Events   events.Repository
	Series   series.Repository
	Profiles profiles.Repository
	Groups   groups.Repository
}

// dsn appends the pragmas every connection needs: WAL for concurrent
// readers, a busy timeout instead of immediate SQLITE_BUSY, and relaxed
// fsync that WAL makes safe.
func dsn(path string) string {
	return path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=foreign_keys(ON)" +
		"&_pragma=synchronous(NORMAL)"
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open opens (creating if needed) the cache database at opts.Path, applies
// pending migrations and wires up the stores. A nil logger is replaced with
// a no-op one.
func Open(ctx context.Context, opts Options, log logging.Logger) (*Cache, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	db, err := sql.Open("sqlite", dsn(opts.Path))
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if opts.Path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping cache db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}
	log.Debug(ctx, "cache database ready", "path", opts.Path)

	c := &Cache{db: db, log: log}
	c.Events = events.NewCachedRepository(events.NewSQLiteRepository(db), opts.Memo)
	c.Series = series.NewCachedRepository(series.NewSQLiteRepository(db), opts.Memo)
	c.Profiles = profiles.NewCachedRepository(profiles.NewSQLiteRepository(db), opts.Memo)
	c.Groups = groups.NewCachedRepository(groups.NewSQLiteRepository(db), opts.Memo)
	return c, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// DB exposes the underlying connection for maintenance commands.
func (c *Cache) DB() *sql.DB {
	return c.db
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Factory builds a Cache; Provider calls it on first use.
type Factory func(ctx context.Context) (*Cache, error)

// Provider hands out a lazily opened, shared Cache. The factory runs at
// most once; every caller observes the same instance and the same error.
type Provider struct {
	factory Factory

	once  sync.Once
	cache *Cache
	err   error
}

// NewProvider returns a Provider around factory.
func NewProvider(factory Factory) *Provider {
	return &Provider{factory: factory}
}

// Get returns the shared Cache, opening it on the first call.
func (p *Provider) Get(ctx context.Context) (*Cache, error) {
	p.once.Do(func() {
		p.cache, p.err = p.factory(ctx)
	})
	return p.cache, p.err
}

// Close closes the Cache if it was ever opened.
func (p *Provider) Close() error {
	if p.cache == nil {
		return nil
	}
	return p.cache.Close()
}
