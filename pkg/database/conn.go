package database

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"
)

// Opener produces a ready gorm handle.
type Opener func(ctx context.Context) (*gorm.DB, error)

// Conn is the process-wide store handle. It is created once at startup and
// opened on first use; the open result is then shared by every caller for the
// life of the process. A failed open is not remembered, so the next caller
// tries again.
type Conn struct {
	open Opener
	mu   sync.Mutex
	db   atomic.Pointer[gorm.DB]
}

// NewConn returns a lazily opened handle for dsn.
func NewConn(dsn string, opts Options) *Conn {
	return NewConnWithOpener(func(ctx context.Context) (*gorm.DB, error) {
		return Open(ctx, dsn, opts)
	})
}

// NewConnWithOpener returns a lazily opened handle backed by open.
func NewConnWithOpener(open Opener) *Conn {
	return &Conn{open: open}
}

// FromDB wraps an already open handle.
func FromDB(db *gorm.DB) *Conn {
	c := &Conn{open: func(context.Context) (*gorm.DB, error) { return db, nil }}
	c.db.Store(db)
	return c
}

// DB returns the shared handle, opening it on first use.
func (c *Conn) DB(ctx context.Context) (*gorm.DB, error) {
	if db := c.db.Load(); db != nil {
		return db, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if db := c.db.Load(); db != nil {
		return db, nil
	}
	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	if db == nil {
		return nil, fmt.Errorf("opener returned no handle")
	}
	c.db.Store(db)
	return db, nil
}

// Ping checks the store is reachable, opening the handle if needed.
func (c *Conn) Ping(ctx context.Context) error {
	db, err := c.DB(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool if it was ever opened.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	db := c.db.Swap(nil)
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
