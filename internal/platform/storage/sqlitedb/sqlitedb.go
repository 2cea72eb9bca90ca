// Package sqlitedb owns the process-wide SQLite connection pool.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

const memoryLocation = ":memory:"

// ErrLocationRequired is returned when the connector has no database location.
var ErrLocationRequired = errors.New("database location is required")

// pragmas applied to every pooled connection.
var pragmas = []string{
	"journal_mode(WAL)",
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
}

// Connector opens one *sql.DB on first use and hands the same pool to every
// later caller. A failed first open is returned to every caller.
type Connector struct {
	// Location is a filesystem path, optionally prefixed with "file:", or
	// ":memory:".
	Location string

	once sync.Once
	db   *sql.DB
	err  error
}

// NewConnector returns a connector for location.
func NewConnector(location string) *Connector {
	return &Connector{Location: location}
}

// Open returns the shared pool, opening and pinging it on the first call.
func (c *Connector) Open(ctx context.Context) (*sql.DB, error) {
	if c == nil {
		return nil, ErrLocationRequired
	}
	c.once.Do(func() {
		c.db, c.err = open(ctx, c.Location)
	})
	return c.db, c.err
}

// Close releases the pool when one was opened.
func (c *Connector) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// DSN builds the modernc driver data source name for location.
func DSN(location string) (string, error) {
	path := strings.TrimSpace(location)
	path = strings.TrimPrefix(path, "file:")
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}
	if path == "" {
		return "", ErrLocationRequired
	}
	if path != memoryLocation {
		path = filepath.Clean(path)
	}
	params := make([]string, 0, len(pragmas))
	for _, pragma := range pragmas {
		params = append(params, "_pragma="+pragma)
	}
	return path + "?" + strings.Join(params, "&"), nil
}

func open(ctx context.Context, location string) (*sql.DB, error) {
	dsn, err := DSN(location)
	if err != nil {
		return nil, err
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if strings.HasPrefix(dsn, memoryLocation) {
		// Every pooled connection to :memory: would see its own database.
		sqlDB.SetMaxOpenConns(1)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return sqlDB, nil
}
