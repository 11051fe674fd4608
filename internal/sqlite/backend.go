// Package sqlite implements a report store on top of a private, in-memory
// SQLite database. Nothing is written to disk; the data lives exactly as
// long as the Backend.
package sqlite

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/flyinginsectsunpig/crimereport/internal/logger"
	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

// Compile-time interface check: Backend must implement ReportStore.
var _ types.ReportStore = (*Backend)(nil)

// Backend is a ReportStore backed by SQLite. All access is serialized by mu;
// mutations hold the write lock so check-then-write sequences are atomic.
type Backend struct {
	mu     sync.RWMutex
	db     *sqlx.DB
	closed bool
	log    logrus.FieldLogger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for mutation and query-failure events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(b *Backend) {
		b.log = log
	}
}

// NewBackend opens a fresh in-memory database and creates the schema.
func NewBackend(opts ...Option) (*Backend, error) {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logger.Discard()
	}

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// Each connection to :memory: is a separate database, so the pool must
	// hold exactly one connection and never recycle it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	return b, nil
}

// Close releases the database. The data is gone afterwards. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("closing sqlite: %w", err)
	}
	return nil
}

// Len returns the number of stored reports, or 0 once closed.
func (b *Backend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return 0
	}
	var n int
	if err := b.db.Get(&n, "SELECT COUNT(*) FROM reports"); err != nil {
		b.log.WithError(err).Error("counting reports")
		return 0
	}
	return n
}
