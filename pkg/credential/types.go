package credential

import (
	"context"
	"errors"
	"time"
)

const (
	KindMemory = "memory"
	KindSQLite = "sqlite"

	DefaultSize = 1000
	DefaultTTL  = 24 * time.Hour
)

// ErrNotFound is returned by Load when no credential is stored for a key.
var ErrNotFound = errors.New("credential not found")

// Store keeps the bearer credential of each signed-in session.
type Store interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, token string) error
	Clear(ctx context.Context, key string) error
	Close() error
}

// Purger is implemented by stores that need explicit removal of expired entries.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Pinger is implemented by stores backed by an external resource.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options selects and configures a Store.
type Options struct {
	Kind       string
	SQLitePath string
	TTL        time.Duration
	Size       int
}
