// Package store defines the persistence abstraction for quicklist.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"fmt"

	"github.com/donaldgifford/quicklist/internal/config"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// Store holds the OAuth credential and the listing history for one instance.
type Store interface {
	// Credential
	GetCredential(ctx context.Context) (*domain.Credential, error)
	SaveCredential(ctx context.Context, c *domain.Credential) error
	DeleteCredential(ctx context.Context) error

	// Listings
	SaveLastListing(ctx context.Context, l *domain.LastListing) error
	GetLastListing(ctx context.Context) (*domain.LastListing, error)
	ListListings(ctx context.Context, q *ListingQuery) ([]domain.LastListing, int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error

	Close() error
}

// Open builds the Store selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgresStore(ctx, cfg.Database.DSN(), WithInstance(cfg.Instance))
	case config.DriverRedis:
		return NewRedisStore(ctx, cfg.Redis, WithInstance(cfg.Instance))
	case config.DriverFile, "":
		return NewFileStore(cfg.File.Path, WithInstance(cfg.Instance))
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

type options struct {
	instance string
}

// Option configures a Store driver.
type Option func(*options)

// WithInstance scopes every record to the named instance.
func WithInstance(name string) Option {
	return func(o *options) {
		if name != "" {
			o.instance = name
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{instance: "default"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
