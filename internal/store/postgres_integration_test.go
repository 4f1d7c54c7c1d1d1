//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/quicklist/internal/store"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

func setupPostgres(t *testing.T, opts ...store.Option) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("quicklist_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func TestPostgresStore_Contract(t *testing.T) {
	runStoreContract(t, setupPostgres(t))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Migrate(ctx))
}

func TestPostgresStore_TitleFilter(t *testing.T) {
	s := setupPostgres(t, store.WithInstance("shop-1"))
	ctx := context.Background()

	for _, title := range []string{"Blue Widget", "Red Gadget", "green WIDGET"} {
		require.NoError(t, s.SaveLastListing(ctx, &domain.LastListing{
			SKU:   "SNIP-" + title,
			Title: title,
		}))
	}

	title := "widget"
	page, total, err := s.ListListings(ctx, &store.ListingQuery{Title: &title, OrderBy: "title"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Blue Widget", page[0].Title)
}
