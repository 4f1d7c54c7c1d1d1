package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/quicklist/internal/store"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// runStoreContract exercises the behavior every Store driver must share.
func runStoreContract(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Ping(ctx))

	t.Run("empty store", func(t *testing.T) {
		_, err := s.GetCredential(ctx)
		require.ErrorIs(t, err, domain.ErrNoCredential)

		_, err = s.GetLastListing(ctx)
		require.ErrorIs(t, err, domain.ErrNoLastListing)

		page, total, err := s.ListListings(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, page)
	})

	t.Run("credential replaced wholesale", func(t *testing.T) {
		expires := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Microsecond)
		require.NoError(t, s.SaveCredential(ctx, &domain.Credential{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresAt:    expires,
		}))

		got, err := s.GetCredential(ctx)
		require.NoError(t, err)
		assert.Equal(t, "access-1", got.AccessToken)
		assert.Equal(t, "refresh-1", got.RefreshToken)
		assert.True(t, expires.Equal(got.ExpiresAt))
		assert.False(t, got.UpdatedAt.IsZero())

		later := expires.Add(time.Hour)
		require.NoError(t, s.SaveCredential(ctx, &domain.Credential{
			AccessToken:  "access-2",
			RefreshToken: "refresh-2",
			ExpiresAt:    later,
		}))

		got, err = s.GetCredential(ctx)
		require.NoError(t, err)
		assert.Equal(t, "access-2", got.AccessToken)
		assert.Equal(t, "refresh-2", got.RefreshToken)
		assert.True(t, later.Equal(got.ExpiresAt))
	})

	t.Run("listing history newest first", func(t *testing.T) {
		base := time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond)
		for i, sku := range []string{"SNIP-1", "SNIP-2", "SNIP-3"} {
			require.NoError(t, s.SaveLastListing(ctx, &domain.LastListing{
				SKU:       sku,
				OfferID:   "offer-" + sku,
				Title:     "Widget " + sku,
				Published: i%2 == 0,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		last, err := s.GetLastListing(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SNIP-3", last.SKU)
		assert.Equal(t, "offer-SNIP-3", last.OfferID)
		assert.True(t, last.Published)

		page, total, err := s.ListListings(ctx, &store.ListingQuery{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page, 2)
		assert.Equal(t, "SNIP-3", page[0].SKU)
		assert.Equal(t, "SNIP-2", page[1].SKU)

		published := false
		page, total, err = s.ListListings(ctx, &store.ListingQuery{Published: &published})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, page, 1)
		assert.Equal(t, "SNIP-2", page[0].SKU)
	})

	t.Run("delete credential", func(t *testing.T) {
		require.NoError(t, s.DeleteCredential(ctx))
		_, err := s.GetCredential(ctx)
		require.ErrorIs(t, err, domain.ErrNoCredential)
	})
}
