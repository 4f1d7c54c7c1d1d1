// Package ebay provides the eBay Sell API client and the seller credential
// lifecycle, abstracted behind interfaces for testability.
package ebay

import (
	"context"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// TokenProvider defines the interface for obtaining OAuth2 user tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// InventoryAPI is the subset of the Sell Inventory API used to publish a
// listing. Non-success answers are returned as *UpstreamError.
type InventoryAPI interface {
	UpsertInventoryItem(ctx context.Context, sku string, item *InventoryItem) error
	CreateOffer(ctx context.Context, offer *OfferRequest) (*domain.Offer, error)
	PublishOffer(ctx context.Context, offerID, marketplaceID string) (*PublishResult, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// AccountAPI is the subset of the Sell Account API used to look up business
// policies.
type AccountAPI interface {
	ListPolicies(ctx context.Context, kind domain.PolicyKind, marketplaceID string) ([]domain.Policy, error)
}
