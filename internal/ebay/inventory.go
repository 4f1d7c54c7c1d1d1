package ebay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

const inventoryPath = "/sell/inventory/v1"

// InventoryItem is the createOrReplaceInventoryItem payload.
type InventoryItem struct {
	Product      InventoryProduct `json:"product"`
	Availability Availability     `json:"availability"`
	Condition    string           `json:"condition,omitempty"`
}

// InventoryProduct describes the item being sold.
type InventoryProduct struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	ImageURLs   []string            `json:"imageUrls"`
	Aspects     map[string][]string `json:"aspects"`
}

// Availability carries the sellable quantity.
type Availability struct {
	ShipToLocationAvailability ShipToLocationAvailability `json:"shipToLocationAvailability"`
}

// ShipToLocationAvailability is the quantity available to ship.
type ShipToLocationAvailability struct {
	Quantity int `json:"quantity"`
}

// OfferRequest is the createOffer payload. Optional fields are omitted when
// empty.
type OfferRequest struct {
	SKU                 string           `json:"sku"`
	MarketplaceID       string           `json:"marketplaceId"`
	Format              string           `json:"format"`
	CategoryID          string           `json:"categoryId,omitempty"`
	AvailableQuantity   int              `json:"availableQuantity"`
	ListingDescription  string           `json:"listingDescription"`
	ListingDuration     string           `json:"listingDuration"`
	PricingSummary      PricingSummary   `json:"pricingSummary"`
	ListingPolicies     *ListingPolicies `json:"listingPolicies,omitempty"`
	MerchantLocationKey string           `json:"merchantLocationKey,omitempty"`
}

// PricingSummary holds the offer price.
type PricingSummary struct {
	Price Amount `json:"price"`
}

// Amount is a decimal string with its currency.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ListingPolicies references the seller's business policies.
type ListingPolicies struct {
	PaymentPolicyID     string `json:"paymentPolicyId"`
	ReturnPolicyID      string `json:"returnPolicyId"`
	FulfillmentPolicyID string `json:"fulfillmentPolicyId"`
}

// PublishResult is the publishOffer answer.
type PublishResult struct {
	ListingID string `json:"listingId"`
	Warnings  []any  `json:"warnings,omitempty"`
}

// UpsertInventoryItem creates or replaces the inventory item for sku. Only
// 200 and 204 count as success.
func (c *SellClient) UpsertInventoryItem(ctx context.Context, sku string, item *InventoryItem) error {
	resp, err := c.Put(ctx, "create_inventory_item",
		inventoryPath+"/inventory_item/"+url.PathEscape(sku), item)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &UpstreamError{
			Operation:  "create_inventory_item",
			StatusCode: resp.StatusCode,
			Body:       resp.Payload(),
		}
	}
	return nil
}

// CreateOffer creates an unpublished offer and returns its id.
func (c *SellClient) CreateOffer(ctx context.Context, offer *OfferRequest) (*domain.Offer, error) {
	resp, err := c.Post(ctx, "create_offer", inventoryPath+"/offer", offer)
	if err != nil {
		return nil, err
	}
	if err := resp.Err("create_offer"); err != nil {
		return nil, err
	}

	out := &domain.Offer{SKU: offer.SKU}
	if err := resp.Decode(out); err != nil {
		return nil, fmt.Errorf("create_offer: %w", err)
	}
	if out.OfferID == "" {
		return nil, &UpstreamError{
			Operation:  "create_offer",
			StatusCode: resp.StatusCode,
			Body:       resp.Payload(),
		}
	}
	return out, nil
}

// PublishOffer publishes an offer on marketplaceID.
func (c *SellClient) PublishOffer(ctx context.Context, offerID, marketplaceID string) (*PublishResult, error) {
	if marketplaceID == "" {
		marketplaceID = c.marketplace
	}
	resp, err := c.Post(ctx, "publish_offer",
		inventoryPath+"/offer/"+url.PathEscape(offerID)+"/publish",
		map[string]string{"marketplaceId": marketplaceID})
	if err != nil {
		return nil, err
	}
	if err := resp.Err("publish_offer"); err != nil {
		return nil, err
	}

	out := &PublishResult{}
	if err := resp.Decode(out); err != nil {
		return nil, fmt.Errorf("publish_offer: %w", err)
	}
	return out, nil
}

type locationsResponse struct {
	Locations []domain.Location `json:"locations"`
	Total     int               `json:"total"`
}

// ListLocations returns the seller's inventory locations.
func (c *SellClient) ListLocations(ctx context.Context) ([]domain.Location, error) {
	resp, err := c.Get(ctx, "list_locations", inventoryPath+"/location?limit=100")
	if err != nil {
		return nil, err
	}
	if err := resp.Err("list_locations"); err != nil {
		return nil, err
	}

	var out locationsResponse
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("list_locations: %w", err)
	}
	if out.Locations == nil {
		out.Locations = []domain.Location{}
	}
	return out.Locations, nil
}
