package client

import (
	"context"
	"net/url"
	"time"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// PoliciesResponse lists the seller's business policies by kind.
type PoliciesResponse struct {
	MarketplaceID string          `json:"marketplace_id"`
	Payment       []domain.Policy `json:"payment"`
	Returns       []domain.Policy `json:"returns"`
	Fulfillment   []domain.Policy `json:"fulfillment"`
}

// StoreState summarizes the stored credential and the last listing.
type StoreState struct {
	HasAccessToken  bool                `json:"has_access_token"`
	HasRefreshToken bool                `json:"has_refresh_token"`
	ExpiresAt       *time.Time          `json:"expires_at"`
	LastListing     *domain.LastListing `json:"last_listing"`
}

// AuthStatus is the credential lifecycle state reported by the server.
type AuthStatus struct {
	Configured      bool      `json:"configured"`
	State           string    `json:"state"`
	ExpiresAt       time.Time `json:"expires_at"`
	HasRefreshToken bool      `json:"has_refresh_token"`
}

// Quota is the daily Sell API budget.
type Quota struct {
	DailyLimit int64           `json:"daily_limit"`
	DailyUsed  int64           `json:"daily_used"`
	Remaining  int64           `json:"remaining"`
	ResetAt    time.Time       `json:"reset_at"`
	Upstream   []UpstreamQuota `json:"upstream,omitempty"`
}

// UpstreamQuota is eBay's counter for one Sell Inventory resource.
type UpstreamQuota struct {
	Resource   string    `json:"resource"`
	Count      int64     `json:"count"`
	Limit      int64     `json:"limit"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	WindowSecs int64     `json:"window_secs"`
}

// ListPolicies returns the policies for marketplace, or the server default
// when marketplace is empty.
func (c *Client) ListPolicies(ctx context.Context, marketplace string) (*PoliciesResponse, error) {
	path := "/api/policies"
	if marketplace != "" {
		path += "?" + url.Values{"marketplace_id": {marketplace}}.Encode()
	}

	var resp PoliciesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListLocations returns the seller's inventory locations.
func (c *Client) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var resp struct {
		Locations []domain.Location `json:"locations"`
	}
	if err := c.get(ctx, "/api/locations", &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

// StoreState returns what the server has persisted.
func (c *Client) StoreState(ctx context.Context) (*StoreState, error) {
	var resp StoreState
	if err := c.get(ctx, "/api/store", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthStatus returns the credential state.
func (c *Client) AuthStatus(ctx context.Context) (*AuthStatus, error) {
	var resp AuthStatus
	if err := c.get(ctx, "/api/auth/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Quota returns the daily call budget. With upstream set the server also
// asks eBay for its own counters.
func (c *Client) Quota(ctx context.Context, upstream bool) (*Quota, error) {
	path := "/api/quota"
	if upstream {
		path += "?upstream=true"
	}

	var resp Quota
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}
