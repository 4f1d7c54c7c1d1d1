// Package domain defines the core business types for quicklist.
package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrNoCredential is returned by stores when no credential has been saved yet.
var ErrNoCredential = errors.New("no credential stored")

// ErrNoLastListing is returned by stores when no listing has been recorded yet.
var ErrNoLastListing = errors.New("no listing recorded")

// Credential is the OAuth user token pair for the marketplace account.
type Credential struct {
	AccessToken  string    `json:"access_token"  db:"access_token"`
	RefreshToken string    `json:"refresh_token" db:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"    db:"expires_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// Usable reports whether the access token may still be sent at now, leaving
// skew before the hard expiry.
func (c *Credential) Usable(now time.Time, skew time.Duration) bool {
	if c == nil || c.AccessToken == "" || c.ExpiresAt.IsZero() {
		return false
	}
	return now.Before(c.ExpiresAt.Add(-skew))
}

// CanRefresh reports whether a refresh grant can be attempted.
func (c *Credential) CanRefresh() bool {
	return c != nil && c.RefreshToken != ""
}

// Product is the description captured from a retail page. It is produced by
// the scraping collaborator and never modified afterwards.
type Product struct {
	Title       string              `json:"title,omitempty"       doc:"Listing title (required)"`
	Description string              `json:"description,omitempty" doc:"Listing description; defaults to the title"`
	Price       string              `json:"price,omitempty"       doc:"Price as a decimal string (required)" example:"19.99"`
	Currency    string              `json:"currency,omitempty"    doc:"ISO 4217 currency code"    example:"EUR"`
	Quantity    int                 `json:"quantity,omitempty"    doc:"Available quantity; defaults to 1" minimum:"0"`
	Images      []string            `json:"images,omitempty"      doc:"Image URLs"`
	ASIN        string              `json:"asin,omitempty"        doc:"Source page identifier"`
	Aspects     map[string][]string `json:"aspects,omitempty"     doc:"Item specifics passed through to the inventory item"`
}

// ListingOverrides are the operator-supplied values layered on top of a Product.
type ListingOverrides struct {
	SKU                 string `json:"sku,omitempty"                 doc:"Seller SKU; generated when empty"`
	CategoryID          string `json:"categoryId,omitempty"          doc:"Marketplace leaf category id"`
	MerchantLocationKey string `json:"merchantLocationKey,omitempty" doc:"Inventory location key"`
	PaymentPolicyID     string `json:"paymentPolicyId,omitempty"     doc:"Payment business policy id"`
	ReturnPolicyID      string `json:"returnPolicyId,omitempty"      doc:"Return business policy id"`
	FulfillmentPolicyID string `json:"fulfillmentPolicyId,omitempty" doc:"Fulfillment business policy id"`
	ListingDuration     string `json:"listingDuration,omitempty"     doc:"Listing duration; defaults to GTC"`
}

// ListingRequest is a Product plus operator overrides. Both embedded structs
// are flattened on the wire.
type ListingRequest struct {
	Product
	ListingOverrides
}

// HasAllPolicies reports whether all three business policy ids are set.
func (r *ListingRequest) HasAllPolicies() bool {
	return r.PaymentPolicyID != "" && r.ReturnPolicyID != "" && r.FulfillmentPolicyID != ""
}

// MissingFields returns the names of required fields that are blank.
func (r *ListingRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(r.Price) == "" {
		missing = append(missing, "price")
	}
	return missing
}

// PolicyKind identifies the kind of a business policy.
type PolicyKind string

// Policy kind constants.
const (
	PolicyPayment     PolicyKind = "payment"
	PolicyReturn      PolicyKind = "return"
	PolicyFulfillment PolicyKind = "fulfillment"
)

// Policy is a seller business policy scoped to one marketplace.
type Policy struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Kind          PolicyKind `json:"kind"`
	MarketplaceID string     `json:"marketplace_id,omitempty"`
}

// PolicySet groups the seller's policies by kind.
type PolicySet struct {
	Payment     []Policy `json:"payment"`
	Return      []Policy `json:"returns"`
	Fulfillment []Policy `json:"fulfillment"`
}

// First returns the id of the first policy of the given kind, or "".
func (s *PolicySet) First(kind PolicyKind) string {
	var list []Policy
	switch kind {
	case PolicyPayment:
		list = s.Payment
	case PolicyReturn:
		list = s.Return
	case PolicyFulfillment:
		list = s.Fulfillment
	}
	if len(list) == 0 {
		return ""
	}
	return list[0].ID
}

// Location is a registered merchant inventory location.
type Location struct {
	MerchantLocationKey string `json:"merchantLocationKey"`
	Name                string `json:"name,omitempty"`
	Status              string `json:"merchantLocationStatus,omitempty"`
}

// Offer is a sellable listing draft created by the marketplace.
type Offer struct {
	OfferID string `json:"offerId"`
	SKU     string `json:"sku"`
	Status  string `json:"status,omitempty"`
}

// LastListing records a listing created by this instance. The most recent one
// is reported by the store view; older ones form the listing history.
type LastListing struct {
	SKU       string    `json:"sku"        db:"sku"`
	OfferID   string    `json:"offer_id"   db:"offer_id"`
	Title     string    `json:"title"      db:"title"`
	Published bool      `json:"published"  db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
