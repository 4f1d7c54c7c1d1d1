package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// PolicyLister reads the seller's business policies and inventory locations.
type PolicyLister interface {
	Marketplace() string
	ListPolicies(ctx context.Context, marketplaceID string) (*domain.PolicySet, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// PoliciesHandler exposes the seller account setup the listing form needs.
type PoliciesHandler struct {
	policies PolicyLister
}

// NewPoliciesHandler creates a new PoliciesHandler.
func NewPoliciesHandler(p PolicyLister) *PoliciesHandler {
	return &PoliciesHandler{policies: p}
}

// ListPoliciesInput selects the marketplace.
type ListPoliciesInput struct {
	MarketplaceID string `query:"marketplace_id" doc:"eBay marketplace id; defaults to the configured marketplace" example:"EBAY_DE"`
}

// ListPoliciesOutput is the response for the policies endpoint.
type ListPoliciesOutput struct {
	Body struct {
		MarketplaceID string          `json:"marketplace_id"`
		Payment       []domain.Policy `json:"payment"`
		Returns       []domain.Policy `json:"returns"`
		Fulfillment   []domain.Policy `json:"fulfillment"`
	}
}

// ListLocationsOutput is the response for the locations endpoint.
type ListLocationsOutput struct {
	Body struct {
		Locations []domain.Location `json:"locations"`
	}
}

// ListPolicies returns the payment, return and fulfillment policies.
func (h *PoliciesHandler) ListPolicies(
	ctx context.Context,
	input *ListPoliciesInput,
) (*ListPoliciesOutput, error) {
	mkt := input.MarketplaceID
	if mkt == "" {
		mkt = h.policies.Marketplace()
	}

	set, err := h.policies.ListPolicies(ctx, mkt)
	if err != nil {
		return nil, upstreamError("listing policies", err)
	}

	resp := &ListPoliciesOutput{}
	resp.Body.MarketplaceID = mkt
	resp.Body.Payment = nonNil(set.Payment)
	resp.Body.Returns = nonNil(set.Return)
	resp.Body.Fulfillment = nonNil(set.Fulfillment)
	return resp, nil
}

// ListLocations returns the seller's inventory locations.
func (h *PoliciesHandler) ListLocations(ctx context.Context, _ *struct{}) (*ListLocationsOutput, error) {
	locs, err := h.policies.ListLocations(ctx)
	if err != nil {
		return nil, upstreamError("listing locations", err)
	}

	resp := &ListLocationsOutput{}
	resp.Body.Locations = nonNil(locs)
	return resp, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// RegisterPolicyRoutes registers the policy and location endpoints, plus the
// /api/ebay aliases older extension builds call.
func RegisterPolicyRoutes(api huma.API, h *PoliciesHandler) {
	errs := []int{http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusBadGateway}

	huma.Register(api, huma.Operation{
		OperationID: "list-policies",
		Method:      http.MethodGet,
		Path:        "/api/policies",
		Summary:     "List business policies",
		Description: "Returns the seller's payment, return and fulfillment policies for a marketplace.",
		Tags:        []string{"account"},
		Errors:      errs,
	}, h.ListPolicies)

	huma.Register(api, huma.Operation{
		OperationID: "list-locations",
		Method:      http.MethodGet,
		Path:        "/api/locations",
		Summary:     "List inventory locations",
		Description: "Returns the seller's merchant inventory locations.",
		Tags:        []string{"account"},
		Errors:      errs,
	}, h.ListLocations)

	huma.Register(api, huma.Operation{
		OperationID: "list-policies-legacy",
		Method:      http.MethodGet,
		Path:        "/api/ebay/policies",
		Summary:     "List business policies (legacy path)",
		Tags:        []string{"account"},
		Deprecated:  true,
		Errors:      errs,
	}, h.ListPolicies)

	huma.Register(api, huma.Operation{
		OperationID: "list-locations-legacy",
		Method:      http.MethodGet,
		Path:        "/api/ebay/locations",
		Summary:     "List inventory locations (legacy path)",
		Tags:        []string{"account"},
		Deprecated:  true,
		Errors:      errs,
	}, h.ListLocations)
}
