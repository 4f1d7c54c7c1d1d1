package ebay

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

const accountPath = "/sell/account/v1"

// policyEntry covers the three policy shapes; each kind fills its own id field.
type policyEntry struct {
	PaymentPolicyID     string `json:"paymentPolicyId"`
	ReturnPolicyID      string `json:"returnPolicyId"`
	FulfillmentPolicyID string `json:"fulfillmentPolicyId"`
	Name                string `json:"name"`
	MarketplaceID       string `json:"marketplaceId"`
}

func (e policyEntry) id(kind domain.PolicyKind) string {
	switch kind {
	case domain.PolicyPayment:
		return e.PaymentPolicyID
	case domain.PolicyReturn:
		return e.ReturnPolicyID
	case domain.PolicyFulfillment:
		return e.FulfillmentPolicyID
	}
	return ""
}

type policiesResponse struct {
	PaymentPolicies     []policyEntry `json:"paymentPolicies"`
	ReturnPolicies      []policyEntry `json:"returnPolicies"`
	FulfillmentPolicies []policyEntry `json:"fulfillmentPolicies"`
}

func (r *policiesResponse) entries(kind domain.PolicyKind) []policyEntry {
	switch kind {
	case domain.PolicyPayment:
		return r.PaymentPolicies
	case domain.PolicyReturn:
		return r.ReturnPolicies
	case domain.PolicyFulfillment:
		return r.FulfillmentPolicies
	}
	return nil
}

// ListPolicies returns the seller's business policies of one kind for
// marketplaceID, in the order eBay lists them.
func (c *SellClient) ListPolicies(
	ctx context.Context,
	kind domain.PolicyKind,
	marketplaceID string,
) ([]domain.Policy, error) {
	switch kind {
	case domain.PolicyPayment, domain.PolicyReturn, domain.PolicyFulfillment:
	default:
		return nil, fmt.Errorf("unknown policy kind %q", kind)
	}
	if marketplaceID == "" {
		marketplaceID = c.marketplace
	}

	operation := "list_" + string(kind) + "_policies"
	path := fmt.Sprintf("%s/%s_policy?marketplace_id=%s",
		accountPath, kind, url.QueryEscape(marketplaceID))

	resp, err := c.Get(withMarketplace(ctx, marketplaceID), operation, path)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(operation); err != nil {
		return nil, err
	}

	var out policiesResponse
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	entries := out.entries(kind)
	policies := make([]domain.Policy, 0, len(entries))
	for _, e := range entries {
		policies = append(policies, domain.Policy{
			ID:            e.id(kind),
			Name:          e.Name,
			Kind:          kind,
			MarketplaceID: e.MarketplaceID,
		})
	}
	return policies, nil
}
