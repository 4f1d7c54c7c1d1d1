package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

func TestCredential_Usable(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	skew := 60 * time.Second

	tests := []struct {
		name string
		cred *domain.Credential
		want bool
	}{
		{name: "nil", cred: nil, want: false},
		{name: "empty access token", cred: &domain.Credential{ExpiresAt: now.Add(time.Hour)}, want: false},
		{name: "zero expiry", cred: &domain.Credential{AccessToken: "a"}, want: false},
		{name: "well before expiry", cred: &domain.Credential{AccessToken: "a", ExpiresAt: now.Add(time.Hour)}, want: true},
		{name: "inside skew window", cred: &domain.Credential{AccessToken: "a", ExpiresAt: now.Add(30 * time.Second)}, want: false},
		{name: "exactly at skew boundary", cred: &domain.Credential{AccessToken: "a", ExpiresAt: now.Add(skew)}, want: false},
		{name: "expired", cred: &domain.Credential{AccessToken: "a", ExpiresAt: now.Add(-time.Minute)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cred.Usable(now, skew))
		})
	}
}

func TestListingRequest_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  domain.ListingRequest
		want []string
	}{
		{name: "complete", req: domain.ListingRequest{Product: domain.Product{Title: "W", Price: "1"}}},
		{name: "no title", req: domain.ListingRequest{Product: domain.Product{Price: "1"}}, want: []string{"title"}},
		{name: "blank price", req: domain.ListingRequest{Product: domain.Product{Title: "W", Price: "  "}}, want: []string{"price"}},
		{name: "neither", want: []string{"title", "price"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.req.MissingFields())
		})
	}
}

func TestListingRequest_FlatJSON(t *testing.T) {
	t.Parallel()

	var req domain.ListingRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "Widget",
		"price": "19.99",
		"quantity": 2,
		"sku": "SKU-1",
		"categoryId": "177",
		"paymentPolicyId": "p1"
	}`), &req))

	assert.Equal(t, "Widget", req.Title)
	assert.Equal(t, 2, req.Quantity)
	assert.Equal(t, "SKU-1", req.SKU)
	assert.Equal(t, "177", req.CategoryID)
	assert.Equal(t, "p1", req.PaymentPolicyID)
	assert.False(t, req.HasAllPolicies())
}

func TestPolicySet_First(t *testing.T) {
	t.Parallel()

	set := domain.PolicySet{
		Payment: []domain.Policy{{ID: "pay-1"}, {ID: "pay-2"}},
		Return:  []domain.Policy{{ID: "ret-1"}},
	}

	assert.Equal(t, "pay-1", set.First(domain.PolicyPayment))
	assert.Equal(t, "ret-1", set.First(domain.PolicyReturn))
	assert.Empty(t, set.First(domain.PolicyFulfillment))
	assert.Empty(t, set.First("bogus"))
}
