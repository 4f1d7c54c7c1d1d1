package ebay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// LocationLister lists the seller's inventory locations.
type LocationLister interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// PolicyResolver looks up business policies and inventory locations and
// fills omitted policy ids on a listing request.
type PolicyResolver struct {
	account     AccountAPI
	locations   LocationLister
	marketplace string
	logger      *slog.Logger
}

// PolicyOption configures the PolicyResolver.
type PolicyOption func(*PolicyResolver)

// WithPolicyLogger sets the logger.
func WithPolicyLogger(l *slog.Logger) PolicyOption {
	return func(r *PolicyResolver) {
		r.logger = l
	}
}

// NewPolicyResolver creates a PolicyResolver for marketplace.
func NewPolicyResolver(
	account AccountAPI,
	locations LocationLister,
	marketplace string,
	opts ...PolicyOption,
) *PolicyResolver {
	if marketplace == "" {
		marketplace = defaultMarketplace
	}
	r := &PolicyResolver{
		account:     account,
		locations:   locations,
		marketplace: marketplace,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Marketplace returns the default marketplace id.
func (r *PolicyResolver) Marketplace() string {
	return r.marketplace
}

// ListPolicies fetches all three policy kinds for marketplaceID. Any failed
// lookup fails the whole call.
func (r *PolicyResolver) ListPolicies(ctx context.Context, marketplaceID string) (*domain.PolicySet, error) {
	if marketplaceID == "" {
		marketplaceID = r.marketplace
	}

	set := &domain.PolicySet{}
	for _, kind := range []domain.PolicyKind{
		domain.PolicyPayment,
		domain.PolicyReturn,
		domain.PolicyFulfillment,
	} {
		policies, err := r.account.ListPolicies(ctx, kind, marketplaceID)
		if err != nil {
			return nil, fmt.Errorf("listing %s policies: %w", kind, err)
		}
		setKind(set, kind, policies)
	}
	return set, nil
}

// ListLocations returns the seller's inventory locations.
func (r *PolicyResolver) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locs, err := r.locations.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return locs, nil
}

// ResolveMissing returns a copy of req with each empty policy id set to the
// first policy of that kind. Only missing kinds are fetched. A kind with no
// policies, or whose lookup fails upstream, stays empty; only a missing
// credential or a canceled context is returned as an error.
func (r *PolicyResolver) ResolveMissing(
	ctx context.Context,
	req *domain.ListingRequest,
) (*domain.ListingRequest, error) {
	out := *req

	targets := []struct {
		kind domain.PolicyKind
		id   *string
	}{
		{domain.PolicyPayment, &out.PaymentPolicyID},
		{domain.PolicyReturn, &out.ReturnPolicyID},
		{domain.PolicyFulfillment, &out.FulfillmentPolicyID},
	}

	for _, t := range targets {
		if *t.id != "" {
			continue
		}

		policies, err := r.account.ListPolicies(ctx, t.kind, r.marketplace)
		if err != nil {
			if errors.Is(err, ErrAuthRequired) || ctx.Err() != nil {
				return nil, fmt.Errorf("resolving %s policy: %w", t.kind, err)
			}
			r.logger.Warn("policy lookup failed, leaving id empty",
				"kind", t.kind,
				"error", err,
			)
			continue
		}
		if len(policies) > 0 {
			*t.id = policies[0].ID
		}
	}

	return &out, nil
}

func setKind(set *domain.PolicySet, kind domain.PolicyKind, policies []domain.Policy) {
	switch kind {
	case domain.PolicyPayment:
		set.Payment = policies
	case domain.PolicyReturn:
		set.Return = policies
	case domain.PolicyFulfillment:
		set.Fulfillment = policies
	}
}
