// Package pipeline turns a listing request into an eBay offer: it upserts the
// inventory item, fills missing business policies, creates the offer and
// publishes it when every publish prerequisite is present.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/metrics"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

const (
	defaultSKUPrefix   = "SNIP"
	defaultMarketplace = "EBAY_DE"
	defaultCurrency    = "EUR"
	defaultDuration    = "GTC"
	offerFormat        = "FIXED_PRICE"
)

var tracer = otel.Tracer("github.com/donaldgifford/quicklist/internal/pipeline")

// Inventory is the slice of the Sell Inventory API the pipeline drives.
type Inventory interface {
	UpsertInventoryItem(ctx context.Context, sku string, item *ebay.InventoryItem) error
	CreateOffer(ctx context.Context, offer *ebay.OfferRequest) (*domain.Offer, error)
	PublishOffer(ctx context.Context, offerID, marketplaceID string) (*ebay.PublishResult, error)
}

// PolicyResolver fills omitted business policy ids.
type PolicyResolver interface {
	ResolveMissing(ctx context.Context, req *domain.ListingRequest) (*domain.ListingRequest, error)
}

// ListingRecorder stores the outcome of a run.
type ListingRecorder interface {
	SaveLastListing(ctx context.Context, l *domain.LastListing) error
}

// Pipeline runs listing requests one step at a time. It is safe for
// concurrent use; each Create call is independent.
type Pipeline struct {
	inventory   Inventory
	policies    PolicyResolver
	recorder    ListingRecorder
	log         *slog.Logger
	nowFunc     func() time.Time
	skuPrefix   string
	marketplace string
	currency    string
	duration    string
}

// Option configures the Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithNowFunc overrides the clock used for SKUs and history timestamps.
func WithNowFunc(f func() time.Time) Option {
	return func(p *Pipeline) {
		p.nowFunc = f
	}
}

// WithSKUPrefix sets the prefix of generated SKUs.
func WithSKUPrefix(prefix string) Option {
	return func(p *Pipeline) {
		if prefix != "" {
			p.skuPrefix = prefix
		}
	}
}

// WithMarketplace sets the marketplace offers are created and published on.
func WithMarketplace(id string) Option {
	return func(p *Pipeline) {
		if id != "" {
			p.marketplace = id
		}
	}
}

// WithDefaultCurrency sets the currency used when a request has none.
func WithDefaultCurrency(c string) Option {
	return func(p *Pipeline) {
		if c != "" {
			p.currency = c
		}
	}
}

// WithDefaultDuration sets the listing duration used when a request has none.
func WithDefaultDuration(d string) Option {
	return func(p *Pipeline) {
		if d != "" {
			p.duration = d
		}
	}
}

// New creates a Pipeline. recorder may be nil to skip history writes.
func New(inv Inventory, policies PolicyResolver, recorder ListingRecorder, opts ...Option) *Pipeline {
	p := &Pipeline{
		inventory:   inv,
		policies:    policies,
		recorder:    recorder,
		log:         slog.Default(),
		nowFunc:     time.Now,
		skuPrefix:   defaultSKUPrefix,
		marketplace: defaultMarketplace,
		currency:    defaultCurrency,
		duration:    defaultDuration,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Create runs the pipeline for req. Upstream rejections come back as a
// step_failed Result with a nil error. The error is non-nil for a
// *ValidationError (nothing was sent), for a missing or unrefreshable
// credential, for an exhausted call budget and for a canceled context.
// Completed steps are never rolled back.
func (p *Pipeline) Create(ctx context.Context, req *domain.ListingRequest) (res *Result, err error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "pipeline.create")
	defer func() {
		metrics.ListingDuration.Observe(time.Since(start).Seconds())
		p.observe(span, res, err)
		span.End()
	}()

	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	sku := req.SKU
	if sku == "" {
		sku = p.newSKU()
	}
	span.SetAttributes(attribute.String("listing.sku", sku))
	log := p.log.With("sku", sku)

	if err := p.step(ctx, StepCreateInventoryItem, func(ctx context.Context) error {
		return p.inventory.UpsertInventoryItem(ctx, sku, p.inventoryItem(req))
	}); err != nil {
		return p.stepFailure(StepCreateInventoryItem, sku, "", err)
	}
	log.Debug("inventory item upserted")

	resolved := req
	if !req.HasAllPolicies() {
		resolved, err = p.policies.ResolveMissing(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("resolving policies: %w", err)
		}
	}

	var offer *domain.Offer
	if err := p.step(ctx, StepCreateOffer, func(ctx context.Context) error {
		var err error
		offer, err = p.inventory.CreateOffer(ctx, p.offerRequest(sku, resolved))
		return err
	}); err != nil {
		return p.stepFailure(StepCreateOffer, sku, "", err)
	}
	log = log.With("offer_id", offer.OfferID)

	var result *Result
	if reason := publishBlocker(resolved); reason != "" {
		log.Info("offer created, publish skipped", "reason", reason)
		result = Skipped(sku, offer.OfferID, reason)
	} else {
		var pub *ebay.PublishResult
		if err := p.step(ctx, StepPublishOffer, func(ctx context.Context) error {
			var err error
			pub, err = p.inventory.PublishOffer(ctx, offer.OfferID, p.marketplace)
			return err
		}); err != nil {
			return p.stepFailure(StepPublishOffer, sku, offer.OfferID, err)
		}
		log.Info("offer published", "listing_id", pub.ListingID)
		result = Done(sku, offer.OfferID, pub)
	}

	p.record(ctx, log, &domain.LastListing{
		SKU:       sku,
		OfferID:   offer.OfferID,
		Title:     req.Title,
		Published: result.Published(),
		CreatedAt: p.nowFunc().UTC(),
	})

	return result, nil
}

// step runs fn inside a child span named after the step.
func (*Pipeline) step(ctx context.Context, step Step, fn func(context.Context) error) error {
	ctx, span := tracer.Start(ctx, "pipeline."+string(step))
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(step))
	}
	return err
}

// stepFailure turns a step error into a step_failed Result when eBay answered
// or the request never got a response, and into an error otherwise.
func (p *Pipeline) stepFailure(step Step, sku, offerID string, err error) (*Result, error) {
	var ue *ebay.UpstreamError
	if errors.As(err, &ue) {
		p.log.Warn("listing step rejected",
			"step", step,
			"sku", sku,
			"status", ue.StatusCode,
		)
		return Failed(step, sku, offerID, ue.StatusCode, ue.Body), nil
	}

	if errors.Is(err, ebay.ErrAuthRequired) ||
		errors.Is(err, ebay.ErrTokenRefreshFailed) ||
		errors.Is(err, ebay.ErrDailyLimitReached) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	p.log.Warn("listing step failed without a response", "step", step, "sku", sku, "error", err)
	return Failed(step, sku, offerID, 0, map[string]any{"error": err.Error()}), nil
}

func (p *Pipeline) record(ctx context.Context, log *slog.Logger, l *domain.LastListing) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.SaveLastListing(ctx, l); err != nil {
		log.Error("recording listing failed", "error", err)
	}
}

func (*Pipeline) observe(span trace.Span, res *Result, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		metrics.ListingsTotal.WithLabelValues("invalid").Inc()
	case err != nil:
		metrics.ListingsTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "pipeline error")
	case res != nil:
		metrics.ListingsTotal.WithLabelValues(string(res.Outcome)).Inc()
		span.SetAttributes(attribute.String("listing.outcome", string(res.Outcome)))
		if res.Outcome == OutcomeStepFailed {
			metrics.ListingStepFailuresTotal.WithLabelValues(string(res.Step)).Inc()
			span.SetStatus(codes.Error, string(res.Step))
		}
	}
}

func (p *Pipeline) inventoryItem(req *domain.ListingRequest) *ebay.InventoryItem {
	images := req.Images
	if images == nil {
		images = []string{}
	}
	aspects := req.Aspects
	if aspects == nil {
		aspects = map[string][]string{}
	}

	return &ebay.InventoryItem{
		Product: ebay.InventoryProduct{
			Title:       req.Title,
			Description: description(req),
			ImageURLs:   images,
			Aspects:     aspects,
		},
		Availability: ebay.Availability{
			ShipToLocationAvailability: ebay.ShipToLocationAvailability{
				Quantity: quantity(req),
			},
		},
	}
}

func (p *Pipeline) offerRequest(sku string, req *domain.ListingRequest) *ebay.OfferRequest {
	currency := req.Currency
	if currency == "" {
		currency = p.currency
	}
	duration := req.ListingDuration
	if duration == "" {
		duration = p.duration
	}

	offer := &ebay.OfferRequest{
		SKU:                 sku,
		MarketplaceID:       p.marketplace,
		Format:              offerFormat,
		CategoryID:          req.CategoryID,
		AvailableQuantity:   quantity(req),
		ListingDescription:  description(req),
		ListingDuration:     duration,
		MerchantLocationKey: req.MerchantLocationKey,
		PricingSummary: ebay.PricingSummary{
			Price: ebay.Amount{Value: strings.TrimSpace(req.Price), Currency: currency},
		},
	}
	if req.HasAllPolicies() {
		offer.ListingPolicies = &ebay.ListingPolicies{
			PaymentPolicyID:     req.PaymentPolicyID,
			ReturnPolicyID:      req.ReturnPolicyID,
			FulfillmentPolicyID: req.FulfillmentPolicyID,
		}
	}
	return offer
}

// publishBlocker names the first missing publish prerequisite, or "".
func publishBlocker(req *domain.ListingRequest) string {
	required := []struct {
		field string
		value string
	}{
		{"categoryId", req.CategoryID},
		{"merchantLocationKey", req.MerchantLocationKey},
		{"paymentPolicyId", req.PaymentPolicyID},
		{"returnPolicyId", req.ReturnPolicyID},
		{"fulfillmentPolicyId", req.FulfillmentPolicyID},
	}
	for _, r := range required {
		if r.value == "" {
			return "missing " + r.field
		}
	}
	return ""
}

func description(req *domain.ListingRequest) string {
	if strings.TrimSpace(req.Description) != "" {
		return req.Description
	}
	return req.Title
}

func quantity(req *domain.ListingRequest) int {
	if req.Quantity <= 0 {
		return 1
	}
	return req.Quantity
}

// newSKU returns <prefix>-<unix millis>-<8 hex>.
func (p *Pipeline) newSKU() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return p.skuPrefix + "-" + strconv.FormatInt(p.nowFunc().UnixMilli(), 10) + "-" + suffix
}

// SKUPattern matches SKUs generated with the default prefix.
var SKUPattern = regexp.MustCompile(`^SNIP-\d{13}-[0-9a-f]{8}$`)
