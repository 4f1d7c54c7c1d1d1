package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/ebay/ebaytest"
	ebaymocks "github.com/donaldgifford/quicklist/internal/ebay/mocks"
	"github.com/donaldgifford/quicklist/internal/pipeline"
	"github.com/donaldgifford/quicklist/internal/pipeline/mocks"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

type staticTokens string

func (s staticTokens) Token(context.Context) (string, error) { return string(s), nil }

type errTokens struct{ err error }

func (e errTokens) Token(context.Context) (string, error) { return "", e.err }

// passthrough leaves policy ids as given.
type passthrough struct{}

func (passthrough) ResolveMissing(_ context.Context, req *domain.ListingRequest) (*domain.ListingRequest, error) {
	out := *req
	return &out, nil
}

type recorder struct {
	mu       sync.Mutex
	listings []domain.LastListing
}

func (r *recorder) SaveLastListing(_ context.Context, l *domain.LastListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings = append(r.listings, *l)
	return nil
}

func (r *recorder) all() []domain.LastListing {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.LastListing(nil), r.listings...)
}

type fixture struct {
	fake     *ebaytest.Fake
	recorder *recorder
	pipeline *pipeline.Pipeline
}

func newFixture(t *testing.T, tokens ebay.TokenProvider, opts ...pipeline.Option) *fixture {
	t.Helper()
	fake, srv := ebaytest.NewServer(t)
	client := ebay.NewSellClient(tokens,
		ebay.WithBaseURL(srv.URL),
		ebay.WithSellHTTPClient(http.DefaultClient),
	)
	resolver := ebay.NewPolicyResolver(client, client, "EBAY_DE")
	rec := &recorder{}
	return &fixture{
		fake:     fake,
		recorder: rec,
		pipeline: pipeline.New(client, resolver, rec, opts...),
	}
}

func countPath(fake *ebaytest.Fake, method, path string) int {
	n := 0
	for _, c := range fake.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func fullRequest(sku string) *domain.ListingRequest {
	return &domain.ListingRequest{
		Product: domain.Product{
			Title:    "Lamy safari fountain pen",
			Price:    "24.90",
			Quantity: 3,
			Images:   []string{"https://img.example/1.jpg"},
		},
		ListingOverrides: domain.ListingOverrides{
			SKU:                 sku,
			CategoryID:          "9355",
			MerchantLocationKey: "warehouse-1",
			PaymentPolicyID:     "pay-2",
			ReturnPolicyID:      "ret-1",
			FulfillmentPolicyID: "ful-1",
		},
	}
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product domain.Product
		want    []string
	}{
		{name: "empty", want: []string{"title", "price"}},
		{name: "blank title", product: domain.Product{Title: "  ", Price: "1"}, want: []string{"title"}},
		{name: "no price", product: domain.Product{Title: "Widget"}, want: []string{"price"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := ebaymocks.NewMockInventoryAPI(t)
			resolver := mocks.NewMockPolicyResolver(t)
			rec := mocks.NewMockListingRecorder(t)
			p := pipeline.New(inv, resolver, rec)

			res, err := p.Create(context.Background(), &domain.ListingRequest{Product: tt.product})
			require.Nil(t, res)

			var ve *pipeline.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.want, ve.Fields)
		})
	}
}

func TestCreate_WidgetExample(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, staticTokens("tok"), pipeline.WithNowFunc(func() time.Time { return now }))

	res, err := f.pipeline.Create(context.Background(), &domain.ListingRequest{
		Product: domain.Product{Title: "Widget", Price: "19.99"},
	})
	require.NoError(t, err)

	assert.Equal(t, pipeline.OutcomePublishSkipped, res.Outcome)
	assert.Equal(t, "missing categoryId", res.Reason)
	assert.NotEmpty(t, res.OfferID)
	assert.Regexp(t, pipeline.SKUPattern, res.SKU)
	assert.Contains(t, res.SKU, fmt.Sprintf("-%d-", now.UnixMilli()))

	item, ok := f.fake.InventoryItem(res.SKU)
	require.True(t, ok)
	assert.JSONEq(t, `{
		"product": {"title": "Widget", "description": "Widget", "imageUrls": [], "aspects": {}},
		"availability": {"shipToLocationAvailability": {"quantity": 1}}
	}`, string(item))

	assert.Equal(t, 0, f.fake.CallCount(http.MethodPost, "/sell/inventory/v1/offer/"+res.OfferID+"/publish"))

	var offer map[string]any
	for _, c := range f.fake.Calls() {
		if c.Method == http.MethodPost && c.Path == "/sell/inventory/v1/offer" {
			require.NoError(t, json.Unmarshal(c.Body, &offer))
		}
	}
	require.NotNil(t, offer)
	assert.Equal(t, "EBAY_DE", offer["marketplaceId"])
	assert.Equal(t, "FIXED_PRICE", offer["format"])
	assert.Equal(t, "GTC", offer["listingDuration"])
	assert.Equal(t, map[string]any{"value": "19.99", "currency": "EUR"},
		offer["pricingSummary"].(map[string]any)["price"])
	assert.Equal(t, map[string]any{
		"paymentPolicyId":     "pay-1",
		"returnPolicyId":      "ret-1",
		"fulfillmentPolicyId": "ful-1",
	}, offer["listingPolicies"], "resolved policies are sent")
	assert.NotContains(t, offer, "categoryId")
	assert.NotContains(t, offer, "merchantLocationKey")

	history := f.recorder.all()
	require.Len(t, history, 1)
	assert.Equal(t, res.SKU, history[0].SKU)
	assert.Equal(t, res.OfferID, history[0].OfferID)
	assert.Equal(t, "Widget", history[0].Title)
	assert.False(t, history[0].Published)
	assert.Equal(t, now, history[0].CreatedAt)
}

func TestCreate_Done(t *testing.T) {
	t.Parallel()

	f := newFixture(t, staticTokens("tok"))
	res, err := f.pipeline.Create(context.Background(), fullRequest("LAMY-1"))
	require.NoError(t, err)

	assert.Equal(t, pipeline.OutcomeDone, res.Outcome)
	assert.True(t, res.Published())
	assert.Equal(t, "LAMY-1", res.SKU)
	require.NotNil(t, res.Publish)
	assert.Equal(t, "11"+res.OfferID, res.ListingID)
	assert.True(t, f.fake.Published(res.OfferID))

	assert.Equal(t, 0, f.fake.CallCount(http.MethodGet, "/sell/account/v1/"),
		"no policy lookups when all ids are given")

	history := f.recorder.all()
	require.Len(t, history, 1)
	assert.True(t, history[0].Published)
}

func TestCreate_SameSKUTwice(t *testing.T) {
	t.Parallel()

	f := newFixture(t, staticTokens("tok"))
	ctx := context.Background()

	first, err := f.pipeline.Create(ctx, fullRequest("DUP-1"))
	require.NoError(t, err)
	require.Equal(t, pipeline.OutcomeDone, first.Outcome)

	second, err := f.pipeline.Create(ctx, fullRequest("DUP-1"))
	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomeStepFailed, second.Outcome)
	assert.Equal(t, pipeline.StepCreateOffer, second.Step)
	assert.Equal(t, http.StatusBadRequest, second.Status)

	body, err := json.Marshal(second.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "25002")

	assert.Equal(t, 2, f.fake.CallCount(http.MethodPut, "/sell/inventory/v1/inventory_item/DUP-1"),
		"inventory upsert is repeated")
	assert.Len(t, f.recorder.all(), 1, "failed runs are not recorded")
}

func TestCreate_StepFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		operation   string
		status      int
		wantStep    pipeline.Step
		wantOffer   bool
		wantOffers  int
		wantPublish int
	}{
		{operation: "create_inventory_item", status: 500, wantStep: pipeline.StepCreateInventoryItem},
		{operation: "create_offer", status: 400, wantStep: pipeline.StepCreateOffer, wantOffers: 1},
		{
			operation:   "publish_offer",
			status:      409,
			wantStep:    pipeline.StepPublishOffer,
			wantOffer:   true,
			wantOffers:  1,
			wantPublish: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, staticTokens("tok"))
			f.fake.FailOperation(tt.operation, tt.status)

			res, err := f.pipeline.Create(context.Background(), fullRequest("FAIL-1"))
			require.NoError(t, err)

			assert.Equal(t, pipeline.OutcomeStepFailed, res.Outcome)
			assert.Equal(t, tt.wantStep, res.Step)
			assert.Equal(t, tt.status, res.Status)
			assert.NotNil(t, res.Body)
			assert.Equal(t, tt.wantOffer, res.OfferID != "")

			assert.Equal(t, tt.wantOffers, countPath(f.fake, http.MethodPost, "/sell/inventory/v1/offer"))
			assert.Equal(t, tt.wantPublish, f.fake.CallCount(http.MethodPost, "/sell/inventory/v1/offer/5"))
			assert.Empty(t, f.recorder.all())
		})
	}
}

func TestCreate_PresenceMatrix(t *testing.T) {
	t.Parallel()

	fields := []string{"categoryId", "merchantLocationKey", "paymentPolicyId", "returnPolicyId", "fulfillmentPolicyId"}

	for mask := range 1 << len(fields) {
		present := func(i int) bool { return mask&(1<<i) != 0 }
		value := func(i int, v string) string {
			if present(i) {
				return v
			}
			return ""
		}

		t.Run(fmt.Sprintf("mask_%02d", mask), func(t *testing.T) {
			t.Parallel()

			req := &domain.ListingRequest{
				Product: domain.Product{Title: "Widget", Price: "5"},
				ListingOverrides: domain.ListingOverrides{
					SKU:                 "M-1",
					CategoryID:          value(0, "cat"),
					MerchantLocationKey: value(1, "loc"),
					PaymentPolicyID:     value(2, "pay"),
					ReturnPolicyID:      value(3, "ret"),
					FulfillmentPolicyID: value(4, "ful"),
				},
			}

			wantReason := ""
			for i, name := range fields {
				if !present(i) {
					wantReason = "missing " + name
					break
				}
			}
			allPolicies := present(2) && present(3) && present(4)

			inv := ebaymocks.NewMockInventoryAPI(t)
			inv.EXPECT().UpsertInventoryItem(mock.Anything, "M-1", mock.Anything).Return(nil).Once()
			inv.EXPECT().CreateOffer(mock.Anything, mock.MatchedBy(func(o *ebay.OfferRequest) bool {
				return (o.ListingPolicies != nil) == allPolicies &&
					o.CategoryID == req.CategoryID &&
					o.MerchantLocationKey == req.MerchantLocationKey
			})).Return(&domain.Offer{OfferID: "O-1", SKU: "M-1"}, nil).Once()
			if wantReason == "" {
				inv.EXPECT().PublishOffer(mock.Anything, "O-1", "EBAY_DE").
					Return(&ebay.PublishResult{ListingID: "L-1"}, nil).Once()
			}

			p := pipeline.New(inv, passthrough{}, nil)
			res, err := p.Create(context.Background(), req)
			require.NoError(t, err)

			if wantReason == "" {
				assert.Equal(t, pipeline.OutcomeDone, res.Outcome)
				assert.Equal(t, "L-1", res.ListingID)
				return
			}
			assert.Equal(t, pipeline.OutcomePublishSkipped, res.Outcome)
			assert.Equal(t, wantReason, res.Reason)
			assert.Equal(t, "O-1", res.OfferID)
		})
	}
}

func TestCreate_Defaults(t *testing.T) {
	t.Parallel()

	inv := ebaymocks.NewMockInventoryAPI(t)
	inv.EXPECT().UpsertInventoryItem(mock.Anything, "D-1", mock.Anything).
		Run(func(_ context.Context, _ string, item *ebay.InventoryItem) {
			assert.Equal(t, "Desc", item.Product.Description)
			assert.Equal(t, 1, item.Availability.ShipToLocationAvailability.Quantity)
		}).
		Return(nil).Once()
	inv.EXPECT().CreateOffer(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o *ebay.OfferRequest) {
			assert.Equal(t, "EBAY_GB", o.MarketplaceID)
			assert.Equal(t, "GBP", o.PricingSummary.Price.Currency)
			assert.Equal(t, "DAYS_30", o.ListingDuration)
			assert.Equal(t, 1, o.AvailableQuantity)
		}).
		Return(&domain.Offer{OfferID: "O-2"}, nil).Once()

	p := pipeline.New(inv, passthrough{}, nil,
		pipeline.WithMarketplace("EBAY_GB"),
		pipeline.WithDefaultCurrency("GBP"),
		pipeline.WithDefaultDuration("DAYS_30"),
	)
	res, err := p.Create(context.Background(), &domain.ListingRequest{
		Product:          domain.Product{Title: "T", Description: "Desc", Price: "2"},
		ListingOverrides: domain.ListingOverrides{SKU: "D-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomePublishSkipped, res.Outcome)
}

func TestCreate_RequestCurrencyWins(t *testing.T) {
	t.Parallel()

	inv := ebaymocks.NewMockInventoryAPI(t)
	inv.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	inv.EXPECT().CreateOffer(mock.Anything, mock.MatchedBy(func(o *ebay.OfferRequest) bool {
		return o.PricingSummary.Price.Currency == "CHF"
	})).Return(&domain.Offer{OfferID: "O-3"}, nil).Once()

	p := pipeline.New(inv, passthrough{}, nil)
	_, err := p.Create(context.Background(), &domain.ListingRequest{
		Product: domain.Product{Title: "T", Price: "2", Currency: "CHF"},
	})
	require.NoError(t, err)
}

func TestCreate_SKUPrefix(t *testing.T) {
	t.Parallel()

	f := newFixture(t, staticTokens("tok"), pipeline.WithSKUPrefix("QL"))
	res, err := f.pipeline.Create(context.Background(), &domain.ListingRequest{
		Product: domain.Product{Title: "Widget", Price: "1"},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^QL-\d{13}-[0-9a-f]{8}$`, res.SKU)
}

func TestCreate_AuthRequired(t *testing.T) {
	t.Parallel()

	f := newFixture(t, errTokens{err: ebay.ErrAuthRequired})
	res, err := f.pipeline.Create(context.Background(), fullRequest("A-1"))
	require.Nil(t, res)
	require.ErrorIs(t, err, ebay.ErrAuthRequired)
	assert.Empty(t, f.fake.Calls())
}

func TestCreate_TransportFailure(t *testing.T) {
	t.Parallel()

	inv := ebaymocks.NewMockInventoryAPI(t)
	inv.EXPECT().UpsertInventoryItem(mock.Anything, "T-1", mock.Anything).
		Return(errors.New("executing create_inventory_item request: connection refused")).Once()

	p := pipeline.New(inv, passthrough{}, nil)
	res, err := p.Create(context.Background(), fullRequest("T-1"))
	require.NoError(t, err)

	assert.Equal(t, pipeline.OutcomeStepFailed, res.Outcome)
	assert.Equal(t, pipeline.StepCreateInventoryItem, res.Step)
	assert.Equal(t, 0, res.Status)
	assert.Equal(t, map[string]any{"error": "executing create_inventory_item request: connection refused"}, res.Body)
}

func TestCreate_ContextCanceled(t *testing.T) {
	t.Parallel()

	inv := ebaymocks.NewMockInventoryAPI(t)
	inv.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("executing request: %w", context.Canceled)).Once()

	p := pipeline.New(inv, passthrough{}, nil)
	_, err := p.Create(context.Background(), fullRequest("C-1"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCreate_ResolverError(t *testing.T) {
	t.Parallel()

	inv := ebaymocks.NewMockInventoryAPI(t)
	inv.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	resolver := mocks.NewMockPolicyResolver(t)
	resolver.EXPECT().ResolveMissing(mock.Anything, mock.Anything).
		Return(nil, ebay.ErrAuthRequired).Once()

	p := pipeline.New(inv, resolver, nil)
	_, err := p.Create(context.Background(), &domain.ListingRequest{
		Product: domain.Product{Title: "T", Price: "1"},
	})
	require.ErrorIs(t, err, ebay.ErrAuthRequired)
}

func TestCreate_RecorderErrorIsNotFatal(t *testing.T) {
	t.Parallel()

	inv := ebaymocks.NewMockInventoryAPI(t)
	inv.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	inv.EXPECT().CreateOffer(mock.Anything, mock.Anything).Return(&domain.Offer{OfferID: "O-9"}, nil).Once()
	inv.EXPECT().PublishOffer(mock.Anything, "O-9", "EBAY_DE").Return(&ebay.PublishResult{ListingID: "L"}, nil).Once()

	rec := mocks.NewMockListingRecorder(t)
	rec.EXPECT().SaveLastListing(mock.Anything, mock.MatchedBy(func(l *domain.LastListing) bool {
		return l.SKU == "R-1" && l.OfferID == "O-9" && l.Published
	})).Return(errors.New("disk full")).Once()

	p := pipeline.New(inv, passthrough{}, rec)
	res, err := p.Create(context.Background(), fullRequest("R-1"))
	require.NoError(t, err)
	assert.Equal(t, pipeline.OutcomeDone, res.Outcome)
}

func TestResult_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  *pipeline.Result
		want string
	}{
		{
			name: "done",
			res:  pipeline.Done("S", "O", &ebay.PublishResult{ListingID: "L"}),
			want: `{"outcome":"done","step":"done","sku":"S","offerId":"O","listingId":"L","publishResult":{"listingId":"L"}}`,
		},
		{
			name: "skipped",
			res:  pipeline.Skipped("S", "O", "missing categoryId"),
			want: `{"outcome":"publish_skipped","step":"done","sku":"S","offerId":"O","reason":"missing categoryId"}`,
		},
		{
			name: "failed",
			res:  pipeline.Failed(pipeline.StepCreateOffer, "S", "", 400, map[string]any{"errors": []any{}}),
			want: `{"outcome":"step_failed","step":"create_offer","sku":"S","status":400,"body":{"errors":[]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := json.Marshal(tt.res)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &pipeline.ValidationError{Fields: []string{"title", "price"}}
	assert.Equal(t, "missing required fields: title, price", err.Error())
}
