package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/quicklist/internal/api/handlers"
	"github.com/donaldgifford/quicklist/internal/api/handlers/mocks"
	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/ebay/ebaytest"
	"github.com/donaldgifford/quicklist/internal/pipeline"
	"github.com/donaldgifford/quicklist/internal/store"
	storeMocks "github.com/donaldgifford/quicklist/internal/store/mocks"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

func TestCreateListing_AgainstFake(t *testing.T) {
	t.Parallel()

	fake, srv := ebaytest.NewServer(t)
	client := ebay.NewSellClient(staticTokens("tok"),
		ebay.WithBaseURL(srv.URL),
		ebay.WithSellHTTPClient(srv.Client()),
	)
	p := pipeline.New(client, ebay.NewPolicyResolver(client, client, "EBAY_DE"), nil,
		pipeline.WithLogger(quietLogger()))

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(p, nil))

	resp := api.Post("/api/listings/create", map[string]any{
		"title":    "Widget",
		"price":    "19.99",
		"quantity": 2,
		"url":      "https://www.amazon.de/dp/B000000000",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"outcome":"publish_skipped"`)
	assert.Contains(t, resp.Body.String(), `"reason":"missing categoryId"`)

	resp = api.Post("/api/listings/create", map[string]any{
		"title":               "Lamy safari",
		"price":               "24.90",
		"sku":                 "LAMY-1",
		"categoryId":          "9355",
		"merchantLocationKey": "warehouse-1",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"outcome":"done"`)
	assert.Contains(t, resp.Body.String(), `"listingId"`)

	resp = api.Post("/api/listings/create", map[string]any{
		"title":               "Lamy safari",
		"price":               "24.90",
		"sku":                 "LAMY-1",
		"categoryId":          "9355",
		"merchantLocationKey": "warehouse-1",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"outcome":"step_failed"`)
	assert.Contains(t, resp.Body.String(), `"step":"create_offer"`)

	assert.Equal(t, 2, fake.CallCount(http.MethodPut, "/sell/inventory/v1/inventory_item/LAMY-1"))
}

func TestCreateListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setup      func(m *mocks.MockListingCreator)
		wantStatus int
		wantBody   string
	}{
		{
			name: "validation error",
			body: map[string]any{"title": "Widget"},
			setup: func(m *mocks.MockListingCreator) {
				m.EXPECT().Create(mock.Anything, mock.Anything).
					Return(nil, &pipeline.ValidationError{Fields: []string{"price"}}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "body.price",
		},
		{
			name: "auth required",
			body: map[string]any{"title": "Widget", "price": "1"},
			setup: func(m *mocks.MockListingCreator) {
				m.EXPECT().Create(mock.Anything, mock.Anything).
					Return(nil, ebay.ErrAuthRequired).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "step failed",
			body: map[string]any{"title": "Widget", "price": "1"},
			setup: func(m *mocks.MockListingCreator) {
				m.EXPECT().Create(mock.Anything, mock.Anything).
					Return(pipeline.Failed(pipeline.StepCreateInventoryItem, "S", "", 500, nil), nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"step":"create_inventory_item"`,
		},
		{
			name: "overrides reach the pipeline",
			body: map[string]any{"title": "Widget", "price": "1", "paymentPolicyId": "pay-9", "listingDuration": "DAYS_7"},
			setup: func(m *mocks.MockListingCreator) {
				m.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.ListingRequest) bool {
					return r.Title == "Widget" && r.PaymentPolicyID == "pay-9" && r.ListingDuration == "DAYS_7"
				})).Return(pipeline.Skipped("S", "O", "missing categoryId"), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewMockListingCreator(t)
			tt.setup(creator)

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(creator, nil))

			resp := api.Post("/api/listings/create", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestListListings(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []domain.LastListing{{SKU: "S-1", OfferID: "O-1", Title: "Widget", Published: true, CreatedAt: created}}

	tests := []struct {
		name       string
		path       string
		match      func(q *store.ListingQuery) bool
		rows       []domain.LastListing
		err        error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "defaults",
			path:       "/api/listings",
			match:      func(q *store.ListingQuery) bool { return q.Published == nil && q.Limit == 0 },
			rows:       rows,
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":1`, `"limit":50`, `"sku":"S-1"`},
		},
		{
			name: "filters",
			path: "/api/listings?published=false&title=wid&sku=S-1&since=2026-01-01T00:00:00Z&limit=5&offset=10&order_by=title",
			match: func(q *store.ListingQuery) bool {
				return q.Published != nil && !*q.Published &&
					*q.Title == "wid" && *q.SKU == "S-1" &&
					q.Since != nil && q.Since.Year() == 2026 &&
					q.Limit == 5 && q.Offset == 10 && q.OrderBy == "title"
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"listings":[]`, `"limit":5`, `"offset":10`},
		},
		{
			name:       "store error",
			path:       "/api/listings",
			match:      func(*store.ListingQuery) bool { return true },
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().ListListings(mock.Anything, mock.MatchedBy(tt.match)).
				Return(tt.rows, len(tt.rows), tt.err).Once()

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(nil, ms))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
