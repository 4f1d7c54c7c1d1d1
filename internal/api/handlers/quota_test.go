package handlers_test

import (
	"encoding/json"
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
)

func TestGetQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rl           *ebay.RateLimiter
		preCalls     int
		wantLimit    int64
		wantUsed     int64
		wantRemain   int64
		wantResetNil bool
	}{
		{
			name:         "nil rate limiter returns zeroes",
			wantResetNil: true,
		},
		{
			name:       "fresh rate limiter",
			rl:         ebay.NewRateLimiter(100, 10, 5000),
			wantLimit:  5000,
			wantRemain: 5000,
		},
		{
			name:       "rate limiter with usage",
			rl:         ebay.NewRateLimiter(100, 10, 100),
			preCalls:   3,
			wantLimit:  100,
			wantUsed:   3,
			wantRemain: 97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.rl != nil {
				for range tt.preCalls {
					require.NoError(t, tt.rl.Wait(t.Context()))
				}
			}

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(tt.rl, nil))

			resp := api.Get("/api/quota")
			require.Equal(t, http.StatusOK, resp.Code)

			var body struct {
				DailyLimit int64     `json:"daily_limit"`
				DailyUsed  int64     `json:"daily_used"`
				Remaining  int64     `json:"remaining"`
				ResetAt    time.Time `json:"reset_at"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

			assert.Equal(t, tt.wantLimit, body.DailyLimit)
			assert.Equal(t, tt.wantUsed, body.DailyUsed)
			assert.Equal(t, tt.wantRemain, body.Remaining)
			if tt.wantResetNil {
				assert.True(t, body.ResetAt.IsZero())
			} else {
				assert.True(t, body.ResetAt.After(time.Now()))
			}
		})
	}
}

func TestGetQuota_Upstream(t *testing.T) {
	t.Parallel()

	reset := time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setup      func(m *mocks.MockUpstreamQuota)
		nilClient  bool
		wantStatus int
		wantLen    int
	}{
		{
			name: "includes eBay counters",
			setup: func(m *mocks.MockUpstreamQuota) {
				m.EXPECT().GetInventoryQuota(mock.Anything).Return([]ebay.QuotaState{{
					Resource:   "sell.inventory",
					Count:      110,
					Limit:      2000000,
					Remaining:  1999890,
					ResetAt:    reset,
					TimeWindow: 24 * time.Hour,
				}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantLen:    1,
		},
		{
			name: "expired authorization",
			setup: func(m *mocks.MockUpstreamQuota) {
				m.EXPECT().GetInventoryQuota(mock.Anything).Return(nil, ebay.ErrAuthRequired).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "eBay rejects the call",
			setup: func(m *mocks.MockUpstreamQuota) {
				m.EXPECT().GetInventoryQuota(mock.Anything).Return(nil, &ebay.UpstreamError{
					Operation:  "get_user_rate_limits",
					StatusCode: http.StatusForbidden,
				}).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "no analytics client",
			nilClient:  true,
			wantStatus: http.StatusNotImplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var upstream handlers.UpstreamQuota
			if !tt.nilClient {
				m := mocks.NewMockUpstreamQuota(t)
				tt.setup(m)
				upstream = m
			}

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(ebay.NewRateLimiter(100, 10, 5000), upstream))

			resp := api.Get("/api/quota?upstream=true")
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body handlers.QuotaOutput
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body.Body))
			require.Len(t, body.Body.Upstream, tt.wantLen)
			got := body.Body.Upstream[0]
			assert.Equal(t, "sell.inventory", got.Resource)
			assert.Equal(t, int64(1999890), got.Remaining)
			assert.Equal(t, int64(86400), got.WindowSecs)
			assert.True(t, reset.Equal(got.ResetAt))
			assert.Equal(t, int64(5000), body.Body.DailyLimit)
		})
	}
}

func TestGetQuota_WithoutUpstreamSkipsAnalytics(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockUpstreamQuota(t)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(nil, m))

	resp := api.Get("/api/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "upstream")
	m.AssertNotCalled(t, "GetInventoryQuota", mock.Anything)
}
