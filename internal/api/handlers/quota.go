package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/quicklist/internal/ebay"
)

// UpstreamQuota reads eBay's own view of the Sell Inventory quota.
type UpstreamQuota interface {
	GetInventoryQuota(ctx context.Context) ([]ebay.QuotaState, error)
}

// QuotaHandler provides the Sell API budget status endpoint.
type QuotaHandler struct {
	rl       *ebay.RateLimiter
	upstream UpstreamQuota
}

// NewQuotaHandler creates a new QuotaHandler. upstream may be nil.
func NewQuotaHandler(rl *ebay.RateLimiter, upstream UpstreamQuota) *QuotaHandler {
	return &QuotaHandler{rl: rl, upstream: upstream}
}

// QuotaInput selects whether eBay is asked for its own counters.
type QuotaInput struct {
	Upstream bool `query:"upstream" doc:"Also fetch eBay's rate limit counters from the Analytics API"`
}

// UpstreamQuotaEntry is eBay's quota for one Sell Inventory resource.
type UpstreamQuotaEntry struct {
	Resource   string    `json:"resource"    example:"sell.inventory"`
	Count      int64     `json:"count"       example:"110"`
	Limit      int64     `json:"limit"       example:"2000000"`
	Remaining  int64     `json:"remaining"   example:"1999890"`
	ResetAt    time.Time `json:"reset_at"    example:"2026-06-17T00:00:00Z"`
	WindowSecs int64     `json:"window_secs" example:"86400"`
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64                `json:"daily_limit"        example:"5000"                 doc:"Configured daily Sell API call limit; 0 means unlimited"`
		DailyUsed  int64                `json:"daily_used"         example:"142"                  doc:"Calls used in the current 24-hour window"`
		Remaining  int64                `json:"remaining"          example:"4858"                 doc:"Calls remaining in the current window"`
		ResetAt    time.Time            `json:"reset_at"           example:"2026-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
		Upstream   []UpstreamQuotaEntry `json:"upstream,omitempty"                                doc:"eBay's counters, present when upstream=true"`
	}
}

// GetQuota returns the current Sell API budget.
func (h *QuotaHandler) GetQuota(ctx context.Context, input *QuotaInput) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl != nil {
		q := h.rl.Snapshot()
		resp.Body.DailyLimit = q.DailyLimit
		resp.Body.DailyUsed = q.DailyUsed
		resp.Body.Remaining = q.Remaining
		resp.Body.ResetAt = q.ResetAt
	}

	if !input.Upstream {
		return resp, nil
	}
	if h.upstream == nil {
		return nil, huma.Error501NotImplemented("upstream quota lookup is not configured")
	}

	states, err := h.upstream.GetInventoryQuota(ctx)
	if err != nil {
		return nil, upstreamError("fetching eBay rate limits", err)
	}
	resp.Body.Upstream = make([]UpstreamQuotaEntry, 0, len(states))
	for _, s := range states {
		resp.Body.Upstream = append(resp.Body.Upstream, UpstreamQuotaEntry{
			Resource:   s.Resource,
			Count:      s.Count,
			Limit:      s.Limit,
			Remaining:  s.Remaining,
			ResetAt:    s.ResetAt,
			WindowSecs: int64(s.TimeWindow / time.Second),
		})
	}

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the current daily Sell API call usage, remaining quota, and window reset time. " +
			"With upstream=true the eBay Analytics rate limits are included.",
		Tags: []string{"ebay"},
	}, h.GetQuota)
}
