package ebay

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const userRateLimitPath = "/developer/analytics/v1_beta/user_rate_limit/"

// rateLimitResponse is the top-level Analytics API response.
type rateLimitResponse struct {
	RateLimits []rateLimitEntry `json:"rateLimits"`
}

// rateLimitEntry represents one API context in the Analytics response.
type rateLimitEntry struct {
	APIContext string     `json:"apiContext"`
	APIName    string     `json:"apiName"`
	APIVersion string     `json:"apiVersion"`
	Resources  []resource `json:"resources"`
}

// resource represents one API resource with its rate limits.
type resource struct {
	Name  string      `json:"name"`
	Rates []quotaRate `json:"rates"`
}

// quotaRate holds the quota state for a single resource.
type quotaRate struct {
	Count      int64  `json:"count"`
	Limit      int64  `json:"limit"`
	Remaining  int64  `json:"remaining"`
	Reset      string `json:"reset"`
	TimeWindow int64  `json:"timeWindow"`
}

// QuotaState is eBay's view of the call quota for one API resource.
type QuotaState struct {
	Resource   string
	Count      int64
	Limit      int64
	Remaining  int64
	ResetAt    time.Time
	TimeWindow time.Duration
}

// Getter issues an authenticated GET against the eBay API host.
type Getter interface {
	Get(ctx context.Context, operation, path string) (*Response, error)
}

// AnalyticsClient reads the seller's Sell Inventory API quota from the
// Developer Analytics API.
type AnalyticsClient struct {
	api Getter
}

// NewAnalyticsClient creates an AnalyticsClient that calls through api.
func NewAnalyticsClient(api Getter) *AnalyticsClient {
	return &AnalyticsClient{api: api}
}

// GetInventoryQuota returns the quota of every sell.inventory resource.
func (c *AnalyticsClient) GetInventoryQuota(ctx context.Context) ([]QuotaState, error) {
	q := url.Values{}
	q.Set("api_context", "sell")
	q.Set("api_name", "inventory")

	resp, err := c.api.Get(ctx, "get_user_rate_limits", userRateLimitPath+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if err := resp.Err("get_user_rate_limits"); err != nil {
		return nil, err
	}

	var body rateLimitResponse
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}
	return extractInventoryQuota(body)
}

// extractInventoryQuota flattens the sell.inventory resources in resp.
func extractInventoryQuota(resp rateLimitResponse) ([]QuotaState, error) {
	var out []QuotaState
	for _, entry := range resp.RateLimits {
		if !strings.EqualFold(entry.APIContext, "sell") || !strings.EqualFold(entry.APIName, "inventory") {
			continue
		}
		for _, res := range entry.Resources {
			if len(res.Rates) == 0 {
				continue
			}

			r := res.Rates[0]

			resetAt, err := time.Parse(time.RFC3339, r.Reset)
			if err != nil {
				return nil, fmt.Errorf("parsing reset time %q for %s: %w", r.Reset, res.Name, err)
			}

			out = append(out, QuotaState{
				Resource:   res.Name,
				Count:      r.Count,
				Limit:      r.Limit,
				Remaining:  r.Remaining,
				ResetAt:    resetAt,
				TimeWindow: time.Duration(r.TimeWindow) * time.Second,
			})
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no sell inventory rate limits in analytics response")
	}
	return out, nil
}
