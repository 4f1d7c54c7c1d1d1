package main

import (
	"errors"

	"github.com/donaldgifford/quicklist/tools/dashgen/panels"
)

// KnownMetrics is the set of metric names exported by quicklist plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"quicklist_http_request_duration_seconds_bucket": true,
	"quicklist_http_requests_total":                  true,

	// Health metrics.
	"quicklist_health_up": true,
	"quicklist_readyz_up": true,

	// Listing pipeline metrics.
	"quicklist_listings_total":                  true,
	"quicklist_listing_step_failures_total":     true,
	"quicklist_listing_duration_seconds_bucket": true,

	// eBay API metrics.
	"quicklist_ebay_api_calls_total":            true,
	"quicklist_ebay_api_duration_seconds_bucket": true,
	"quicklist_ebay_daily_usage":                 true,
	"quicklist_ebay_daily_limit_hits_total":      true,

	// Credential metrics.
	"quicklist_token_refreshes_total":          true,
	"quicklist_token_expiry_timestamp_seconds": true,
	"quicklist_keepalive_runs_total":           true,

	// Recording rules.
	"quicklist:http_requests:rate5m":         true,
	"quicklist:http_errors:rate5m":           true,
	"quicklist:listings:rate5m":              true,
	"quicklist:listing_step_failures:rate5m": true,
	"quicklist:ebay_api_calls:rate5m":        true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
	DailyLimit       int
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
		DailyLimit:       panels.EbayDailyLimit,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	if c.RulesEnabled && c.DailyLimit <= 0 {
		return errors.New("daily limit must be positive")
	}
	return nil
}
