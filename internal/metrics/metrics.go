// Package metrics defines Prometheus metrics for quicklist.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quicklist"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "health_up",
		Help:      "1 if the last /health probe succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz probe succeeded.",
	})
)

// eBay API metrics.
var (
	EbayAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_api_calls_total",
		Help:      "Total number of eBay Sell API calls by operation and status code.",
	}, []string{"operation", "status"})

	EbayAPIDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ebay_api_duration_seconds",
		Help:      "Duration of eBay Sell API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	EbayDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ebay_daily_usage",
		Help:      "eBay API calls made in the current 24-hour window.",
	})

	EbayDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_daily_limit_hits_total",
		Help:      "Number of calls rejected because the daily limit was reached.",
	})
)

// Credential metrics.
var (
	TokenRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Refresh grants performed, by result (success, rejected, error).",
	}, []string{"result"})

	TokenExpiryTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "token_expiry_timestamp_seconds",
		Help:      "Unix time at which the stored access token expires.",
	})

	KeepAliveRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "keepalive_runs_total",
		Help:      "Background credential keep-alive runs, by result.",
	}, []string{"result"})
)

// Listing pipeline metrics.
var (
	ListingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_total",
		Help:      "Listing pipeline runs by outcome (done, publish_skipped, step_failed, invalid, error).",
	}, []string{"outcome"})

	ListingStepFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_step_failures_total",
		Help:      "Listing pipeline step failures by step.",
	}, []string{"step"})

	ListingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "listing_duration_seconds",
		Help:      "Duration of listing pipeline runs in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})
)
