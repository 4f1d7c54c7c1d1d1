package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

const httpBucket = "quicklist_http_request_duration_seconds_bucket"

// RequestRate shows HTTP requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return series("Request Rate", "HTTP requests per second", TSWidth).
		WithTarget(PromQuery(`quicklist:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max"))
}

// LatencyPercentiles shows p50, p95 and p99 HTTP latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return series("Latency Percentiles", "HTTP request duration percentiles", TSWidth).
		WithTarget(PromQuery(quantile(0.50, httpBucket, ""), "p50", "A")).
		WithTarget(PromQuery(quantile(0.95, httpBucket, ""), "p95", "B")).
		WithTarget(PromQuery(quantile(0.99, httpBucket, ""), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max"))
}

// ErrorRate shows 5xx responses as a share of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "HTTP 5xx error rate as percentage of total requests", TSWidth).
		WithTarget(PromQuery(
			`quicklist:http_errors:rate5m / quicklist:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(thresholdColors())
}
