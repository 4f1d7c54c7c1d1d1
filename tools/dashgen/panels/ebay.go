package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate shows Sell API calls per second by operation.
func APICallsRate() *timeseries.PanelBuilder {
	return series("API Calls Rate", "eBay Sell API calls per second by operation", ThirdWidth).
		WithTarget(PromQuery(`quicklist:ebay_api_calls:rate5m`, "{{operation}}", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max"))
}

// APILatency shows p95 Sell API latency by operation.
func APILatency() *timeseries.PanelBuilder {
	return series("API Latency (p95)", "95th percentile eBay Sell API call duration by operation", ThirdWidth).
		WithTarget(PromQuery(
			quantile(0.95, "quicklist_ebay_api_duration_seconds_bucket", "operation"),
			"{{operation}}", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(2, 5))
}

// DailyUsage shows the rolling Sell API call count against the limit.
func DailyUsage() *timeseries.PanelBuilder {
	return series("Daily Usage vs Limit",
		fmt.Sprintf("Rolling 24h Sell API call count (default limit: %d)", EbayDailyLimit), ThirdWidth).
		WithTarget(PromQuery(jobSel("quicklist_ebay_daily_usage", ""), "usage", "A")).
		Thresholds(ThresholdsGreenYellowRed(float64(EbayDailyLimit)*0.8, float64(EbayDailyLimit))).
		ColorScheme(thresholdColors())
}

// LimitHits shows calls refused by the daily budget in the last day.
func LimitHits() *stat.PanelBuilder {
	return single("Limit Hits (24h)", "Calls refused because the daily Sell API budget was spent",
		fmt.Sprintf(`increase(%s[24h])`, jobSel("quicklist_ebay_daily_limit_hits_total", ""))).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
