package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

const listingBucket = "quicklist_listing_duration_seconds_bucket"

// ListingOutcomes shows listing requests per minute by outcome.
func ListingOutcomes() *timeseries.PanelBuilder {
	return series("Listings / min",
		"Listing requests per minute by outcome (done, publish_skipped, step_failed, invalid, error)", ThirdWidth).
		WithTarget(PromQuery(`quicklist:listings:rate5m * 60`, "{{outcome}}", "A")).
		Legend(TableLegend("sum")).
		DrawStyle(common.GraphDrawStyleBars)
}

// StepFailures shows pipeline steps rejected by eBay.
func StepFailures() *timeseries.PanelBuilder {
	return series("Step Failures", "Pipeline steps rejected by eBay, per second", ThirdWidth).
		WithTarget(PromQuery(`quicklist:listing_step_failures:rate5m`, "{{step}}", "A"))
}

// ListingDuration shows end-to-end pipeline latency.
func ListingDuration() *timeseries.PanelBuilder {
	return series("Listing Duration", "Time from request to final step, p50 and p95", ThirdWidth).
		WithTarget(PromQuery(quantile(0.50, listingBucket, ""), "p50", "A")).
		WithTarget(PromQuery(quantile(0.95, listingBucket, ""), "p95", "B")).
		Unit("s")
}

// PublishedToday shows listings published in the last 24 hours.
func PublishedToday() *stat.PanelBuilder {
	return single("Published (24h)", "Listings that reached the done outcome in the last 24 hours",
		fmt.Sprintf(`sum(increase(%s[24h]))`, jobSel("quicklist_listings_total", `outcome="done"`))).
		GraphMode(common.BigValueGraphModeArea)
}
