package rules

// RecordingRules returns the 5m rates shared by the dashboard and the alerts.
func RecordingRules() PrometheusRule {
	return newResource("quicklist-recording-rules", RuleGroup{
		Name: "quicklist-recording",
		Rules: []Rule{
			record("quicklist:http_requests:rate5m",
				`sum(rate(quicklist_http_requests_total[5m]))`),
			record("quicklist:http_errors:rate5m",
				`sum(rate(quicklist_http_requests_total{status=~"5.."}[5m]))`),
			record("quicklist:listings:rate5m",
				`sum(rate(quicklist_listings_total[5m])) by (outcome)`),
			record("quicklist:listing_step_failures:rate5m",
				`sum(rate(quicklist_listing_step_failures_total[5m])) by (step)`),
			record("quicklist:ebay_api_calls:rate5m",
				`sum(rate(quicklist_ebay_api_calls_total[5m])) by (operation)`),
		},
	})
}
