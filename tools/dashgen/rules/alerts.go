package rules

import "fmt"

// quotaWarnRatio is the share of the daily Sell API budget that raises a
// warning.
const quotaWarnRatio = 0.8

// AlertRules returns the operational alerts for quicklist. dailyLimit is the
// configured Sell API call budget.
func AlertRules(dailyLimit int) PrometheusRule {
	warnAt := int(float64(dailyLimit) * quotaWarnRatio)

	return newResource("quicklist-alerts", RuleGroup{
		Name: "quicklist-alerts",
		Rules: []Rule{
			alert("QuicklistDown",
				`absent(up{job="quicklist"})`, "2m", "critical",
				"quicklist is down",
				"The quicklist job has been absent for more than 2 minutes."),
			alert("QuicklistReadinessDown",
				`quicklist_readyz_up == 0`, "2m", "critical",
				"quicklist readiness check is failing",
				"The store has been unreachable for more than 2 minutes."),
			alert("QuicklistHighErrorRate",
				`quicklist:http_errors:rate5m / quicklist:http_requests:rate5m > 0.05`, "5m", "warning",
				"High HTTP error rate on quicklist",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("QuicklistStepFailures",
				`sum(quicklist:listing_step_failures:rate5m) > 0.05`, "10m", "warning",
				"eBay is rejecting listing steps",
				"Inventory, offer or publish calls have been failing for more than 10 minutes."),
			alert("QuicklistTokenExpired",
				`quicklist_token_expiry_timestamp_seconds > 0 and quicklist_token_expiry_timestamp_seconds < time()`,
				"15m", "warning",
				"The stored eBay access token has expired",
				"No refresh has succeeded for 15 minutes. The seller may need to re-authorize at /auth."),
			alert("QuicklistKeepAliveFailing",
				`increase(quicklist_keepalive_runs_total{result=~"error|no_credential"}[1h]) > 0`, "0m", "warning",
				"Token keep-alive is failing",
				"The scheduled credential refresh failed or found no credential in the last hour."),
			alert("QuicklistEbayQuotaHigh",
				fmt.Sprintf(`quicklist_ebay_daily_usage > %d`, warnAt), "5m", "warning",
				"Sell API daily usage is above 80% of the budget",
				fmt.Sprintf("Daily Sell API usage has exceeded %d of %d calls.", warnAt, dailyLimit)),
			alert("QuicklistEbayLimitReached",
				`increase(quicklist_ebay_daily_limit_hits_total[5m]) > 0`, "0m", "critical",
				"Sell API daily limit has been reached",
				"Listing creation is refused until the daily window resets."),
		},
	})
}
