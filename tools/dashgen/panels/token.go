package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TokenExpiry shows the time left on the stored access token.
func TokenExpiry() *stat.PanelBuilder {
	return single("Access Token Expires In",
		"Seconds until the stored access token expires; negative means expired",
		jobSel("quicklist_token_expiry_timestamp_seconds", "")+" - time()").
		Unit("s").
		Thresholds(ThresholdsRedGreen(300)).
		ColorMode(common.BigValueColorModeBackground)
}

// TokenRefreshes shows refresh grants per hour by result.
func TokenRefreshes() *timeseries.PanelBuilder {
	return hourlyByResult("Token Refreshes", "Refresh grant attempts per hour by result",
		"quicklist_token_refreshes_total")
}

// KeepAliveRuns shows keep-alive job results per hour.
func KeepAliveRuns() *timeseries.PanelBuilder {
	return hourlyByResult("Keep-alive Runs", "Scheduled credential checks per hour by result",
		"quicklist_keepalive_runs_total")
}

func hourlyByResult(title, description, counter string) *timeseries.PanelBuilder {
	return series(title, description, TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(%s[1h])) by (result)`, jobSel(counter, "")),
			"{{result}}", "A",
		)).
		DrawStyle(common.GraphDrawStyleBars)
}
