package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthStat shows the /health probe gauge.
func HealthStat() *stat.PanelBuilder {
	return upDown("Health", "Health check status (1 = ok, 0 = failing)", `quicklist_health_up`)
}

// ReadyzStat shows the /readyz probe gauge.
func ReadyzStat() *stat.PanelBuilder {
	return upDown("Readyz", "Readiness check status (1 = store reachable, 0 = not ready)", `quicklist_readyz_up`)
}

// QuotaGauge shows Sell API daily usage as a percentage of the default limit.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("eBay Quota %").
		Description("Daily Sell API usage as percentage of the default limit").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf("quicklist_ebay_daily_usage / %d * 100", EbayDailyLimit), "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(thresholdColors())
}

// UptimeStat shows time since process start.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start", `time() - `+jobSel("process_start_time_seconds", "")).
		Unit("s")
}
