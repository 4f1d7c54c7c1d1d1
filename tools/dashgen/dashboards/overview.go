// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/quicklist/tools/dashgen/panels"
)

// UID is the dashboard uid, also used as the output file name.
const UID = "quicklist-overview"

// BuildOverview constructs the quicklist overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Quicklist Overview").
		Uid(UID).
		Tags([]string{"quicklist", "ebay"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Listings.
	b.WithRow(dashboard.NewRowBuilder("Listings").
		WithPanel(panels.PublishedToday()).
		WithPanel(panels.ListingOutcomes()).
		WithPanel(panels.StepFailures()).
		WithPanel(panels.ListingDuration()))

	// Row 4: eBay API.
	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.LimitHits()).
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.DailyUsage()))

	// Row 5: Credential.
	b.WithRow(dashboard.NewRowBuilder("Credential").
		WithPanel(panels.TokenExpiry()).
		WithPanel(panels.TokenRefreshes()).
		WithPanel(panels.KeepAliveRuns()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
