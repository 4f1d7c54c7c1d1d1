// Package panels provides Grafana dashboard panel builders for quicklist
// metrics.
package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EbayDailyLimit is the default daily Sell API call budget.
const EbayDailyLimit = 5000

// Job is the scrape job label quicklist is collected under.
const Job = "quicklist"

// Panel sizes on the 24-column grid.
const (
	StatWidth  = 6
	StatHeight = 4

	TSWidth  = 12
	TSHeight = 8

	ThirdWidth = 8
	FullWidth  = 24
)

// DSRef points at the ${datasource} template variable.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery builds a Prometheus target.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// jobSel returns a selector for metric scoped to the quicklist job. extra is
// appended inside the braces.
func jobSel(metric, extra string) string {
	if extra != "" {
		return fmt.Sprintf(`%s{job=%q,%s}`, metric, Job, extra)
	}
	return fmt.Sprintf(`%s{job=%q}`, metric, Job)
}

// quantile is histogram_quantile over the 5m rate of a _bucket series.
func quantile(q float64, bucket, by string) string {
	group := "le"
	if by != "" {
		group += ", " + by
	}
	return fmt.Sprintf(`histogram_quantile(%.2f, sum(rate(%s[5m])) by (%s))`, q, jobSel(bucket, ""), group)
}

func thresholds(steps ...dashboard.Threshold) cog.Builder[dashboard.ThresholdsConfig] {
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(steps)
}

func step(value float64, color string) dashboard.Threshold {
	return dashboard.Threshold{Value: cog.ToPtr(value), Color: color}
}

// ThresholdsRedGreen is red below greenAbove.
func ThresholdsRedGreen(greenAbove float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(dashboard.Threshold{Color: "red"}, step(greenAbove, "green"))
}

// ThresholdsGreenYellowRed returns three-tier thresholds.
func ThresholdsGreenYellowRed(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(dashboard.Threshold{Color: "green"}, step(yellow, "yellow"), step(red, "red"))
}

// ThresholdsGreenOnly is a single green step.
func ThresholdsGreenOnly() cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(dashboard.Threshold{Color: "green"})
}

func colorBy(mode dashboard.FieldColorModeId) cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(mode)
}

func thresholdColors() cog.Builder[dashboard.FieldColor] {
	return colorBy(dashboard.FieldColorModeIdThresholds)
}

// TableLegend shows the legend as a table below the graph.
func TableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

// MultiTooltip shows all series, largest first.
func MultiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}

// series is the base for every timeseries panel: thin lines, a light fill,
// the classic palette and a multi tooltip. Callers override what differs.
func series(title, description string, width uint32) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(width).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(colorBy(dashboard.FieldColorModeIdPaletteClassic)).
		DrawStyle(common.GraphDrawStyleLine)
}

// single is the base for every stat panel, showing one value from expr.
func single(title, description, expr string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(thresholdColors()).
		GraphMode(common.BigValueGraphModeNone)
}

// upDown is a stat panel for a 0/1 gauge, red on 0.
func upDown(title, description, metric string) *stat.PanelBuilder {
	return single(title, description, metric).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}
