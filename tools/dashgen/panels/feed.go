package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// FeedLoads returns a timeseries panel showing listing feed loads by result.
// Superseded loads are requests a newer load replaced before they finished.
func FeedLoads() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Feed Loads").
		Description("Listing feed loads per second, by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (result) (rate(`+ByJob("pawmart_feed_loads_total", "")+`[5m]))`,
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FeedSize returns a timeseries panel showing the size of the most recently
// applied feed snapshot.
func FeedSize() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Feed Size").
		Description("Listings in the latest applied feed snapshot").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(ByJob("pawmart_feed_listings", ""), "listings", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
