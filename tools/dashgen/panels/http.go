package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// routed excludes requests that matched no dev server route.
const routed = `path!="unmatched"`

// RouteTraffic plots dev server requests per second for each route and
// method, e.g. "PATCH /listings/:id".
func RouteTraffic() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Traffic by Route").
		Description("Dev server requests per second, by method and route pattern").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (method, path) (rate(`+ByJob("pawmart_http_requests_total", routed)+`[5m]))`,
			"{{method}} {{path}}", "A",
		)).
		WithTarget(PromQuery(
			`sum(rate(`+ByJob("pawmart_http_requests_total", `path="unmatched"`)+`[5m]))`,
			"unmatched", "B",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RouteLatency plots p95 handler latency per route. The fake identity
// endpoint shares the histogram, so it shows up as its own series.
func RouteLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Route Latency (p95)").
		Description("95th percentile dev server handler duration, by route pattern").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le, path) (rate(`+ByJob("pawmart_http_request_duration_seconds_bucket", routed)+`[5m])))`,
			"{{path}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.25, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ResponseClasses plots the response mix. 5xx comes from the recording
// rule the PawmartHighErrorRate alert uses.
func ResponseClasses() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Responses by Class").
		Description("Dev server responses per second: 2xx, 4xx and 5xx").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum(rate(`+ByJob("pawmart_http_requests_total", `status=~"2.."`)+`[5m]))`, "2xx", "A")).
		WithTarget(PromQuery(`sum(rate(`+ByJob("pawmart_http_requests_total", `status=~"4.."`)+`[5m]))`, "4xx", "B")).
		WithTarget(PromQuery(`pawmart:http_errors:rate5m`, "5xx", "C")).
		Unit("reqps").
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// RejectedWrites plots 4xx responses to listing and order writes. Most of
// these are validation failures such as a blank name or a negative price.
func RejectedWrites() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rejected Writes").
		Description("4xx responses to POST/PATCH/DELETE, by route and status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (method, path, status) (rate(`+ByJob("pawmart_http_requests_total", `method=~"POST|PATCH|DELETE",status=~"4.."`)+`[5m]))`,
			"{{method}} {{path}} {{status}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
