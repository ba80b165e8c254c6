// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/pawmart/pawmart/tools/dashgen/panels"
)

// OverviewUID is the stable Grafana UID of the overview dashboard.
const OverviewUID = "pawmart-overview"

// BuildOverview constructs the PawMart Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("PawMart Overview").
		Uid(OverviewUID).
		Tags([]string{"pawmart"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.UptimeStat()).
		WithPanel(panels.StoreListingsStat()).
		WithPanel(panels.StoreOrdersStat()))

	// Row 2: Dev server HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RouteTraffic()).
		WithPanel(panels.RouteLatency()).
		WithPanel(panels.ResponseClasses()).
		WithPanel(panels.RejectedWrites()))

	// Row 3: Client calls.
	b.WithRow(dashboard.NewRowBuilder("API Client").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.IdentityCalls()))

	// Row 4: Feed.
	b.WithRow(dashboard.NewRowBuilder("Feed").
		WithPanel(panels.FeedLoads()).
		WithPanel(panels.FeedSize()))

	// Row 5: Alerts.
	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.AlertLatency()).
		WithPanel(panels.AlertFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
