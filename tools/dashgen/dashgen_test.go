package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pawmart/pawmart/tools/dashgen/dashboards"
	"github.com/pawmart/pawmart/tools/dashgen/rules"
	"github.com/pawmart/pawmart/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "pawmart-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "PawMart Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	rows, totalPanels := 0, 0
	for _, p := range dash.Panels {
		switch {
		case p.RowPanel != nil:
			rows++
			totalPanels += len(p.RowPanel.Panels)
		case p.Panel != nil:
			totalPanels++
		}
	}
	assert.Equal(t, 5, rows)
	assert.Equal(t, 16, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestOverviewDashboard_HTTPRowByRoute(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)
	raw, err := json.Marshal(dash)
	require.NoError(t, err)

	type target struct {
		Expr string `json:"expr"`
	}
	type panel struct {
		Title   string   `json:"title"`
		Type    string   `json:"type"`
		Targets []target `json:"targets"`
		Panels  []panel  `json:"panels"`
	}
	var doc struct {
		Panels []panel `json:"panels"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	// Row children may be nested or follow the row at the top level.
	var (
		httpRow []panel
		row     string
	)
	for _, p := range doc.Panels {
		if p.Type == "row" {
			row = p.Title
			if row == "HTTP" {
				httpRow = append(httpRow, p.Panels...)
			}
			continue
		}
		if row == "HTTP" {
			httpRow = append(httpRow, p)
		}
	}
	require.Len(t, httpRow, 4)

	titles := make([]string, len(httpRow))
	for i, p := range httpRow {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"Traffic by Route", "Route Latency (p95)", "Responses by Class", "Rejected Writes"}, titles)

	assert.Contains(t, httpRow[0].Targets[0].Expr, "sum by (method, path)")
	assert.Contains(t, httpRow[1].Targets[0].Expr, "by (le, path)")
	assert.Contains(t, httpRow[3].Targets[0].Expr, `method=~"POST|PATCH|DELETE"`)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "pawmart-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "pawmart-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"pawmart:http_requests:rate5m",
		"pawmart:http_errors:rate5m",
		"pawmart:api_calls:rate5m",
		"pawmart:api_errors:rate5m",
		"pawmart:feed_loads_failed:rate5m",
		"pawmart:alerts_failed:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "pawmart-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "pawmart-alerts", group.Name)
	require.Len(t, group.Rules, 7)

	expectedAlerts := []string{
		"PawmartDown",
		"PawmartHealthzFailing",
		"PawmartHighErrorRate",
		"PawmartAPIErrors",
		"PawmartFeedLoadFailures",
		"PawmartIdentityErrors",
		"PawmartAlertDeliveryFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir
	require.NoError(t, run(cfg, false))

	dashJSON, err := os.ReadFile(filepath.Join(dir, "grafana", "data", "pawmart-overview.json"))
	require.NoError(t, err)
	assert.Contains(t, string(dashJSON), `"uid": "pawmart-overview"`)

	for _, name := range []string{"pawmart-recording-rules.yaml", "pawmart-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), generatedHeader, name)

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr), name)
		assert.Equal(t, "PrometheusRule", cr.Kind, name)
	}
}

func TestRun_PlainRules(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, RulesEnabled: true, PlainRules: true}
	require.NoError(t, run(cfg, false))

	data, err := os.ReadFile(filepath.Join(dir, "prometheus", "pawmart-alerts.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "PrometheusRule")

	var rf rules.RuleFile
	require.NoError(t, yaml.Unmarshal(data, &rf))
	require.Len(t, rf.Groups, 1)
	assert.Equal(t, "pawmart-alerts", rf.Groups[0].Name)
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, RulesEnabled: true}
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
