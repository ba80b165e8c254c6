package main

import "errors"

// KnownMetrics is the set of metric names exported by pawmart plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics (dev server).
	"pawmart_http_request_duration_seconds": true,
	"pawmart_http_requests_total":           true,
	"pawmart_healthz_up":                    true,

	// API client metrics.
	"pawmart_api_calls_total":           true,
	"pawmart_api_call_duration_seconds": true,
	"pawmart_identity_calls_total":      true,

	// Feed metrics.
	"pawmart_feed_loads_total": true,
	"pawmart_feed_listings":    true,

	// Dev server store metrics.
	"pawmart_devserver_listings": true,
	"pawmart_devserver_orders":   true,

	// New-listing alert metrics.
	"pawmart_alerts_sent_total":      true,
	"pawmart_alert_duration_seconds": true,

	// Recording rules.
	"pawmart:http_requests:rate5m":     true,
	"pawmart:http_errors:rate5m":       true,
	"pawmart:api_calls:rate5m":         true,
	"pawmart:api_errors:rate5m":        true,
	"pawmart:feed_loads_failed:rate5m": true,
	"pawmart:alerts_failed:rate5m":     true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
	// PlainRules writes rule_files-style YAML instead of PrometheusRule CRs.
	PlainRules bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
