package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "pawmart-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "pawmart-recording",
					Rules: []Rule{
						{
							Record: "pawmart:http_requests:rate5m",
							Expr:   `sum(rate(pawmart_http_requests_total[5m]))`,
						},
						{
							Record: "pawmart:http_errors:rate5m",
							Expr:   `sum(rate(pawmart_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "pawmart:api_calls:rate5m",
							Expr:   `sum by (outcome) (rate(pawmart_api_calls_total[5m]))`,
						},
						{
							Record: "pawmart:api_errors:rate5m",
							Expr:   `sum(rate(pawmart_api_calls_total{outcome=~"http_error|transport_error"}[5m]))`,
						},
						{
							Record: "pawmart:feed_loads_failed:rate5m",
							Expr:   `sum(rate(pawmart_feed_loads_total{result="failed"}[5m]))`,
						},
						{
							Record: "pawmart:alerts_failed:rate5m",
							Expr:   `sum(rate(pawmart_alerts_sent_total{result="error"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
