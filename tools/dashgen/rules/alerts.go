package rules

// AlertRules returns a PrometheusRule CR containing alert rules for pawmart
// operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "pawmart-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "pawmart-alerts",
					Rules: []Rule{
						{
							Alert: "PawmartDown",
							Expr:  `absent(up{job="pawmart"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "PawMart is down",
								"description": "The pawmart job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "PawmartHealthzFailing",
							Expr:  `pawmart_healthz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "PawMart dev server health check is failing",
								"description": "The /healthz probe has been failing for more than 2 minutes.",
							},
						},
						{
							Alert: "PawmartHighErrorRate",
							Expr:  `pawmart:http_errors:rate5m / pawmart:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the PawMart dev server",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "PawmartAPIErrors",
							Expr:  `pawmart:api_errors:rate5m / sum(pawmart:api_calls:rate5m) > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Listings/orders API calls are failing",
								"description": "More than 10% of API calls have failed over the last 5 minutes.",
							},
						},
						{
							Alert: "PawmartFeedLoadFailures",
							Expr:  `pawmart:feed_loads_failed:rate5m > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Listing feed loads are failing",
								"description": "The listing watcher has been unable to load the feed for more than 10 minutes.",
							},
						},
						{
							Alert: "PawmartIdentityErrors",
							Expr:  `increase(pawmart_identity_calls_total{outcome="error"}[15m]) > 5`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Identity provider calls are failing",
								"description": "More than 5 identity provider calls failed in the last 15 minutes.",
							},
						},
						{
							Alert: "PawmartAlertDeliveryFailures",
							Expr:  `pawmart:alerts_failed:rate5m > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "New-listing alert delivery failures detected",
								"description": "One or more new-listing notifications (Discord webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
