// Package metrics defines Prometheus metrics for pawmart.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pawmart"

// HTTP metrics, recorded by the dev server.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})
)

// API client metrics.
var (
	APICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_calls_total",
		Help:      "Total calls made to the listings/orders API, by outcome.",
	}, []string{"method", "outcome"})

	APICallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_call_duration_seconds",
		Help:      "Duration of listings/orders API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	IdentityCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_calls_total",
		Help:      "Total calls made to the identity provider, by operation and outcome.",
	}, []string{"operation", "outcome"})
)

// Feed metrics.
var (
	FeedLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_loads_total",
		Help:      "Total listing feed loads, by result (ok, failed, superseded).",
	}, []string{"result"})

	FeedListings = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_listings",
		Help:      "Number of listings in the most recently applied feed snapshot.",
	})
)

// Dev server store metrics.
var (
	DevStoreListings = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "devserver_listings",
		Help:      "Number of listings held by the dev server.",
	})

	DevStoreOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "devserver_orders",
		Help:      "Number of orders held by the dev server.",
	})
)

// New-listing alert metrics.
var (
	AlertsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_sent_total",
		Help:      "Total new-listing alerts delivered to the webhook, by result.",
	}, []string{"result"})

	AlertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "alert_duration_seconds",
		Help:      "Duration of webhook deliveries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
