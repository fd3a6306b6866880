// Package metrics registers the Prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campaignpulse"

var (
	// UpstreamRequests counts calls to the Klaviyo API by endpoint and
	// status class ("2xx", "4xx", "5xx", "error").
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of requests issued to the upstream analytics API",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamLatency observes upstream round-trip time per endpoint.
	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream analytics API requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// StatsFetchFailures counts per-campaign statistics fetches that were
	// degraded to zero-valued records.
	StatsFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stats_fetch_failures_total",
			Help:      "Per-campaign statistics fetches that failed and were degraded to zeros",
		},
	)

	// ReportsServed counts completed report pipelines by selector.
	ReportsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_served_total",
			Help:      "Completed campaign metrics reports by date range selector",
		},
		[]string{"selector"},
	)

	// HTTPDuration observes inbound request latency.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of inbound HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "code"},
	)
)

// StatusClass buckets an HTTP status code for the upstream counter labels.
func StatusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	}
	return "other"
}
