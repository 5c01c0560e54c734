// Package metrics registers the gateway's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventscout",
		Name:      "backend_requests_total",
		Help:      "Requests to the events backend by operation and outcome.",
	}, []string{"op", "outcome"})

	BackendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eventscout",
		Name:      "backend_request_duration_seconds",
		Help:      "Latency of events backend calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	EventsRanked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventscout",
		Name:      "events_ranked_total",
		Help:      "Events that went through distance ranking.",
	})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventscout",
		Name:      "validation_failures_total",
		Help:      "Submission validation failures by code.",
	}, []string{"code"})

	StaleBrowses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventscout",
		Name:      "stale_browse_results_total",
		Help:      "Browse fetches superseded before their result was used.",
	})
)
