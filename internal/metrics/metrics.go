// Package metrics contains prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cleanup"

// nolint:gochecknoglobals
var (
	// RequestCounter counts served http requests by route and status code.
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration ...
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ModerationActions counts committed audit records by action tag.
	ModerationActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "moderation",
			Name:      "actions_total",
			Help:      "Total number of moderation actions",
		},
		[]string{"action"},
	)

	// AdvancedEvents counts events moved by lifecycle worker.
	AdvancedEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "advanced_events_total",
			Help:      "Total number of events which status was changed by schedule",
		},
	)
)
