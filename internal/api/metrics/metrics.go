// Package metrics defines and registers all custom Prometheus metrics for the
// SportHub web tier. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "webapp"

// ── Gateway metrics ───────────────────────────────────────────────────────────

// GatewayRequestsTotal counts outgoing requests to the backend services.
// Labels:
//   - service: "users", "activities", "search"
//   - operation: the gateway operation name (e.g. "login", "list_activities")
//   - outcome: "success", "http_error", "transport_error", "error"
var GatewayRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of requests issued to backend services.",
	},
	[]string{"service", "operation", "outcome"},
)

// GatewayRequestDuration measures the wall time of one backend request.
var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of backend service requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "operation"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthEventsTotal counts session lifecycle events.
// Labels:
//   - event: "login", "register", "logout", "restore"
//   - outcome: "success" or "failure"
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of session lifecycle events, by outcome.",
	},
	[]string{"event", "outcome"},
)
