// Package metrics defines and registers all custom Prometheus metrics for
// the portal client. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto; the dev server exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// RequestsInFlight mirrors the pending-request set of the busy-tracking
// pipeline stage. Non-zero means the global busy indicator is lit.
var RequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "requests_in_flight",
		Help:      "Number of API requests currently tracked by the busy indicator.",
	},
)

// RequestsTotal counts settled API requests by outcome category.
// Labels:
//   - category: "ok" or an error taxonomy value (e.g. "unauthorized", "server")
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests settled, by outcome category.",
	},
	[]string{"category"},
)

// AuthFailuresTotal counts forced logouts caused by 401 responses.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of 401 responses that forcibly ended the session.",
	},
)

// ChartsRenderedTotal counts dashboard chart renders.
// Label:
//   - kind: "bar" or "line"
var ChartsRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charts_rendered_total",
		Help:      "Total number of dashboard charts rendered, by kind.",
	},
	[]string{"kind"},
)
