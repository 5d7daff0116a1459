// Package metrics defines and registers all custom Prometheus metrics for
// the shopping-assistant API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time and
// are exposed through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shopsearch"

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "not_found", "invalid_password", or "error"
//     (repository/transport failure)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SearchesTotal counts completed searches.
// Label:
//   - cache: "hit" (served from the completion cache) or "miss"
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of completed searches, by cache result.",
	},
	[]string{"cache"},
)

// CompletionErrorsTotal counts failed calls to the completion provider.
var CompletionErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_errors_total",
		Help:      "Total number of failed completion provider calls.",
	},
)

// CompletionRequestDuration measures the round-trip time of one completion
// provider call.
var CompletionRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "completion_request_duration_seconds",
		Help:      "Duration of completion provider round trips.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	},
)
