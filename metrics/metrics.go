package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts served requests by route and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loancmp_http_requests_total",
			Help: "HTTP requests served, by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPDuration tracks handler latency.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loancmp_http_request_duration_seconds",
			Help:    "HTTP handler latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// Comparisons counts completed comparisons by the cheaper loan kind.
	Comparisons = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loancmp_comparisons_total",
			Help: "Completed loan comparisons, by cheaper option",
		},
		[]string{"cheaper"},
	)

	// CalculationErrors counts rejected calculation requests.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loancmp_calculation_errors_total",
			Help: "Calculation requests rejected, by operation",
		},
		[]string{"operation"},
	)

	// AccessDecisions counts access gate outcomes.
	AccessDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loancmp_access_decisions_total",
			Help: "Access gate decisions, by level and outcome",
		},
		[]string{"level", "allowed"},
	)
)
