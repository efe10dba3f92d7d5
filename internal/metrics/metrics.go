// Package metrics exposes Prometheus collectors for the clubhouse server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	rpcRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total number of RPCs handled, by procedure and result code.",
		},
		[]string{"procedure", "code"},
	)

	rpcDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "clubhouse",
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Duration of RPCs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"procedure"},
	)

	membershipTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "membership",
			Name:      "transitions_total",
			Help:      "Membership state changes, by event and outcome.",
		},
		[]string{"event", "outcome"},
	)

	ledgerEntries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "ledger",
			Name:      "entries_total",
			Help:      "Ledger entries recorded, by direction.",
		},
		[]string{"direction"},
	)

	activitiesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "schedule",
			Name:      "activities_created_total",
			Help:      "Activities scheduled.",
		},
	)

	rateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "rpc",
			Name:      "rate_limited_total",
			Help:      "RPCs refused by the per-user rate limiter.",
		},
		[]string{"procedure"},
	)
)

func init() {
	Registry.MustRegister(
		rpcRequests,
		rpcDuration,
		membershipTransitions,
		ledgerEntries,
		activitiesCreated,
		rateLimited,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordRPC records one completed RPC.
func RecordRPC(procedure, code string, duration time.Duration) {
	rpcRequests.WithLabelValues(procedure, code).Inc()
	rpcDuration.WithLabelValues(procedure).Observe(duration.Seconds())
}

// RecordMembership records a membership event such as "approve" with its outcome.
func RecordMembership(event, outcome string) {
	membershipTransitions.WithLabelValues(event, outcome).Inc()
}

// RecordLedgerEntry records an appended ledger entry.
func RecordLedgerEntry(amount int64) {
	direction := "income"
	if amount < 0 {
		direction = "expense"
	}
	ledgerEntries.WithLabelValues(direction).Inc()
}

// RecordActivityCreated records a scheduled activity.
func RecordActivityCreated() {
	activitiesCreated.Inc()
}

// RecordRateLimited records an RPC refused by the rate limiter.
func RecordRateLimited(procedure string) {
	rateLimited.WithLabelValues(procedure).Inc()
}
