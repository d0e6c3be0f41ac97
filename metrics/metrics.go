package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SourceRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubback",
		Name:      "community_source_requests_total",
		Help:      "Community fetches by operation and the tier that served them.",
	}, []string{"operation", "tier"})

	SourceFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubback",
		Name:      "community_source_failures_total",
		Help:      "Tier attempts that failed and fell through to the next tier.",
	}, []string{"operation", "tier"})
)

func init() {
	prometheus.MustRegister(SourceRequests, SourceFailures)
}

// TierServed records which tier ultimately answered an aggregator operation.
func TierServed(operation, tier string) {
	SourceRequests.WithLabelValues(operation, tier).Inc()
}

func TierFailed(operation, tier string) {
	SourceFailures.WithLabelValues(operation, tier).Inc()
}
