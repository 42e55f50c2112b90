package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "operations_total",
		Help:      "Count of calls to external collaborators (quote, ledger, node).",
	}, []string{"upstream", "operation", "status"})
	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "operation_duration_seconds",
		Help:      "Duration of calls to external collaborators.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"upstream", "operation", "status"})
)

// Upstream tracks metrics for calls to one external service.
type Upstream struct {
	name string
}

// NewUpstream constructs a collector labelled with the upstream name.
func NewUpstream(name string) *Upstream {
	if name == "" {
		name = "unknown"
	}
	return &Upstream{name: name}
}

// Observe records a single call outcome and duration.
func (m Upstream) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	upstreamRequestsTotal.WithLabelValues(m.name, operation, status).Inc()
	upstreamRequestDuration.WithLabelValues(m.name, operation, status).Observe(time.Since(started).Seconds())
}
