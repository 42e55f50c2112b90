// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arena_wallet"

var (
	sessionRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciliation",
		Name:      "refresh_total",
		Help:      "Count of reconciliation refresh cycles by outcome.",
	}, []string{"network", "status"})

	sessionRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconciliation",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of reconciliation refresh cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	sessionRefreshSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciliation",
		Name:      "refresh_skipped_total",
		Help:      "Count of timer ticks skipped because a refresh was still running.",
	}, []string{"network"})

	sessionWindowEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reconciliation",
		Name:      "window_entries",
		Help:      "Number of classified entries in the last published window.",
	}, []string{"network"})

	sessionSkippedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciliation",
		Name:      "skipped_records_total",
		Help:      "Count of ledger records dropped by the classifier.",
	}, []string{"network"})
)

// Session tracks metrics for the reconciliation session.
type Session struct {
	network string
}

// NewSession constructs a Session collector.
func NewSession(network string) *Session {
	if network == "" {
		network = "unknown"
	}
	return &Session{network: network}
}

// ObserveRefresh records a refresh outcome and duration.
func (m Session) ObserveRefresh(err error, started time.Time) {
	status := statusOf(err)
	sessionRefreshTotal.WithLabelValues(m.network, status).Inc()
	sessionRefreshDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveSkippedTick records a timer tick that found a refresh in progress.
func (m Session) ObserveSkippedTick() {
	sessionRefreshSkipped.WithLabelValues(m.network).Inc()
}

// ObserveWindow records the size of the classified window and the records dropped from it.
func (m Session) ObserveWindow(entries, skipped int) {
	sessionWindowEntries.WithLabelValues(m.network).Set(float64(entries))
	sessionSkippedRecords.WithLabelValues(m.network).Add(float64(skipped))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
