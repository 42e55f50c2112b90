package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentIntentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payment",
		Name:      "intents_total",
		Help:      "Count of payment intents by terminal phase and failure reason.",
	}, []string{"network", "phase", "reason"})

	paymentIntentDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "payment",
		Name:      "intent_duration_seconds",
		Help:      "Duration of payment intents from quoting to terminal phase.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"network", "phase"})

	paymentPhaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payment",
		Name:      "phase_transitions_total",
		Help:      "Count of payment phase transitions.",
	}, []string{"network", "phase"})

	paymentRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payment",
		Name:      "rejected_total",
		Help:      "Count of submissions refused before an intent started.",
	}, []string{"network", "reason"})
)

// Payment tracks metrics for the payment submission pipeline.
type Payment struct {
	network string
}

// NewPayment constructs a Payment collector.
func NewPayment(network string) *Payment {
	if network == "" {
		network = "unknown"
	}
	return &Payment{network: network}
}

// ObservePhase records a phase transition.
func (m Payment) ObservePhase(phase string) {
	paymentPhaseTotal.WithLabelValues(m.network, phase).Inc()
}

// ObserveIntent records a finished intent.
func (m Payment) ObserveIntent(phase, reason string, started time.Time) {
	if reason == "" {
		reason = "none"
	}
	paymentIntentsTotal.WithLabelValues(m.network, phase, reason).Inc()
	paymentIntentDuration.WithLabelValues(m.network, phase).Observe(time.Since(started).Seconds())
}

// ObserveRejected records a submission refused before quoting.
func (m Payment) ObserveRejected(reason string) {
	paymentRejectedTotal.WithLabelValues(m.network, reason).Inc()
}
