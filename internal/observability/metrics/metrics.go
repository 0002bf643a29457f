package metrics

import "github.com/prometheus/client_golang/prometheus"

// TriageMetrics exposes counters/histograms for the triage endpoint.
type TriageMetrics struct {
	requestsTotal *prometheus.CounterVec
	latency       prometheus.Histogram
}

func NewTriageMetrics(reg prometheus.Registerer) *TriageMetrics {
	m := &TriageMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crs",
			Subsystem: "triage",
			Name:      "requests_total",
			Help:      "Total triage classification requests",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crs",
			Subsystem: "triage",
			Name:      "latency_seconds",
			Help:      "Latency of triage classification including the model call",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.latency)
	return m
}

func (m *TriageMetrics) ObserveRequest(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
	m.latency.Observe(seconds)
}

// WizardMetrics counts booking state machine transitions.
type WizardMetrics struct {
	transitionsTotal *prometheus.CounterVec
}

func NewWizardMetrics(reg prometheus.Registerer) *WizardMetrics {
	m := &WizardMetrics{
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crs",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Total booking wizard transitions",
		}, []string{"transition", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.transitionsTotal)
	return m
}

func (m *WizardMetrics) ObserveTransition(transition, outcome string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(transition, outcome).Inc()
}
