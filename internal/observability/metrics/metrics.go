package metrics

import "github.com/prometheus/client_golang/prometheus"

// QuoteMetrics exposes counters/histograms for the quote-request flow.
type QuoteMetrics struct {
	submissionsTotal *prometheus.CounterVec
	relaySendsTotal  *prometheus.CounterVec
	relayLatency     *prometheus.HistogramVec
}

func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	m := &QuoteMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mgagency",
			Subsystem: "quote",
			Name:      "submissions_total",
			Help:      "Total quote submissions by terminal status",
		}, []string{"status"}),
		relaySendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mgagency",
			Subsystem: "quote",
			Name:      "relay_sends_total",
			Help:      "Total email-relay sends by copy kind and outcome",
		}, []string{"kind", "outcome"}),
		relayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mgagency",
			Subsystem: "quote",
			Name:      "relay_send_seconds",
			Help:      "Latency of email-relay sends",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.relaySendsTotal, m.relayLatency)
	return m
}

func (m *QuoteMetrics) ObserveSubmission(status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
}

func (m *QuoteMetrics) ObserveRelaySend(kind string, ok bool, seconds float64) {
	if m == nil {
		return
	}
	outcome := "error"
	if ok {
		outcome = "ok"
	}
	m.relaySendsTotal.WithLabelValues(kind, outcome).Inc()
	m.relayLatency.WithLabelValues(kind).Observe(seconds)
}
