package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestQuoteMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewQuoteMetrics(reg)
	m.ObserveSubmission("succeeded")
	m.ObserveSubmission("failed")
	m.ObserveSubmission("failed")
	m.ObserveRelaySend("notification", true, 0.2)
	m.ObserveRelaySend("auto_reply", false, 0.4)

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("failed")); got != 2 {
		t.Fatalf("expected 2 failed submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.relaySendsTotal.WithLabelValues("auto_reply", "error")); got != 1 {
		t.Fatalf("expected 1 failed auto reply, got %v", got)
	}
	if got := testutil.CollectAndCount(m.relayLatency); got != 2 {
		t.Fatalf("expected 2 latency series, got %d", got)
	}
}

func TestQuoteMetricsNilSafe(t *testing.T) {
	var m *QuoteMetrics
	m.ObserveSubmission("succeeded")
	m.ObserveRelaySend("notification", true, 0.1)
}
