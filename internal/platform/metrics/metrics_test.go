package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementOutcome("claim", "success")
	m.IncrementOutcome("claim", "success")
	m.IncrementOutcome("claim", "skip")
	m.IncrementAccountLookup(true)
	m.IncrementAccountLookup(false)
	m.IncrementCircuitTransition("claim", "open")
	m.ObserveAdapterLatency("claim", 150*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AdapterOutcome.WithLabelValues("claim", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AdapterOutcome.WithLabelValues("claim", "skip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CircuitTransitions.WithLabelValues("claim", "open")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AdapterLatency))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome("claim", "success")
		m.ObserveAdapterLatency("claim", time.Second)
		m.IncrementCircuitTransition("claim", "open")
		m.IncrementAccountLookup(true)
		m.ObserveHTTPLatency("GET", "/outbound", "200", time.Second)
	})
}
