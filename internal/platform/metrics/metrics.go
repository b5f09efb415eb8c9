package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Appended outcomes by adapter module
	AdapterOutcome *prometheus.CounterVec

	// TrustedForm round trip by adapter module
	AdapterLatency *prometheus.HistogramVec

	// Circuit transitions by adapter module and new state
	CircuitTransitions *prometheus.CounterVec

	// Account lookups served from cache or upstream
	AccountLookups *prometheus.CounterVec

	// Inbound HTTP latency by route pattern
	HTTPLatency *prometheus.HistogramVec
}

// New creates the service metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AdapterOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trustedform_adapter_outcomes_total",
			Help: "Appended outcomes by adapter module",
		}, []string{"module", "outcome"}), // outcome: success, failure, error, skip

		AdapterLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trustedform_adapter_duration_seconds",
			Help:    "Duration of TrustedForm exchanges by adapter module",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"module"}),

		CircuitTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trustedform_circuit_transitions_total",
			Help: "Circuit breaker state changes by adapter module",
		}, []string{"module", "state"}),

		AccountLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trustedform_account_lookups_total",
			Help: "Account lookups by cache result",
		}, []string{"result"}), // result: hit, miss

		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trustedform_http_request_duration_seconds",
			Help:    "Duration of inbound HTTP requests by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementOutcome records an appended outcome.
func (m *Metrics) IncrementOutcome(module, outcome string) {
	if m != nil {
		m.AdapterOutcome.WithLabelValues(module, outcome).Inc()
	}
}

// ObserveAdapterLatency records the duration of one exchange.
func (m *Metrics) ObserveAdapterLatency(module string, d time.Duration) {
	if m != nil {
		m.AdapterLatency.WithLabelValues(module).Observe(d.Seconds())
	}
}

// IncrementCircuitTransition records a breaker opening or closing.
func (m *Metrics) IncrementCircuitTransition(module, state string) {
	if m != nil {
		m.CircuitTransitions.WithLabelValues(module, state).Inc()
	}
}

// IncrementAccountLookup records a cache hit or miss.
func (m *Metrics) IncrementAccountLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.AccountLookups.WithLabelValues(result).Inc()
}

// ObserveHTTPLatency records one inbound request.
func (m *Metrics) ObserveHTTPLatency(method, route, status string, d time.Duration) {
	if m != nil {
		m.HTTPLatency.WithLabelValues(method, route, status).Observe(d.Seconds())
	}
}
