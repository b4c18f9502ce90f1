package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/phl-league/internal/platform/resilience"
)

const metricsNamespace = "phl_league"

// Metrics records fetch cycles and backend traffic on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	fetchCycles     *prometheus.CounterVec
	fetchDuration   prometheus.Histogram
	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	circuitState    *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetchCycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_cycles_total",
			Help:      "Snapshot fetch cycles by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_cycle_duration_seconds",
			Help:      "Wall time of a snapshot fetch cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "backend_requests_total",
			Help:      "League backend requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "backend_request_duration_seconds",
			Help:      "League backend request latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		circuitState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "backend_circuit_state",
			Help:      "1 for the current league backend circuit state, 0 otherwise.",
		}, []string{"state"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.fetchCycles,
		m.fetchDuration,
		m.backendRequests,
		m.backendLatency,
		m.circuitState,
	)
	m.SetCircuitState(resilience.CircuitStateClosed)

	return m
}

func (m *Metrics) ObserveFetchCycle(outcome string, elapsed time.Duration) {
	m.fetchCycles.WithLabelValues(outcome).Inc()
	m.fetchDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveBackendRequest(operation, outcome string, elapsed time.Duration) {
	m.backendRequests.WithLabelValues(operation, outcome).Inc()
	m.backendLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) SetCircuitState(state resilience.CircuitState) {
	for _, candidate := range []resilience.CircuitState{
		resilience.CircuitStateClosed,
		resilience.CircuitStateOpen,
		resilience.CircuitStateHalfOpen,
	} {
		value := 0.0
		if candidate == state {
			value = 1
		}
		m.circuitState.WithLabelValues(string(candidate)).Set(value)
	}
}

// OnCircuitStateChange matches the league client's breaker hook.
func (m *Metrics) OnCircuitStateChange(_, to resilience.CircuitState) {
	m.SetCircuitState(to)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
