package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the benchmark harness.
type Metrics struct {
	TrialsTotal     *prometheus.CounterVec
	TrialDuration   *prometheus.HistogramVec
	SamplesStored   prometheus.Gauge
	BenchmarksTotal prometheus.Counter
}

// NewMetrics creates and registers the collectors on the given registerer.
// Tests pass a fresh registry; the CLI passes prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.TrialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "majbench_trials_total",
			Help: "Total number of algorithm trials executed",
		},
		[]string{"majority", "outcome"},
	)

	m.TrialDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "majbench_trial_duration_seconds",
			Help:    "Duration of individual algorithm trials in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"majority"},
	)

	m.SamplesStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "majbench_samples_stored",
			Help: "Number of performance samples currently held in the result store",
		},
	)

	m.BenchmarksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "majbench_benchmarks_total",
			Help: "Total number of benchmark batches run",
		},
	)

	reg.MustRegister(
		m.TrialsTotal,
		m.TrialDuration,
		m.SamplesStored,
		m.BenchmarksTotal,
	)

	return m
}

// ObserveTrial records the outcome and duration of one trial. Safe to call
// on a nil receiver so library code can run without telemetry wired.
func (m *Metrics) ObserveTrial(wantMajority bool, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	majority := fmt.Sprintf("%t", wantMajority)
	m.TrialsTotal.WithLabelValues(majority, outcome).Inc()
	m.TrialDuration.WithLabelValues(majority).Observe(elapsed.Seconds())
}

// ObserveBatch records a completed benchmark batch and the resulting store
// size.
func (m *Metrics) ObserveBatch(storeLen int) {
	if m == nil {
		return
	}
	m.BenchmarksTotal.Inc()
	m.SamplesStored.Set(float64(storeLen))
}

// StartMetricsServer starts an HTTP server exposing Prometheus metrics.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
