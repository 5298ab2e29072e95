package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the business-level Prometheus metrics. It satisfies
// usecase.MetricsRecorder.
type Metrics struct {
	SimulationsRun     prometheus.Counter
	SimulationDuration prometheus.Histogram
	SimulationDays     prometheus.Histogram
	ComparisonsRun     prometheus.Counter
	ComparisonSize     prometheus.Histogram
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SimulationsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paysim_simulations_total",
			Help: "Total number of simulations run",
		}),
		SimulationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "paysim_simulation_duration_seconds",
			Help:    "Duration of simulation runs",
			Buckets: prometheus.DefBuckets,
		}),
		SimulationDays: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "paysim_simulation_days",
			Help:    "Requested simulation horizons in days",
			Buckets: []float64{7, 30, 90, 180, 365, 730, 1825, 3650},
		}),
		ComparisonsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paysim_comparisons_total",
			Help: "Total number of scenario comparisons run",
		}),
		ComparisonSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "paysim_comparison_scenarios",
			Help:    "Number of scenarios per comparison",
			Buckets: []float64{1, 2, 3, 5, 10},
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paysim_result_cache_hits_total",
			Help: "Total simulation result cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paysim_result_cache_misses_total",
			Help: "Total simulation result cache misses",
		}),
	}
}

// SimulationRun records one finished simulation.
func (m *Metrics) SimulationRun(days int, duration time.Duration) {
	m.SimulationsRun.Inc()
	m.SimulationDuration.Observe(duration.Seconds())
	m.SimulationDays.Observe(float64(days))
}

// ComparisonRun records one finished scenario comparison.
func (m *Metrics) ComparisonRun(scenarios int) {
	m.ComparisonsRun.Inc()
	m.ComparisonSize.Observe(float64(scenarios))
}

// CacheHit records a result cache hit.
func (m *Metrics) CacheHit() {
	m.CacheHits.Inc()
}

// CacheMiss records a result cache miss.
func (m *Metrics) CacheMiss() {
	m.CacheMisses.Inc()
}
