// Package metrics exposes Prometheus instrumentation for standings and
// pairing computations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so several instances can coexist (tests create
// one per case).
type Metrics struct {
	registry *prometheus.Registry

	computations  *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	storeFailures *prometheus.CounterVec
	players       prometheus.Gauge
	pairings      prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swiss_computations_total",
				Help: "Standings and pairing computations by outcome.",
			},
			[]string{"operation", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "swiss_computation_duration_seconds",
				Help:    "Time spent reading the store and computing standings or pairings.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		storeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swiss_store_failures_total",
				Help: "Failed reads from the player/result store.",
			},
			[]string{"source"},
		),
		players: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "swiss_players",
			Help: "Players in the last computed standings.",
		}),
		pairings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "swiss_pairings",
			Help: "Pairings in the last generated round.",
		}),
	}

	reg.MustRegister(m.computations, m.duration, m.storeFailures, m.players, m.pairings)
	return m
}

// ObserveComputation records the outcome and latency of one operation.
// status is "ok", "odd_player_count" or "store_unavailable".
func (m *Metrics) ObserveComputation(operation, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(operation, status).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) StoreFailure(source string) {
	if m == nil {
		return
	}
	m.storeFailures.WithLabelValues(source).Inc()
}

func (m *Metrics) SetPlayers(n int) {
	if m == nil {
		return
	}
	m.players.Set(float64(n))
}

func (m *Metrics) SetPairings(n int) {
	if m == nil {
		return
	}
	m.pairings.Set(float64(n))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
