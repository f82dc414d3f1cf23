package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the dashboard.
type Metrics struct {
	DataLoads       *prometheus.CounterVec // labels: outcome={success,error}
	DataLoaded      prometheus.Gauge
	Actions         *prometheus.CounterVec // labels: action, outcome={changed,noop,rejected}
	SelectionLimit  prometheus.Counter
	ViewSwitches    *prometheus.CounterVec // labels: view={map,compare}
	Renders         prometheus.Counter
	ActiveSessions  prometheus.Gauge
	SessionsExpired prometheus.Counter
	SelectionSize   prometheus.Histogram
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DataLoads,
		m.DataLoaded,
		m.Actions,
		m.SelectionLimit,
		m.ViewSwitches,
		m.Renders,
		m.ActiveSessions,
		m.SessionsExpired,
		m.SelectionSize,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build
// as many services as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DataLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "painel_pr",
			Name:      "data_loads_total",
			Help:      "Startup data loads by outcome.",
		}, []string{"outcome"}),
		DataLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "painel_pr",
			Name:      "data_loaded",
			Help:      "1 when municipalities and indicators are loaded, 0 otherwise.",
		}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "painel_pr",
			Name:      "actions_total",
			Help:      "Dashboard actions by type and outcome.",
		}, []string{"action", "outcome"}),
		SelectionLimit: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "painel_pr",
			Name:      "selection_limit_notices_total",
			Help:      "Times a user tried to select more municipalities than allowed.",
		}),
		ViewSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "painel_pr",
			Name:      "view_switches_total",
			Help:      "Effective view switches by target view.",
		}, []string{"view"}),
		Renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "painel_pr",
			Name:      "renders_total",
			Help:      "Dashboard projections rendered after a state change.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "painel_pr",
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory.",
		}),
		SessionsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "painel_pr",
			Name:      "sessions_expired_total",
			Help:      "Sessions dropped by TTL or capacity.",
		}),
		SelectionSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "painel_pr",
			Name:      "selection_size",
			Help:      "Selection size after each selection change.",
			Buckets:   []float64{0, 1, 2, 3, 4},
		}),
	}
}
