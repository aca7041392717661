package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	communitySearches    *prometheus.CounterVec
	communitySearchTime  prometheus.Histogram
	searchesSuperseded   prometheus.Counter
	dashboardRequests    *prometheus.CounterVec
	dashboardTime        prometheus.Histogram
	circuitBreakerState  *prometheus.GaugeVec
	activeSearchSessions prometheus.Gauge
	seededExpenses       prometheus.Counter
}

// NewPrometheusMetrics registers the service metrics on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		communitySearches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "community_search_total",
				Help: "Total number of community insight searches by outcome",
			},
			[]string{"status"},
		),
		communitySearchTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "community_search_duration_milliseconds",
				Help:    "Community insight search duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		searchesSuperseded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "community_search_superseded_total",
				Help: "Total number of searches whose result was discarded for a newer search",
			},
		),
		dashboardRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of personal dashboard computations",
			},
			[]string{"status"},
		),
		dashboardTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_duration_milliseconds",
				Help:    "Personal dashboard computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		activeSearchSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_search_sessions",
				Help: "Current number of per-user search sessions",
			},
		),
		seededExpenses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "seeded_expenses_total",
				Help: "Total number of synthetic expenses written by the development seeder",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "community_search":
		if status != "" {
			m.communitySearches.WithLabelValues(status).Inc()
		}
	case "community_search_superseded":
		m.searchesSuperseded.Inc()
	case "dashboard_request":
		if status != "" {
			m.dashboardRequests.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "community_search":
		m.communitySearchTime.Observe(float64(duration.Milliseconds()))
	case "dashboard":
		m.dashboardTime.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "active_search_sessions":
		m.activeSearchSessions.Set(value)
	case "seeded_expenses":
		m.seededExpenses.Add(value)
	}
}
