package infrastructure

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector implements the MetricsCollector port with Prometheus collectors
type PrometheusMetricsCollector struct {
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	queryOutcomes    *prometheus.CounterVec
	staleRenders     prometheus.Counter
}

// NewPrometheusMetricsCollector registers the widget collectors with reg.
// A nil reg uses the default registry.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		providerRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_provider_requests_total",
				Help: "The total number of weather provider requests",
			},
			[]string{"endpoint", "outcome"},
		),
		providerLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_provider_request_duration_seconds",
				Help:    "Weather provider request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		queryOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_widget_queries_total",
				Help: "The total number of widget queries by outcome",
			},
			[]string{"outcome"},
		),
		staleRenders: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "weather_widget_stale_renders_total",
				Help: "The total number of renders dropped because a newer query took over",
			},
		),
	}
}

// RecordProviderCall counts a provider request and observes its latency
func (m *PrometheusMetricsCollector) RecordProviderCall(ctx context.Context, endpoint string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.providerRequests.WithLabelValues(endpoint, outcome).Inc()
	m.providerLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordQueryOutcome counts a finished widget query
func (m *PrometheusMetricsCollector) RecordQueryOutcome(ctx context.Context, outcome string) {
	m.queryOutcomes.WithLabelValues(outcome).Inc()
}

// RecordStaleRender counts a dropped render
func (m *PrometheusMetricsCollector) RecordStaleRender(ctx context.Context) {
	m.staleRenders.Inc()
}
