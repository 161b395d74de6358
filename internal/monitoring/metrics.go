// Package monitoring collects Prometheus metrics for tree queries, the
// watch stream, and the HTTP surface.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. Each instance carries its own
// registry so independent servers never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Tree query metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Watch metrics
	WatchEventsTotal *prometheus.CounterVec

	// WebSocket metrics
	StreamClients prometheus.Gauge
}

// NewMetrics creates a metrics collector.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tagfold_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tagfold_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tagfold_tree_queries_total",
				Help: "Total number of tree queries",
			},
			[]string{"level", "status"},
		),
		QueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tagfold_tree_query_duration_seconds",
				Help:    "Tree query duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
			},
			[]string{"level"},
		),
		WatchEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tagfold_watch_events_total",
				Help: "Structured change events emitted by the watch translator",
			},
			[]string{"kind"},
		),
		StreamClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tagfold_stream_clients",
				Help: "Connected websocket stream clients",
			},
		),
	}
}

// Handler exposes the instance registry in Prometheus format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordQuery records a tree query outcome.
func (m *Metrics) RecordQuery(level, status string, duration time.Duration) {
	m.QueriesTotal.WithLabelValues(level, status).Inc()
	m.QueryDuration.WithLabelValues(level).Observe(duration.Seconds())
}

// RecordWatchEvent records one emitted change event.
func (m *Metrics) RecordWatchEvent(kind string) {
	m.WatchEventsTotal.WithLabelValues(kind).Inc()
}

// Middleware creates a Gin middleware for HTTP metrics collection.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.RequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
