// Package metrics holds the Prometheus collectors of the classify service
// A nil *Collector is valid and records nothing
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name
const Namespace = "langid"

// Request outcomes
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomePanic = "panic"
)

// Collector owns a registry and the service metrics registered on it
type Collector struct {
	registry *prometheus.Registry

	connectionsTotal  prometheus.Counter
	connectionsActive prometheus.Gauge
	bytesReceived     prometheus.Counter
	requests          *prometheus.CounterVec
	frameErrors       *prometheus.CounterVec
	classifyDuration  *prometheus.HistogramVec
}

// New builds a Collector on a fresh registry
// Go runtime and process collectors are included when withRuntime is true
func New(withRuntime bool) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		connectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "connections_total",
			Help:      "Total TCP connections accepted",
		}),
		connectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "connections_active",
			Help:      "TCP connections currently being handled",
		}),
		bytesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "bytes_received_total",
			Help:      "Bytes of framed requests received",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "requests_total",
			Help:      "Classification requests by backend and outcome",
		}, []string{"backend", "outcome"}),
		frameErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frame_errors_total",
			Help:      "Connections closed before dispatch, by error kind",
		}, []string{"kind"}),
		classifyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "classify_duration_seconds",
			Help:      "Backend classification latency",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"backend"}),
	}
	c.registry.MustRegister(
		c.connectionsTotal,
		c.connectionsActive,
		c.bytesReceived,
		c.requests,
		c.frameErrors,
		c.classifyDuration,
	)
	if withRuntime {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return c
}

// Registry exposes the underlying registry for tests and extra collectors
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ConnOpened records an accepted connection
func (c *Collector) ConnOpened() {
	if c == nil {
		return
	}
	c.connectionsTotal.Inc()
	c.connectionsActive.Inc()
}

// ConnClosed records a released connection
func (c *Collector) ConnClosed() {
	if c == nil {
		return
	}
	c.connectionsActive.Dec()
}

// BytesReceived adds n framed bytes
func (c *Collector) BytesReceived(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.bytesReceived.Add(float64(n))
}

// FrameError records a connection dropped during framing
func (c *Collector) FrameError(kind string) {
	if c == nil {
		return
	}
	c.frameErrors.WithLabelValues(kind).Inc()
}

// Request records one dispatched request
func (c *Collector) Request(backend, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(backend, outcome).Inc()
	c.classifyDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
