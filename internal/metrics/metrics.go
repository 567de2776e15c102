// Package metrics exposes the Prometheus collectors for the HTTP surface and
// the mail dispatch pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedPath = "unmatched"

// Recorder owns a private registry so each router instance gets its own set
// of collectors.
type Recorder struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInflight        *prometheus.GaugeVec
	mailDispatchTotal   *prometheus.CounterVec
	formRejectionsTotal *prometheus.CounterVec
}

// NewRecorder builds and registers every collector. Process and Go runtime
// collectors are included when withRuntime is set.
func NewRecorder(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Número total de requests procesadas",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de los requests HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		httpInflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requests en vuelo por método y ruta",
		}, []string{"method", "path"}),
		mailDispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mail_dispatch_total",
			Help: "Correos entregados al transporte por tipo y resultado",
		}, []string{"kind", "result"}),
		formRejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_rejections_total",
			Help: "Formularios rechazados por datos obligatorios faltantes",
		}, []string{"form"}),
	}

	r.registry.MustRegister(
		r.httpRequestsTotal,
		r.httpRequestDuration,
		r.httpInflight,
		r.mailDispatchTotal,
		r.formRejectionsTotal,
	)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// RecordDispatch counts one message handed to the mail transport.
func (r *Recorder) RecordDispatch(kind, result string) {
	r.mailDispatchTotal.WithLabelValues(kind, result).Inc()
}

// RecordRejection counts one submission rejected for missing fields.
func (r *Recorder) RecordRejection(form string) {
	r.formRejectionsTotal.WithLabelValues(form).Inc()
}

// Middleware instruments every request. The path label is the matched route
// template so label cardinality stays bounded.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := strings.ToUpper(c.Request.Method)
		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}

		r.httpInflight.WithLabelValues(method, path).Inc()
		start := time.Now()

		defer func() {
			r.httpInflight.WithLabelValues(method, path).Dec()
			r.httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		}()

		c.Next()
	}
}
