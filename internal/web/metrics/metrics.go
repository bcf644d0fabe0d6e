// Package metrics collects and exposes Prometheus metrics for the web
// service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service's Prometheus instruments. Services record
// business events through it; the HTTP middleware records request metrics.
type Collector struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	logins        *prometheus.CounterVec
	registrations prometheus.Counter
	storeErrors   *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its instruments on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "midas_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "midas_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "midas_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "midas_registrations_total",
			Help: "Accounts registered.",
		}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "midas_store_errors_total",
			Help: "Backend store failures by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.logins,
		c.registrations,
		c.storeErrors,
	)

	return c
}

// RecordLogin counts a login attempt; outcome is "success" or "failure".
func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

// RecordRegistration counts a completed account registration.
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordStoreError counts a backend failure, e.g. "schema_missing".
func (c *Collector) RecordStoreError(reason string) {
	c.storeErrors.WithLabelValues(reason).Inc()
}

// Middleware records request count and latency for every matched route. The
// route label uses the mux pattern, not the raw path, to bound cardinality.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		c.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		c.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Handler returns the Prometheus scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
