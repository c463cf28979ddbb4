package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	RequestsCollectorName = "http_requests_total"
	LatencyCollectorName  = "http_request_duration_milliseconds"
	InFlightCollectorName = "http_requests_in_flight"

	// unmatchedRoute labels requests no route matched, so raw paths never become label values.
	unmatchedRoute = "unmatched"
)

// DefaultLatencyBuckets are the latency histogram buckets in milliseconds.
var DefaultLatencyBuckets = []float64{5, 25, 100, 300, 1000}

// Middleware is a handler that exposes prometheus metrics for the number of requests,
// the latency and the requests in flight, partitioned by status code, method and route pattern.
type Middleware struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	inFlight prometheus.Gauge
	buckets  []float64
}

type MiddlewareOption func(*Middleware)

// WithLatencyBuckets overrides DefaultLatencyBuckets. An empty list keeps the defaults.
func WithLatencyBuckets(buckets []float64) MiddlewareOption {
	return func(m *Middleware) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// NewMiddleware returns a new prometheus middleware for the provided server name.
func NewMiddleware(name string, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{buckets: DefaultLatencyBuckets}
	for _, opt := range opts {
		opt(m)
	}

	labels := prometheus.Labels{"server": name}

	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem:   loadPlanner,
		Name:        RequestsCollectorName,
		Help:        "Number of HTTP requests partitioned by status code, method and route.",
		ConstLabels: labels,
	}, []string{"code", "method", "route"})

	m.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Subsystem:   loadPlanner,
		Name:        LatencyCollectorName,
		Help:        "Time spent on the request partitioned by status code, method and route.",
		ConstLabels: labels,
		Buckets:     m.buckets,
	}, []string{"code", "method", "route"})

	m.inFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Subsystem:   loadPlanner,
		Name:        InFlightCollectorName,
		Help:        "Number of HTTP requests being served.",
		ConstLabels: labels,
	})

	return m
}

// Handler returns a handler for the middleware pattern.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		code := strconv.Itoa(ww.Status())
		m.requests.WithLabelValues(code, r.Method, route).Inc()
		m.latency.WithLabelValues(code, r.Method, route).Observe(float64(time.Since(start).Milliseconds()))
	}
	return http.HandlerFunc(fn)
}

// Collectors returns the collectors for a custom registry.
func (m *Middleware) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requests, m.latency, m.inFlight}
}

// MustRegisterDefault registers the collectors to the default registerer.
func (m *Middleware) MustRegisterDefault() {
	prometheus.MustRegister(m.Collectors()...)
}
