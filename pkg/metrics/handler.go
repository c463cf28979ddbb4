package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PrometheusMetricsHandler struct {
	gatherer prometheus.Gatherer
}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{gatherer: prometheus.DefaultGatherer}
}

// Handler serves every collector registered on the default registry.
func (h *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})
}
