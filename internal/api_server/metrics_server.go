package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nbr5410/load-planner/pkg/metrics"
)

// MetricServer exposes /metrics and /health on a listener of its own.
type MetricServer struct {
	httpServer *http.Server
	listener   net.Listener
}

func NewMetricServer(listener net.Listener) *MetricServer {
	router := chi.NewRouter()
	router.Use(chiMiddleware.Recoverer)
	router.Handle("/metrics", metrics.NewPrometheusMetricsHandler().Handler())
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return &MetricServer{
		listener: listener,
		httpServer: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down within gracefulShutdownTimeout.
func (m *MetricServer) Run(ctx context.Context) error {
	logger := zap.S().Named("metrics_server")

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()
		if err := m.httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warnw("metrics server shutdown", "error", err)
		}
	}()

	logger.Infow("serving metrics", "address", m.listener.Addr().String())
	err := m.httpServer.Serve(m.listener)
	if err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	logger.Info("metrics server terminated")
	return nil
}
