package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/nbr5410/load-planner/internal/config"
	handlers "github.com/nbr5410/load-planner/internal/handlers/v1alpha1"
	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/pkg/log"
	"github.com/nbr5410/load-planner/pkg/metrics"
	"github.com/nbr5410/load-planner/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
	readHeaderTimeout       = 10 * time.Second
)

type Server struct {
	cfg       *config.Config
	sizingSrv *service.SizingService
	listener  net.Listener
}

// New returns a new instance of a load planner API server.
func New(
	cfg *config.Config,
	sizingSrv *service.SizingService,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:       cfg,
		sizingSrv: sizingSrv,
		listener:  listener,
	}
}

// NewRouter builds the API router with its middleware chain.
func NewRouter(cfg *config.Config, sizingSrv *service.SizingService, metricMiddleware *metrics.Middleware) chi.Router {
	router := chi.NewRouter()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.Service.CorsOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
			MaxAge:         300,
		}),
		middleware.RequestID,
		log.Logger(zap.L(), "http"),
		chiMiddleware.Recoverer,
	)

	handlers.NewServiceHandler(sizingSrv).Routes(router)

	return router
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	metricMiddleware := metrics.NewMiddleware("api_server", metrics.WithLatencyBuckets(s.cfg.Service.LatencyBuckets))
	metricMiddleware.MustRegisterDefault()

	srv := http.Server{
		Addr:              s.cfg.Service.Address,
		Handler:           NewRouter(s.cfg, s.sizingSrv, metricMiddleware),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
