package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tournevent/taxservice/internal/processor"
	"github.com/tournevent/taxservice/internal/telemetry"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

// Server is the HTTP server for the tax service.
type Server struct {
	port    int
	service processor.Service
	logger  *otelzap.Logger
	metrics *telemetry.Metrics
	clock   clockwork.Clock
	handler http.Handler
}

// Config holds server configuration.
type Config struct {
	Port int

	// Registry receives the service metrics and backs /metrics.
	// Defaults to the global Prometheus registry.
	Registry *prometheus.Registry

	// Clock measures request durations. Defaults to the real clock.
	Clock clockwork.Clock
}

// New creates a new server instance.
func New(cfg Config, service processor.Service, logger *otelzap.Logger) *Server {
	registerer := prometheus.DefaultRegisterer
	metricsHandler := promhttp.Handler()
	if cfg.Registry != nil {
		registerer = cfg.Registry
		metricsHandler = promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	s := &Server{
		port:    cfg.Port,
		service: service,
		logger:  logger,
		metrics: telemetry.NewMetrics(registerer),
		clock:   clock,
	}

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", s.handleHealth)

	// Prometheus metrics
	mux.Handle("GET /metrics", metricsHandler)

	// Tax endpoints
	mux.HandleFunc("POST /tax/calculate", s.handleCalculateTax)
	mux.HandleFunc("POST /rate/get", s.handleGetRate)

	s.handler = withRequestID(mux)
	return s
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting server", zap.Int("port", s.port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
