package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/carefund/carecalc/internal/calculation"
	"github.com/carefund/carecalc/internal/config"
	"github.com/carefund/carecalc/internal/directory"
)

// Server wires the eligibility engine, registries and directory behind the
// HTTP surface. The engine itself does no I/O; everything external happens
// here, before or after the calculation.
type Server struct {
	cfg       *Config
	logger    *zap.Logger
	engine    *calculation.Engine
	registry  *config.Registry
	directory *directory.Directory
	metrics   *Metrics
	router    chi.Router
	promReg   *prometheus.Registry
}

// New constructs a fully wired server.
func New(cfg *Config, logger *zap.Logger, registry *config.Registry, dir *directory.Directory) *Server {
	promReg := prometheus.NewRegistry()
	s := &Server{
		cfg:       cfg,
		logger:    logger,
		engine:    calculation.NewEngine(registry.Catalog()),
		registry:  registry,
		directory: dir,
		metrics:   NewMetrics(promReg),
		promReg:   promReg,
	}
	s.router = s.buildRouter()
	return s
}

// NewLogger builds the service logger for the configured environment.
func NewLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogging)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assessments", s.handleAssess)
		r.Get("/thresholds", s.handleThresholds)
		r.Get("/disregards", s.handleDisregards)
		r.Get("/authorities/{postcode}", s.handleAuthorityLookup)
	})
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.promReg, promhttp.HandlerOpts{}))
	return r
}

// requestLogging tags each request with an id and records route metrics.
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		ww.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(ww, r)

		s.metrics.RequestsTotal.WithLabelValues(r.URL.Path, http.StatusText(ww.status)).Inc()
		s.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.HTTP.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.HTTP.ReadTimeout,
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
		IdleTimeout:  s.cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
