package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/rezonia/vatin-checker/internal/logger"
	"github.com/rezonia/vatin-checker/internal/metrics"
	"github.com/rezonia/vatin-checker/internal/validation"
)

// DefaultMaxBatchSize bounds the batch endpoint when Config.MaxBatchSize is unset
const DefaultMaxBatchSize = 1000

// Config holds server configuration
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Debug           bool
	MetricsEnabled  bool
	MaxBatchSize    int
	DisplayLanguage language.Tag
	Logger          *slog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	validator *validation.Validator
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.MaxBatchSize <= 0 {
		config.MaxBatchSize = DefaultMaxBatchSize
	}

	log := config.Logger
	if log == nil {
		log = logger.Discard()
	}

	s := &Server{
		config:    config,
		router:    gin.New(),
		validator: validation.New(validation.WithDisplayLanguage(config.DisplayLanguage)),
		log:       log,
	}
	if config.MetricsEnabled {
		s.metrics = metrics.New()
	}

	s.router.Use(gin.Recovery(), s.requestID(), s.requestLogger())
	if s.metrics != nil {
		s.router.Use(s.observe())
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	}

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/vatin/validate", s.handleValidate)
		v1.POST("/vatin/validate/batch", s.handleValidateBatch)

		v1.GET("/countries", s.handleCountries)

		v1.GET("/structures", s.handleStructures)
		v1.GET("/structures/:prefix", s.handleStructureByPrefix)
		v1.POST("/structures/match", s.handleStructureMatch)

		v1.GET("/rates", s.handleRates)
		v1.GET("/rates/:id", s.handleRate)
		v1.POST("/rates/:id/calculate", s.handleCalculate)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// ShutdownTimeout. It returns nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("server listening", slog.String("address", s.config.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		timeout := s.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the collectors of the server, nil when metrics are disabled
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
