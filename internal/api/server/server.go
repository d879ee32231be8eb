package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voice2site/internal/api/errors"
	"voice2site/internal/api/middleware"
	v1routes "voice2site/internal/api/v1/routes"
	"voice2site/internal/api/v1/services"
	"voice2site/internal/app/metrics"
)

// Version is reported by the root endpoint; overridden at build time
var Version = "dev"

// Config represents API server configuration
type Config struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	Environment    string
	MaxUploadBytes int64
	CORSOrigins    []string
}

// Server represents the API server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
	errs       chan error
}

// NewServer creates a new API server. gatherer backs /metrics and may be nil.
func NewServer(
	config Config,
	siteService services.SiteService,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Server {
	// Set Gin mode based on environment
	switch config.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	corsConfig := middleware.DefaultCORSConfig()
	if len(config.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = config.CORSOrigins
	}

	// Apply global middleware
	// ErrorHandler sits innermost so handler panics become APIError responses
	router.Use(middleware.RequestID())
	router.Use(gin.Recovery())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.Metrics(m))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	container := &v1routes.ServiceContainer{
		SiteService:    siteService,
		MaxUploadBytes: config.MaxUploadBytes,
	}

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, container)
	}
	v1routes.RegisterLegacyRoutes(router, container)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "voice2site API",
			"status":  "running",
			"version": Version,
			"endpoints": gin.H{
				"health":      "/health",
				"metrics":     "/metrics",
				"sites_text":  "POST /api/v1/sites/text",
				"sites_audio": "POST /api/v1/sites/audio",
				"legacy":      "POST /generate-website",
				"legacy_json": "POST /generate",
			},
		})
	})

	router.NoRoute(func(c *gin.Context) {
		middleware.HandleError(c, errors.NewNotFoundError("route "+c.Request.URL.Path))
	})

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(config.Host, config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
		errs:       make(chan error, 1),
	}
}

// Start starts the API server in the background. Listen failures are delivered on Errors.
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		"host", s.config.Host,
		"port", s.config.Port,
		"environment", s.config.Environment,
	)

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("API server stopped", "error", err)
			s.errs <- err
		}
	}()

	s.logger.Info("API server started successfully",
		"address", listener.Addr().String(),
	)

	return nil
}

// Errors reports a failure of the serving goroutine
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
