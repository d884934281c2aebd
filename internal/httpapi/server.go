// Package httpapi exposes the calendar, check-in and leaderboard use cases
// as a JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rich365/rich365/internal/metrics"
	"github.com/rich365/rich365/internal/service"
)

// Services are the use cases served by the API.
type Services struct {
	Profiles    service.ProfileService
	Calendar    service.CalendarService
	Generation  service.GenerationService
	CheckIns    service.CheckInService
	Leaderboard service.LeaderboardService
	Export      service.ExportService
}

// Options configure the server.
type Options struct {
	// CORSOrigins lists allowed origins. Empty or "*" allows all.
	CORSOrigins []string
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	// ShutdownTimeout bounds graceful shutdown in Run.
	ShutdownTimeout time.Duration
}

type Server struct {
	svc     Services
	engine  *gin.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
	opts    Options
}

func New(svc Services, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{svc: svc, metrics: opts.Metrics, logger: opts.Logger, opts: opts}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.observe())
	engine.Use(cors.New(corsConfig(opts.CORSOrigins)))
	s.engine = engine
	s.routes()
	return s
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (s *Server) routes() {
	r := s.engine
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/leaderboard", s.leaderboardTop)
	api.POST("/goals/validate", s.validateGoal)

	users := api.Group("/users/:id")
	users.GET("/profile", s.getProfile)
	users.PUT("/profile", s.putProfile)
	users.GET("/calendar/:year/:month", s.monthActions)
	users.GET("/day/:date", s.dailyAction)
	users.GET("/themes/:year", s.yearThemes)
	users.POST("/generate/:year", s.generateYear)
	users.POST("/generate/:year/:month", s.generateMonth)
	users.POST("/plan/:year", s.generatePlan)
	users.GET("/goal-actions", s.goalActions)
	users.POST("/checkins", s.checkIn)
	users.GET("/checkins", s.checkInHistory)
	users.GET("/stats", s.stats)
	users.GET("/rank", s.rank)
	users.GET("/export/:year/:month", s.exportMonth)
}

// Handler returns the root handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// observe logs and counts each request by its route pattern.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		s.metrics.ObserveHTTP(c.Request.Method, route, status, time.Since(start))
		s.logger.Debug("http_request",
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
