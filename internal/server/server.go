package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/config"
	"github.com/snnyvrz/library-api/internal/docs"
	"github.com/snnyvrz/library-api/internal/handler"
	"github.com/snnyvrz/library-api/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	engine  *gin.Engine
	limiter *middleware.RateLimiter
}

// New builds the gin engine with middleware, health probes, API routes and
// the swagger UI.
func New(cfg *config.Config, log *slog.Logger, db *gorm.DB, startTime time.Time, version string) *Server {
	gin.SetMode(cfg.GinMode)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	e := gin.New()
	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})
	e.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Recovery(log),
	)

	handler.NewHealthHandler(db, startTime, version).RegisterRoutes(e)

	api := e.Group("", limiter.Middleware())
	handler.RegisterRoutes(api, handler.NewRepositories(db))

	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.BasePath = "/"
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		cfg:     cfg,
		log:     log,
		engine:  e,
		limiter: limiter,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	// the sweeper never outlives Run, even when ListenAndServe fails
	sweepCtx, stopSweep := context.WithCancel(ctx)
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		s.sweepLimiter(sweepCtx)
	}()
	defer func() {
		stopSweep()
		<-sweepDone
	}()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", "addr", srv.Addr, "mode", s.cfg.GinMode, "driver", s.cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) sweepLimiter(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.limiter.Sweep()
		}
	}
}
