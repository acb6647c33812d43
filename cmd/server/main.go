package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/config"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/api"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/api/handler"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/api/middleware"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/app"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/auth"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/logger"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/token"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/tracing"
)

// @title SIM Phong Thuy API
// @version 1.0
// @description Storefront for phone-number SIMs with feng shui scoring.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from /api/v1/admin/login
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Sentry.Environment}); err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}

	authenticator, err := auth.NewStaticAuthenticator(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		_ = a.Close(ctx)
		return err
	}
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	h := handler.New(a.Catalog, a.Orders, a.Scoring, authenticator, tokens)

	opts := api.Options{
		Mode:           cfg.Server.Mode,
		Swagger:        cfg.Server.Swagger,
		Sentry:         cfg.Sentry.DSN != "",
		ScoringLimiter: middleware.NewIPRateLimiter(cfg.RateLimit.ScoringPerMinute, cfg.RateLimit.ScoringBurst),
	}
	if cfg.Tracing.Enabled {
		opts.TracingService = cfg.Tracing.ServiceName
	}
	if cfg.RateLimit.ScoringPerMinute <= 0 {
		opts.ScoringLimiter = nil
	}
	router, err := api.NewRouter(h, tokens, opts)
	if err != nil {
		_ = a.Close(ctx)
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("db_driver", cfg.Database.Driver),
			zap.Bool("scoring_demo", a.Scoring.Demo()),
			zap.Bool("kafka", cfg.Kafka.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
		if serveErr != nil {
			logger.Error("server failed", zap.Error(serveErr))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	if err := a.Close(shutdownCtx); err != nil {
		logger.Warn("close app", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracing shutdown", zap.Error(err))
	}
	return serveErr
}
