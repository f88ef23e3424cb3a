package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/config"
	"github.com/coolgym/coolgym-bff-go/internal/handler"
	"github.com/coolgym/coolgym-bff-go/internal/infra/backend"
	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
	"github.com/coolgym/coolgym-bff-go/internal/infra/resilience"
	"github.com/coolgym/coolgym-bff-go/internal/infra/session"
	"github.com/coolgym/coolgym-bff-go/internal/money"
	"github.com/coolgym/coolgym-bff-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("backend_url", cfg.BackendBaseURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.String("locale", cfg.Locale),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "coolgym-bff")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Money formatting ---
	formatter := money.NewFormatter(cfg.Locale)

	// --- Session ---
	sess := session.New()

	// --- Backend client ---
	cb := resilience.NewCircuitBreaker("coolgym-api")
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	api := backend.NewClient(httpClient, cfg.BackendBaseURL, formatter.Locale(), sess, cb, logger)

	// --- Services ---
	userSvc := service.NewUserService(api, cfg.MaxConcurrency, metrics, logger)
	statementSvc := service.NewAccountStatementService(api, metrics, logger)

	svcs := handler.Services{
		Auth:        service.NewAuthService(api, sess, metrics, logger),
		Statements:  statementSvc,
		Equipment:   service.NewEquipmentService(api, metrics, logger),
		Company:     service.NewCompanyService(api, userSvc, cfg.MaxConcurrency, metrics, logger),
		Maintenance: service.NewMaintenanceService(api, metrics, logger),
		Profile:     service.NewProfileService(api, metrics, logger),
		Provider:    service.NewProviderService(api, statementSvc, metrics, logger),
		Rent:        service.NewRentService(api, metrics, logger),
		Money:       formatter,
	}

	// --- Router ---
	router := handler.NewRouter(svcs, sess, cfg.WebOrigin, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
