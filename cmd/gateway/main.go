package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/config"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/lock"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/money"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/laybuy-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/laybuy-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/laybuy-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/laybuy-gateway/internal/worker"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting laybuy gateway",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"sandbox", cfg.Laybuy.UseSandbox,
	)

	if !cfg.Laybuy.Configured() {
		logger.Warn("laybuy credentials missing; provider operations will be refused")
	}

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	orderRepo := postgres.NewOrderRepository(db)
	attributeRepo := postgres.NewAttributeRepository(db)
	currencyRepo := postgres.NewCurrencyRepository(db)
	cartRepo := postgres.NewCartRepository(db)

	formatter, err := money.NewFormatter(cfg.Storefront.Locale)
	if err != nil {
		logger.Error("invalid storefront locale", "locale", cfg.Storefront.Locale, "error", err)
		os.Exit(1)
	}

	var locker application.OrderLocker
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		locker = lock.NewRedisLocker(redisClient, cfg.Redis.LockTTL, logger)
		logger.Info("using redis order lock", "addr", cfg.Redis.Addr)
	} else {
		locker = lock.NewLocalLocker()
		logger.Info("using in-process order lock")
	}

	paymentService := services.NewPaymentService(
		services.Dependencies{
			Orders:       orderRepo,
			Attributes:   attributeRepo,
			Transactions: postgres.NewTransactionCoordinator(db),
			Currencies:   currencyRepo,
			Carts:        cartRepo,
			Formatter:    formatter,
			Provider:     laybuy.NewClient(cfg.Laybuy),
			Locker:       locker,
		},
		cfg.Laybuy,
		cfg.Storefront,
		logger,
	)

	h := handlers.NewHandlers(paymentService, cfg.Laybuy, logger)

	doc, err := api.GetSwagger()
	if err != nil {
		logger.Error("failed to load api document", "error", err)
		os.Exit(1)
	}
	validator, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(h, api.StdHTTPServerOptions{
		BaseRouter: mux,
		OperationMiddlewares: map[string][]api.MiddlewareFunc{
			api.OperationLaybuyCallback: {middleware.RateLimit(cfg.RateLimit, logger)},
		},
		ErrorHandlerFunc: rest.ParamErrorHandler(logger),
	})

	handler := validator(mux)
	handler = middleware.Timeout(cfg.Server.WriteTimeout)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	reconciler := worker.NewRefundReconciler(
		attributeRepo,
		paymentService,
		cfg.Worker.Interval,
		cfg.Worker.BatchSize,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go reconciler.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
