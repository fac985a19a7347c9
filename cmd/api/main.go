package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-payment-reconciler/config"
	httpHandler "shop-payment-reconciler/internal/adapter/http/handler"
	"shop-payment-reconciler/internal/adapter/payhero"
	pgStorage "shop-payment-reconciler/internal/adapter/storage/postgres"
	redisStorage "shop-payment-reconciler/internal/adapter/storage/redis"
	"shop-payment-reconciler/internal/core/ports"
	"shop-payment-reconciler/internal/scheduler"
	"shop-payment-reconciler/internal/service"
	"shop-payment-reconciler/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Shop Payment Reconciler")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	shopRepo := pgStorage.NewShopRepo(pool)
	paymentRepo := pgStorage.NewPaymentRequestRepo(pool)
	historyRepo := pgStorage.NewWalletHistoryRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	dedupCache := redisStorage.NewDedupCache(rdb)

	// Initialize aggregator client
	payheroClient := payhero.NewClient(cfg.Payhero, &http.Client{Timeout: cfg.Payhero.Timeout}, log)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	reconcileSvc := service.NewReconciliationService(
		shopRepo,
		paymentRepo,
		historyRepo,
		dedupCache,
		transactor,
		log,
	)
	renewalSvc := service.NewRenewalService(shopRepo, historyRepo, transactor, log)
	channelSvc := service.NewChannelService(shopRepo, payheroClient, cfg.Payhero, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Start the daily renewal sweep
	sweeper := scheduler.New(renewalSvc, cfg.Sweep.Timeout, log)
	if err := sweeper.Start(cfg.Sweep.Schedule); err != nil {
		log.Fatal().Err(err).Msg("Failed to start renewal scheduler")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ReconcileSvc:   reconcileSvc,
		ChannelSvc:     channelSvc,
		TokenSvc:       tokenSvc,
		CallbackSecret: cfg.Payhero.CallbackSecret,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
