package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/obinna/walletcore/internal/adapter/http"
	"github.com/obinna/walletcore/internal/adapter/http/handler"
	"github.com/obinna/walletcore/internal/adapter/http/middleware"
	postgresRepo "github.com/obinna/walletcore/internal/adapter/repository/postgres"
	redisRepo "github.com/obinna/walletcore/internal/adapter/repository/redis"
	"github.com/obinna/walletcore/internal/infrastructure/auth"
	"github.com/obinna/walletcore/internal/infrastructure/blacklist"
	"github.com/obinna/walletcore/internal/infrastructure/config"
	"github.com/obinna/walletcore/internal/infrastructure/logger"
	"github.com/obinna/walletcore/internal/infrastructure/metrics"
	"github.com/obinna/walletcore/internal/infrastructure/postgres"
	"github.com/obinna/walletcore/internal/infrastructure/redis"
	"github.com/obinna/walletcore/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories and infrastructure
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	blacklistClient := blacklist.NewClient(cfg.BlacklistBaseURL, cfg.BlacklistAPIKey, cfg.BlacklistTimeout)

	// Use cases
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)
	walletUC := usecase.NewWalletUseCase(ledgerUC, usecase.NewAccountLock(), idGen, usecase.SystemAccounts{
		Funding:    cfg.FundingAccount,
		Withdrawal: cfg.WithdrawalAccount,
	}, log)
	userUC := usecase.NewUserUseCase(userRepo, walletUC, jwtManager, blacklistClient, cache, idGen, log)

	// Handlers
	authHandler := handler.NewAuthHandler(userUC, metrics.Default(), log)
	walletHandler := handler.NewWalletHandler(userUC, ledgerUC, metrics.Default(), log)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:      authHandler,
		WalletHandler:    walletHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(5, 10),
		Logger:           log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
