package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/marcelofdiniz/paysim/internal/adapter/http"
	"github.com/marcelofdiniz/paysim/internal/adapter/http/handler"
	"github.com/marcelofdiniz/paysim/internal/adapter/repository"
	redisRepo "github.com/marcelofdiniz/paysim/internal/adapter/repository/redis"
	"github.com/marcelofdiniz/paysim/internal/infrastructure/config"
	"github.com/marcelofdiniz/paysim/internal/infrastructure/logger"
	"github.com/marcelofdiniz/paysim/internal/infrastructure/metrics"
	"github.com/marcelofdiniz/paysim/internal/infrastructure/redis"
	"github.com/marcelofdiniz/paysim/internal/usecase"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize adapters
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := repository.NewULIDGenerator()
	appMetrics := metrics.New()

	// Initialize use cases
	simulationUC := usecase.NewSimulationUseCase(cache, idGen, appMetrics, cfg.SimulationTTL)

	// Initialize handlers
	simulationHandler := handler.NewSimulationHandler(simulationUC, cfg.DefaultAnnualRatePercent)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SimulationHandler: simulationHandler,
		HealthHandler:     healthHandler,
		Logger:            appLogger,
		IdempotencyStore:  idempotencyStore,
		RateLimitRPS:      cfg.RateLimitRPS,
		RateLimitBurst:    cfg.RateLimitBurst,
	})

	// Create server
	server := &http.Server{
		Addr:         listenAddr(cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func listenAddr(port string) string {
	return ":" + port
}
