package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealdb-explorer/backend/config"
	"github.com/pageza/mealdb-explorer/backend/internal/cache"
	"github.com/pageza/mealdb-explorer/backend/internal/database"
	"github.com/pageza/mealdb-explorer/backend/internal/logging"
	"github.com/pageza/mealdb-explorer/backend/internal/mealdb"
	"github.com/pageza/mealdb-explorer/backend/internal/middleware"
	"github.com/pageza/mealdb-explorer/backend/internal/router"
	"github.com/pageza/mealdb-explorer/backend/internal/server"
	"github.com/pageza/mealdb-explorer/backend/internal/service"
)

func main() {
	// A missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logging.SetDefault(logger)
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis backs the response cache and the matching rate limiter when reachable
	var redisClient *redis.Client
	if cfg.CacheBackend == config.CacheRedis || cfg.MatchRateLimit > 0 {
		redisClient, err = database.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, continuing without it")
			redisClient = nil
		} else {
			defer redisClient.Close()
			logger.Info("Connected to Redis")
		}
	}

	var responseCache cache.Cache
	switch {
	case cfg.CacheBackend == config.CacheRedis && redisClient != nil:
		responseCache = cache.NewRedis(redisClient, "")
	case cfg.CacheBackend == config.CacheNone:
		responseCache = cache.Nop{}
	default:
		responseCache = cache.NewMemory()
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.MatchRateLimit > 0 && redisClient != nil {
		rateLimiter = middleware.NewMatchRateLimiter(redisClient, cfg.MatchRateLimit, cfg.MatchRateWindow)
	}

	client := mealdb.NewClient(mealdb.Options{
		BaseURL:   cfg.MealDBBaseURL,
		Timeout:   cfg.MealDBTimeout,
		RateLimit: cfg.MealDBRateLimit,
		Burst:     cfg.MealDBRateBurst,
	})
	mealService := service.NewMealService(client, responseCache, cfg.CacheTTL)
	matcherService := service.NewMatcherService(mealService)

	handler := router.SetupRouter(router.Options{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Meals:          mealService,
		Matcher:        matcherService,
		RateLimiter:    rateLimiter,
	})
	srv := server.New(cfg, handler)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"addr":        srv.Addr(),
			"environment": cfg.Environment,
			"cache":       cfg.CacheBackend,
		}).Info("Starting server")
		errChan <- srv.Start()
	}()

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			logger.WithError(err).Fatal("Server error")
		}
		return
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	logger.Info("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.WithError(err).Fatal("Server shutdown error")
	}
	logger.Info("Server stopped")
}
