package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tasatop/schedule-engine/internal/config"
	"github.com/tasatop/schedule-engine/internal/export"
	"github.com/tasatop/schedule-engine/internal/repository"
)

// Periodically refreshes the letterhead asset cache so exports never pay
// the upstream fetch cost on the request path.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	assetCache := repository.NewRedisAssetCache(redisClient, cfg.GetAssetCacheTTL())
	letterhead := export.NewLetterheadFetcher(cfg.Export.LetterheadURL, cfg.GetFetchTimeout(), assetCache, logger)

	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.GetFetchTimeout())
		defer cancel()

		if _, err := letterhead.Refresh(ctx); err != nil {
			logger.Warn("letterhead refresh failed", zap.Error(err))
			return
		}
		logger.Info("letterhead cache refreshed")
	}

	// Warm the cache once before handing off to cron
	refresh()

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Scheduler.Spec, refresh); err != nil {
		logger.Fatal("invalid scheduler spec",
			zap.String("spec", cfg.Scheduler.Spec),
			zap.Error(err))
	}

	c.Start()
	logger.Info("scheduler started", zap.String("spec", cfg.Scheduler.Spec))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down scheduler")

	<-c.Stop().Done()
	logger.Info("scheduler exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() || cfg.Logging.Format == "console" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
