package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tasatop/schedule-engine/internal/config"
	"github.com/tasatop/schedule-engine/internal/export"
	"github.com/tasatop/schedule-engine/internal/handler"
	"github.com/tasatop/schedule-engine/internal/repository"
	"github.com/tasatop/schedule-engine/internal/service"
	"github.com/tasatop/schedule-engine/pkg/response"
)

func main() {
	// Load .env if present, then configuration
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

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize caches
	scheduleCache := repository.NewRedisScheduleCache(redisClient, cfg.GetScheduleCacheTTL())
	assetCache := repository.NewRedisAssetCache(redisClient, cfg.GetAssetCacheTTL())

	// Initialize export pipeline
	letterhead := export.NewLetterheadFetcher(cfg.Export.LetterheadURL, cfg.GetFetchTimeout(), assetCache, logger)
	exporter := export.NewExporter(letterhead, logger)

	// Initialize service and handlers
	scheduleService := service.NewScheduleService(scheduleCache, logger)
	scheduleHandler := handler.NewScheduleHandler(scheduleService, exporter, logger)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Setup routes
	router := setupRoutes(scheduleHandler, healthHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	// Warm the letterhead cache in the background; exports degrade to a
	// text letterhead until the image is available.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.GetFetchTimeout())
		defer cancel()
		if _, err := letterhead.Fetch(ctx); err != nil {
			logger.Warn("letterhead warm-up failed", zap.Error(err))
		}
	}()

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() || cfg.Logging.Format == "console" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(scheduleHandler *handler.ScheduleHandler, healthHandler *handler.HealthHandler, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(response.RequestIDMiddleware)
	router.Use(response.LoggingMiddleware(logger))
	router.Use(response.CORSMiddleware)

	// Health and metrics
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/schedules", scheduleHandler.Generate).Methods("POST")
	api.HandleFunc("/schedules/export", scheduleHandler.Export).Methods("POST")

	return router
}
