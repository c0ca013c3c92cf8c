// @title Video Quiz API
// @version 1.0
// @description JSON API for turning videos indexed by the Reka Vision service into quizzes.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8111
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-quiz/internal/adapter"
	"video-quiz/internal/adapter/vision"
	"video-quiz/internal/cache"
	"video-quiz/internal/config"
	"video-quiz/internal/domain"
	"video-quiz/internal/logger"
	"video-quiz/internal/server"
	"video-quiz/internal/service"
	"video-quiz/internal/validation"

	_ "video-quiz/cmd/api/docs"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	var cacheAdapter domain.Cache
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Using Redis cache", zap.String("address", cfg.Redis.Address))
	} else {
		cacheAdapter = adapter.NewMemoryCacheAdapter()
		appLogger.Info("Using in-memory cache")
	}

	visionClient := vision.NewClient(cfg.Upstream)
	defer visionClient.Close()

	validator := validation.NewValidator()
	videoService := service.NewVideoService(visionClient, cacheAdapter, cfg.Cache.VideoTTL, validator)
	quizService := service.NewQuizService(visionClient, validator)

	app := server.NewApp(cfg, server.Dependencies{
		Videos:  videoService,
		Quizzes: quizService,
		Cache:   cacheAdapter,
	})

	go func() {
		appLogger.Info("Starting server",
			zap.String("addr", cfg.ListenAddr()),
			zap.String("env", cfg.Logger.Env),
			zap.String("upstream", cfg.Upstream.BaseURL),
			zap.Duration("video_cache_ttl", cfg.Cache.VideoTTL))
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
