package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tweetsink/ingest-service/internal/config"
	"github.com/tweetsink/ingest-service/internal/dedup"
	"github.com/tweetsink/ingest-service/internal/handler"
	"github.com/tweetsink/ingest-service/internal/rabbitmq"
	"github.com/tweetsink/ingest-service/internal/repository"
	"github.com/tweetsink/ingest-service/internal/repository/postgres"
	"github.com/tweetsink/ingest-service/internal/server"
	"github.com/tweetsink/ingest-service/internal/service"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func runServe() error {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Sugar().Fatalf("failed to load config: %s", err.Error())
	}

	db, err := postgres.DB(ctx, cfg.DB)
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to postgres: %s", err.Error())
	}
	defer db.Close()
	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Fatalf("failed to ping postgres: %s", err.Error())
	}
	logger.Info("Successfully connected to PostgreSQL")

	if cfg.DB.AutoSchema {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			logger.Sugar().Fatalf("failed to create schema: %s", err.Error())
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()

		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			logger.Sugar().Fatalf("failed to ping redis: %s", err.Error())
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)
	}

	seen, err := newSeenSet(cfg.Cache, rdb)
	if err != nil {
		logger.Sugar().Fatalf("failed to build tweet id cache: %s", err.Error())
	}

	var publisher service.Publisher
	if cfg.RabbitMQConnStr != "" {
		mq, err := rabbitmq.New(cfg.RabbitMQConnStr)
		if err != nil {
			logger.Sugar().Fatalf("failed to connect to rabbitmq: %s", err.Error())
		}
		defer mq.Close()
		publisher = mq
		logger.Info("Successfully connected to RabbitMQ")
	}

	repos := repository.New(db, rdb)
	services := service.New(logger, repos, seen, publisher)

	loaded, err := services.Tweet.WarmUp(ctx)
	if err != nil {
		logger.Sugar().Fatalf("failed to initialize tweet id cache: %s", err.Error())
	}
	logger.Sugar().Infof("Tweet id cache initialized with %d tweets (driver: %s)", loaded, cfg.Cache.Driver)

	handlers := handler.New(services, logger, handler.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		IngestSecret:   cfg.IngestSecret,
		RateLimit:      cfg.RateLimit,
	})

	serverConfig := cfg.Server
	serverConfig.Handler = handlers.InitRoutes()
	srv := server.New(serverConfig)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	logger.Sugar().Infof("Server started on port %s", serverConfig.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
	case err := <-errCh:
		if err != nil {
			logger.Sugar().Errorf("http server stopped: %s", err.Error())
		}
	}

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}

	if cfg.Cache.Driver == dedup.DRIVER_MEMORY || cfg.Cache.ClearOnShutdown {
		if err := seen.Clear(shutdownCtx); err != nil {
			logger.Sugar().Errorf("failed to clear tweet id cache: %s", err.Error())
		}
		logger.Info("Tweet id cache cleared")
	}

	return nil
}

func newSeenSet(cfg config.CacheConfig, rdb *redis.Client) (dedup.Set, error) {
	switch cfg.Driver {
	case "", dedup.DRIVER_MEMORY:
		return dedup.NewMemorySet(), nil
	case dedup.DRIVER_REDIS:
		if rdb == nil {
			return nil, errors.New("cache driver redis requires REDIS_ADDR")
		}
		return dedup.NewRedisSet(rdb), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

func runSchema(ctx context.Context) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	db, err := postgres.DB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	fmt.Println("schema is up to date")
	return nil
}
