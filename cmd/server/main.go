// Package main is the entry point for the telegram-dashboard HTTP gateway.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apiclient"
	"github.com/ppopeskul/telegram-dashboard/internal/cache"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/credentials"
	"github.com/ppopeskul/telegram-dashboard/internal/handler"
	"github.com/ppopeskul/telegram-dashboard/internal/infrastructure/migrate"
	"github.com/ppopeskul/telegram-dashboard/internal/media"
	"github.com/ppopeskul/telegram-dashboard/internal/middleware"
	"github.com/ppopeskul/telegram-dashboard/internal/repository"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	var redisClient *redis.Client
	if cfg.Credentials.Store == "redis" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	var repo repository.Repository
	if cfg.Database.Enabled() {
		if cfg.Database.AutoMigrate {
			runner := migrate.NewRunner(&migrate.Config{
				DatabaseURL:    cfg.Database.GetURL(),
				MigrationsPath: cfg.Database.MigrationsPath,
			}, logger.Named("migrate"))
			if err := runner.Up(); err != nil {
				logger.Fatal("Failed to apply migrations", zap.Error(err))
			}
		}

		db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", zap.Error(err))
			}
		}()

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		repo = repository.NewRepository(db)
	} else if cfg.Receiver.Enabled {
		logger.Warn("Event receiver is enabled but no database is configured; inbound events will be rejected")
	}

	var store credentials.Store
	switch cfg.Credentials.Store {
	case "memory":
		store = credentials.NewMemoryStore()
	case "redis":
		store = credentials.NewRedisStore(redisClient, cfg.Credentials.Profile)
	default:
		store = credentials.NewFileStore(cfg.Credentials.File, cfg.Credentials.Profile)
	}

	creds := credentials.NewManager(store, logger.Named("credentials"))
	if err := creds.Init(ctx); err != nil {
		logger.Warn("Stored credentials could not be loaded, login required", zap.Error(err))
	}

	uploader, err := media.NewUploader(&cfg.Media, logger.Named("media"))
	if err != nil {
		logger.Fatal("Failed to configure media uploader", zap.Error(err))
	}

	deps := service.Deps{
		Client:      apiclient.New(&cfg.Backend, creds, logger.Named("apiclient")),
		Credentials: creds,
		Cache:       cache.New(&cfg.Cache, logger.Named("cache")),
		Repo:        repo,
		Uploader:    uploader,
	}
	if redisClient != nil {
		deps.Redis = redisClient
	}

	svc := service.NewService(cfg, deps, logger)
	defer svc.Close()

	// Auth watches poll with the purged token; a new login starts fresh ones.
	creds.OnPurge(func(reason string) {
		cancelled := svc.Sessions.CancelAll()
		logger.Info("Auth watches cancelled after credentials purge",
			zap.String("reason", reason),
			zap.Int("watches", cancelled))
	})

	chain, stopMiddleware := middleware.Chain(middleware.NewConfig(&cfg.Middleware, logger.Named("http")))
	defer stopMiddleware()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      setupRouter(handler.NewHandler(svc, logger.Named("handler")), chain),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", srv.Addr),
			zap.String("backend", cfg.Backend.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
