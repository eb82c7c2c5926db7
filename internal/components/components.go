package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Icer178/traffic-val/internal/api"
	"github.com/Icer178/traffic-val/internal/auth"
	"github.com/Icer178/traffic-val/internal/config"
	"github.com/Icer178/traffic-val/internal/redis"
	"github.com/Icer178/traffic-val/internal/service"
	"github.com/Icer178/traffic-val/internal/storage/blob"
	"github.com/Icer178/traffic-val/internal/storage/postgres"
)

const violationCacheTTL = 5 * time.Minute

type Components struct {
	logger       *slog.Logger
	HttpServer   *api.Server
	Postgres     *postgres.Postgres
	Redis        *redis.Redis
	NotifySender *service.NotifySender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	cache := redis.NewViolationCache(redisClient, violationCacheTTL)
	notifyQueue := redis.NewNotifyQueue(redisClient.Client, "notifications:queue")
	evidence := blob.NewLocalStore(cfg.Storage)
	tokens := auth.NewTokenManager(cfg.Auth)

	violationSvc := service.NewViolationService(storage.Violations(), evidence, notifyQueue, logger)
	cachedViolationSvc := service.NewCachedViolationService(violationSvc, cache, logger)
	statsSvc := service.NewStatsService(storage.Stats())
	userAdminSvc := service.NewUserAdminService(storage.Users(), logger)
	authSvc := service.NewAuthService(storage.Users(), tokens, logger)

	svc := service.NewService(cachedViolationSvc, statsSvc, userAdminSvc, authSvc)

	httpServer := api.NewServer(cfg, logger, svc, tokens)
	logger.Info("Initialized server")

	return &Components{
		logger:       logger,
		HttpServer:   httpServer,
		Postgres:     storage,
		Redis:        redisClient,
		NotifySender: service.NewNotifySender(logger, cfg.Webhook, notifyQueue),
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
