package api

import (
	"context"
	"fmt"

	"revenue/internal/app/config"
	"revenue/internal/app/currency"
	"revenue/internal/app/dsn"
	"revenue/internal/app/handler"
	"revenue/internal/app/middleware"
	"revenue/internal/app/redis"
	"revenue/internal/app/repository"
	"revenue/internal/app/service"
	"revenue/internal/app/storage"
	"revenue/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() error {
	logrus.Info("Starting server")
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return fmt.Errorf("DSN string is empty, check DB_* variables")
	}
	repo, err := repository.New(dsnStr)
	if err != nil {
		return fmt.Errorf("ошибка инициализации репозитория: %w", err)
	}

	// Redis необязателен: без него нет отзыва токенов и кэша курсов
	var (
		jwtBlacklist   middleware.Blacklist
		tokenBlacklist handler.TokenBlacklist
		ratesCache     currency.Cache
	)
	if cfg.Redis.Host != "" {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("ошибка подключения к redis: %w", err)
		}
		jwtBlacklist, tokenBlacklist, ratesCache = redisClient, redisClient, redisClient
	} else {
		logrus.Warn("REDIS_HOST is not set, logout and rate cache are disabled")
	}

	// MinIO нужен только для выгрузки отчётов
	var reports service.ReportStore
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			logrus.Warnf("MinIO is unavailable, report export disabled: %v", err)
		} else {
			reports = minioClient
		}
	} else {
		logrus.Warn("MinIO endpoint is not set, report export disabled")
	}

	log := logrus.StandardLogger()
	rates := currency.NewLookup(cfg.Currency.BaseURL, cfg.Currency.Timeout, ratesCache, cfg.Currency.CacheTTL, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtBlacklist, cfg)
	authHandler := handler.NewAuthHandler(repo, tokenBlacklist, authMiddleware, cfg)
	apiHandler := handler.NewAPIHandler(
		service.NewClientService(repo, log),
		service.NewSalesService(repo, repo, repo, repo, rates, log),
		service.NewRevenueService(repo, repo, rates, reports, log),
		authHandler,
	)

	application := pkg.NewApp(cfg, gin.Default(), apiHandler, authMiddleware)
	return application.RunApp()
}
