package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"revenue/internal/app/config"
	"revenue/internal/app/currency"

	"github.com/go-redis/redis/v8"
)

const (
	servicePrefix = "revenue."
	jwtPrefix     = servicePrefix + "jwt."
	ratesPrefix   = servicePrefix + "rates."
)

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{cfg: cfg}

	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	client.client = redisClient
	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// WriteJWTToBlacklist кладёт токен в blacklist до истечения его срока
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, jwtPrefix+jwtStr, true, jwtTTL).Err()
}

// CheckJWTInBlacklist возвращает nil, если токен в blacklist, и redis.Nil, если нет
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, jwtPrefix+jwtStr).Err()
}

// IsBlacklisted - удобная обёртка для middleware
func (c *Client) IsBlacklisted(ctx context.Context, jwtStr string) (bool, error) {
	err := c.CheckJWTInBlacklist(ctx, jwtStr)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	return false, err
}

// GetRates читает закешированный ответ сервиса курсов для базовой валюты
func (c *Client) GetRates(ctx context.Context, base string) ([]byte, error) {
	data, err := c.client.Get(ctx, ratesPrefix+base).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, currency.ErrCacheMiss
	}
	return data, err
}

func (c *Client) SetRates(ctx context.Context, base string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, ratesPrefix+base, payload, ttl).Err()
}
