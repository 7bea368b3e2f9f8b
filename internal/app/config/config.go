package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	JWT         JWTConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
	Currency    CurrencyConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type CurrencyConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envJWTSecret = "JWT_SECRET"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"
)

const (
	defaultCurrencyURL = "https://api.exchangerate-api.com/v4/latest"
	defaultSessionTTL  = 30 * time.Minute
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	viper.SetDefault("ServiceHost", "0.0.0.0")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("Currency.BaseURL", defaultCurrencyURL)
	viper.SetDefault("Currency.Timeout", 5*time.Second)
	viper.SetDefault("Currency.CacheTTL", time.Hour)

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// секрет JWT берём из env, сессия живёт 30 минут
	cfg.JWT.Token = os.Getenv(envJWTSecret)
	if cfg.JWT.Token == "" {
		log.Warn("JWT_SECRET is not set, using insecure development secret")
		cfg.JWT.Token = "dev-secret"
	}
	if cfg.JWT.ExpiresIn == 0 {
		cfg.JWT.ExpiresIn = defaultSessionTTL
	}
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256

	// инициализация Redis конфигурации из env (пустой хост - Redis отключён)
	cfg.Redis.Host = os.Getenv(envRedisHost)
	if cfg.Redis.Host != "" {
		cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// MinIO: env переопределяет значения из файла
	if v := os.Getenv(envMinIOEndpoint); v != "" {
		cfg.MinIO.Endpoint = v
	}
	if v := os.Getenv(envMinIOAccessKey); v != "" {
		cfg.MinIO.AccessKey = v
	}
	if v := os.Getenv(envMinIOSecretKey); v != "" {
		cfg.MinIO.SecretKey = v
	}
	if v := os.Getenv(envMinIOBucket); v != "" {
		cfg.MinIO.Bucket = v
	}
	if v := os.Getenv(envMinIOUseSSL); v != "" {
		cfg.MinIO.UseSSL, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("minio ssl flag must be bool value: %w", err)
		}
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "revenue-reports"
	}

	log.Info("config parsed")

	return cfg, nil
}
