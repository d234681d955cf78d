// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "notablelists/pkg/config"
	"notablelists/pkg/logger"
)

const (
	ServiceName = "notablelists"

	// EnvFile - путь к необязательному .env файлу.
	EnvFile = ".env"

	LogConfigLoaded     = "notes configuration loaded"
	ErrFailedLoadConfig = "failed to load notes configuration"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Remote   RemoteConfig   `yaml:"remote"`
	HTTP     HTTPConfig     `yaml:"http"`
	Sync     SyncConfig     `yaml:"sync"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из .env файла (если есть) и переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, EnvFile)
}

// LoadFrom загружает конфигурацию, используя указанный .env файл.
func LoadFrom(ctx context.Context, envPath string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.String("remote_base_url", cfg.Remote.BaseURL),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.Duration("sync_interval", cfg.Sync.Interval),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return cfg, nil
}
