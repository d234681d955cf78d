// Package redis предоставляет общую реализацию клиента Redis.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notablelists/pkg/logger"
)

const (
	LogConnecting = "connecting to Redis"
	LogConnected  = "successfully connected to Redis"

	ErrPing = "failed to connect to Redis"
)

// NewClient создает клиент Redis и проверяет соединение.
// При nil cfg используется DefaultConfig; незаданные размер пула и таймаут берутся из нее же.
func NewClient(ctx context.Context, cfg *Config) (*redis.Client, error) {
	defaults := DefaultConfig()
	if cfg == nil {
		cfg = defaults
	}

	log := logger.Log(ctx).With(zap.String("address", cfg.Address()))
	log.Info(ctx, LogConnecting)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaults.Timeout
	}
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = defaults.PoolSize
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     poolSize,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		log.Error(ctx, ErrPing, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPing, err)
	}

	log.Info(ctx, LogConnected)
	return rdb, nil
}
