// Package postgres содержит подключение к PostgreSQL через pgxpool и запуск миграций.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"notablelists/pkg/logger"
)

const (
	LogConnecting        = "connecting to local Postgres store"
	LogConnected         = "local Postgres store is ready"
	LogClosing           = "closing Postgres connection pool"
	LogMigrationsApplied = "database migrations successfully applied"
)

const (
	ErrParseConfig  = "failed to parse connection config"
	ErrPoolConfig   = "invalid pool size"
	ErrCreatePool   = "failed to create connection pool"
	ErrPingDatabase = "failed to ping database"
)

// PoolConfig описывает пул соединений. Нулевые длительности оставляют значения pgxpool.
type PoolConfig struct {
	DSN               string
	MinConns          int
	MaxConns          int
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// Database представляет соединение с Postgres.
type Database struct {
	pool *pgxpool.Pool
}

// New создает пул соединений и проверяет доступность базы.
func New(ctx context.Context, cfg PoolConfig) (*Database, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogConnecting)

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		log.Error(ctx, ErrParseConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrParseConfig, err)
	}

	if cfg.MaxConns < 1 || cfg.MinConns < 0 || cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("%s: min=%d max=%d", ErrPoolConfig, cfg.MinConns, cfg.MaxConns)
	}
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.HealthCheckPeriod > 0 {
		poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Error(ctx, ErrCreatePool, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, ErrPingDatabase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPingDatabase, err)
	}

	log.Info(ctx, LogConnected,
		zap.Int("min_conns", cfg.MinConns),
		zap.Int("max_conns", cfg.MaxConns),
		zap.Duration("max_conn_idle_time", poolCfg.MaxConnIdleTime))
	return &Database{pool: pool}, nil
}

// Pool возвращает пул соединений.
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

// Close закрывает пул, предварительно записав в лог его статистику.
func (db *Database) Close(ctx context.Context) {
	stat := db.pool.Stat()
	logger.Log(ctx).Info(ctx, LogClosing,
		zap.Int32("acquired_conns", stat.AcquiredConns()),
		zap.Int32("total_conns", stat.TotalConns()),
		zap.Int64("acquire_count", stat.AcquireCount()))
	db.pool.Close()
}
