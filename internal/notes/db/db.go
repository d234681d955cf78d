// Package db поднимает локальное хранилище заметок: миграции и пул соединений.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"notablelists/internal/notes/config"
	migrations "notablelists/migrations/notes"
	"notablelists/pkg/db/postgres"
	"notablelists/pkg/logger"
)

const (
	LogDBInitializing    = "initializing local notes store"
	LogDBInitialized     = "local notes store initialized successfully"
	LogMigrationStarting = "applying local notes store migrations"
)

const (
	ErrDBMigrations = "failed to apply local store migrations"
	ErrDBConnection = "failed to connect to local store"
)

// DB представляет соединение с локальным хранилищем.
type DB struct {
	database *postgres.Database
}

// New применяет встроенные миграции и открывает пул соединений.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_dir", migrations.Dir))
	if err := postgres.MigrateFS(ctx, migrations.FS, migrations.Dir, cfg.GetConnectionURL()); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.PoolConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{database: database}, nil
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}
