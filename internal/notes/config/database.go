package config

import (
	"fmt"
	"net/url"
	"time"

	"notablelists/pkg/db/postgres"
)

// PostgresConfig содержит настройки подключения к локальному хранилищу.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"NOTES_POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"NOTES_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"NOTES_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"NOTES_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"NOTES_POSTGRES_DB" env-default:"notablelists"`
	MinConn  int    `yaml:"min_conn" env:"NOTES_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"NOTES_POSTGRES_MAX_CONN" env-default:"10"`

	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time" env:"NOTES_POSTGRES_MAX_CONN_IDLE_TIME" env-default:"5m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"NOTES_POSTGRES_HEALTH_CHECK_PERIOD" env-default:"1m"`
}

// PoolConfig возвращает настройки пула для pkg/db/postgres.
func (p *PostgresConfig) PoolConfig() postgres.PoolConfig {
	return postgres.PoolConfig{
		DSN:               p.GetDSN(),
		MinConns:          p.MinConn,
		MaxConns:          p.MaxConn,
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
	}
}

// GetDSN возвращает строку подключения к Postgres.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
