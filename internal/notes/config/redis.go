package config

import (
	"fmt"
	"time"

	pkgredis "notablelists/pkg/db/redis"
)

// RedisConfig содержит настройки хранилища сессии.
type RedisConfig struct {
	Host       string        `yaml:"host" env:"NOTES_REDIS_HOST" env-default:"localhost"`
	Port       int           `yaml:"port" env:"NOTES_REDIS_PORT" env-default:"6379"`
	Password   string        `yaml:"password" env:"NOTES_REDIS_PASSWORD" env-default:""`
	DB         int           `yaml:"db" env:"NOTES_REDIS_DB" env-default:"0"`
	PoolSize   int           `yaml:"pool_size" env:"NOTES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout    time.Duration `yaml:"timeout" env:"NOTES_REDIS_TIMEOUT" env-default:"5s"`
	SessionKey string        `yaml:"session_key" env:"NOTES_REDIS_SESSION_KEY" env-default:"notablelists:session"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"NOTES_REDIS_SESSION_TTL" env-default:"0s"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ClientConfig преобразует настройки в конфигурацию общего клиента Redis.
func (c *RedisConfig) ClientConfig() *pkgredis.Config {
	return &pkgredis.Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}
