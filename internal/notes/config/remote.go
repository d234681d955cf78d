package config

import "time"

// RemoteConfig содержит настройки клиента удаленного сервиса заметок.
type RemoteConfig struct {
	BaseURL       string        `yaml:"base_url" env:"NOTES_REMOTE_BASE_URL" env-default:"http://localhost:5000"`
	Timeout       time.Duration `yaml:"timeout" env:"NOTES_REMOTE_TIMEOUT" env-default:"10s"`
	RateLimit     float64       `yaml:"rate_limit" env:"NOTES_REMOTE_RATE_LIMIT" env-default:"20"`
	RateBurst     int           `yaml:"rate_burst" env:"NOTES_REMOTE_RATE_BURST" env-default:"10"`
	RetryAttempts int           `yaml:"retry_attempts" env:"NOTES_REMOTE_RETRY_ATTEMPTS" env-default:"3"`
}
