package config

import "time"

// SyncConfig управляет фоновой синхронизацией. Нулевой интервал отключает ее.
type SyncConfig struct {
	Interval time.Duration `yaml:"interval" env:"NOTES_SYNC_INTERVAL" env-default:"1m"`
}
