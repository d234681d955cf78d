// Package config предоставляет загрузку конфигурации из переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"notablelists/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgEnvFileSkipped          = "env file not found, using process environment"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgFailedLoadConfiguration = "failed to load configuration"

	errFailedLoadEnvFile       = "failed to load env file"
	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load читает конфигурацию типа T. Если файл envPath существует, его значения
// загружаются в окружение процесса (уже заданные переменные не перезаписываются).
func Load[T any](ctx context.Context, serviceName, envPath string) (*T, error) {
	log := logger.Log(ctx).With(zap.String(attrService, serviceName))

	log.Info(ctx, msgLoadingConfiguration, zap.String(attrPath, envPath))

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%s: %w", errFailedLoadEnvFile, err)
			}
			log.Debug(ctx, msgEnvFileSkipped, zap.String(attrPath, envPath))
		}
	}

	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, msgFailedLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded)

	return &cfg, nil
}
