package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notablelists/pkg/logger"
)

// RetryConfig содержит настройки для retry механизма.
type RetryConfig struct {
	// MaxAttempts - максимальное количество попыток, включая первую.
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	BackoffFactor  float64
	// ShouldRetry определяет, нужно ли повторять запрос для данной ошибки.
	ShouldRetry func(error) bool
}

// DefaultRetryConfig возвращает конфигурацию retry механизма по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     1 * time.Second,
		BackoffFactor:  2.0,
		ShouldRetry:    IsTransient,
	}
}

// ErrContextCanceled возвращается, когда контекст был отменен во время ожидания перед повторной попыткой.
var ErrContextCanceled = errors.New("context was canceled during retry")

const (
	LogRetryAttempt     = "retry attempt"
	LogRetrySuccess     = "retry succeeded"
	LogRetryMaxAttempts = "retry max attempts reached"
)

// Retry выполняет функцию с повторными попытками и экспоненциальной задержкой.
type Retry struct {
	name   string
	config RetryConfig
}

// NewRetry создает новый экземпляр retry механизма.
func NewRetry(name string, config RetryConfig) *Retry {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.ShouldRetry == nil {
		config.ShouldRetry = IsTransient
	}
	return &Retry{name: name, config: config}
}

// Execute выполняет функцию с автоматическими повторными попытками.
func (r *Retry) Execute(ctx context.Context, operation func() error) error {
	log := logger.Log(ctx).With(zap.String("retry", r.name))

	backoff := r.config.InitialBackoff
	var err error

	for attempt := 1; ; attempt++ {
		err = operation()

		if err == nil || !r.config.ShouldRetry(err) {
			if attempt > 1 && err == nil {
				log.Info(ctx, LogRetrySuccess, zap.Int("attempts", attempt))
			}
			return err
		}

		if attempt >= r.config.MaxAttempts {
			log.Warn(ctx, LogRetryMaxAttempts, zap.Int("attempts", attempt), zap.Error(err))
			return err
		}

		log.Debug(ctx, LogRetryAttempt,
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err())
		}

		backoff = time.Duration(float64(backoff) * r.config.BackoffFactor)
		if backoff > r.config.MaxBackoff {
			backoff = r.config.MaxBackoff
		}
	}
}
