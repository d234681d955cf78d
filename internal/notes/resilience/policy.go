package resilience

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
	"notablelists/pkg/logger"
)

// IsTransient сообщает, может ли повтор запроса помочь: сбой сети или 5xx/429 от сервера.
// Отмена контекста и ответы 4xx не считаются временными.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr *entities.NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var remoteErr *entities.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode >= http.StatusInternalServerError ||
			remoteErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// Policy объединяет Circuit Breaker и retry для одного удаленного сервиса.
type Policy struct {
	serviceName    string
	circuitBreaker *CircuitBreaker
	retry          *Retry
}

// NewPolicy создает политику отказоустойчивости для сервиса.
func NewPolicy(serviceName string, cbConfig CircuitBreakerConfig, retryConfig RetryConfig) *Policy {
	return &Policy{
		serviceName:    serviceName,
		circuitBreaker: NewCircuitBreaker(serviceName, cbConfig),
		retry:          NewRetry(serviceName, retryConfig),
	}
}

// Execute выполняет неидемпотентную операцию: только Circuit Breaker, без повторов.
func (p *Policy) Execute(ctx context.Context, operationName string, operation func() error) error {
	logger.Log(ctx).Debug(ctx, "executing remote operation",
		zap.String("service", p.serviceName),
		zap.String("operation", operationName))

	return p.circuitBreaker.Execute(ctx, operation)
}

// ExecuteIdempotent выполняет операцию чтения с Circuit Breaker и повторами.
func (p *Policy) ExecuteIdempotent(ctx context.Context, operationName string, operation func() error) error {
	logger.Log(ctx).Debug(ctx, "executing idempotent remote operation",
		zap.String("service", p.serviceName),
		zap.String("operation", operationName))

	return p.retry.Execute(ctx, func() error {
		return p.circuitBreaker.Execute(ctx, operation)
	})
}

// State возвращает состояние Circuit Breaker.
func (p *Policy) State() CircuitState {
	return p.circuitBreaker.GetState()
}
