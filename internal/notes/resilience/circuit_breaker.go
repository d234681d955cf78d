// Package resilience содержит механизмы отказоустойчивости вызовов удаленного сервиса.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"notablelists/pkg/logger"
)

// CircuitState представляет состояние Circuit Breaker.
type CircuitState int

const (
	// StateClosed - запросы проходят.
	StateClosed CircuitState = iota
	// StateOpen - запросы блокируются.
	StateOpen
	// StateHalfOpen - пропускаются пробные запросы.
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

const (
	LogCircuitStateChange = "circuit breaker state changed"
	LogCircuitTrip        = "circuit breaker tripped"
	LogCircuitReject      = "circuit breaker rejected request"
)

// ErrCircuitOpen возвращается, когда Circuit Breaker находится в открытом состоянии.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig содержит настройки Circuit Breaker.
type CircuitBreakerConfig struct {
	// ErrorThreshold - число подряд идущих сбоев до перехода в открытое состояние.
	ErrorThreshold int
	// Timeout - время в открытом состоянии до пробного запроса.
	Timeout time.Duration
	// SuccessThreshold - число успешных пробных запросов для закрытия.
	SuccessThreshold int
	// IsFailure решает, считается ли ошибка сбоем сервиса. nil - любая ошибка.
	IsFailure func(error) bool
}

// DefaultCircuitBreakerConfig возвращает конфигурацию Circuit Breaker по умолчанию.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		ErrorThreshold:   5,
		Timeout:          10 * time.Second,
		SuccessThreshold: 2,
		IsFailure:        IsTransient,
	}
}

// CircuitBreaker реализует паттерн Circuit Breaker.
type CircuitBreaker struct {
	name   string
	config CircuitBreakerConfig
	now    func() time.Time

	mu              sync.Mutex
	state           CircuitState
	failures        int
	successes       int
	lastStateChange time.Time
}

// NewCircuitBreaker создает новый экземпляр Circuit Breaker.
func NewCircuitBreaker(name string, config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		name:            name,
		config:          config,
		now:             time.Now,
		state:           StateClosed,
		lastStateChange: time.Now(),
	}
}

// Execute выполняет функцию с защитой Circuit Breaker.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if !cb.AllowRequest(ctx) {
		return ErrCircuitOpen
	}
	err := fn()
	cb.RecordResult(ctx, err)
	return err
}

// AllowRequest проверяет возможность выполнения запроса.
func (cb *CircuitBreaker) AllowRequest(ctx context.Context) bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.lastStateChange) < cb.config.Timeout {
			cb.log(ctx).Debug(ctx, LogCircuitReject)
			return false
		}
		cb.setState(ctx, StateHalfOpen)
		return true
	default:
		return true
	}
}

// RecordResult учитывает результат выполнения запроса.
func (cb *CircuitBreaker) RecordResult(ctx context.Context, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil && cb.isFailure(err) {
		cb.onFailure(ctx)
		return
	}
	cb.onSuccess(ctx)
}

func (cb *CircuitBreaker) isFailure(err error) bool {
	if cb.config.IsFailure == nil {
		return true
	}
	return cb.config.IsFailure(err)
}

func (cb *CircuitBreaker) onFailure(ctx context.Context) {
	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.ErrorThreshold {
			cb.log(ctx).Warn(ctx, LogCircuitTrip, zap.Int("failures", cb.failures))
			cb.setState(ctx, StateOpen)
		}
	case StateHalfOpen:
		cb.log(ctx).Warn(ctx, LogCircuitTrip, zap.String("reason", "probe failed"))
		cb.setState(ctx, StateOpen)
	}
}

func (cb *CircuitBreaker) onSuccess(ctx context.Context) {
	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.setState(ctx, StateClosed)
		}
	}
}

// setState вызывается под cb.mu.
func (cb *CircuitBreaker) setState(ctx context.Context, state CircuitState) {
	cb.log(ctx).Info(ctx, LogCircuitStateChange,
		zap.Stringer("from", cb.state), zap.Stringer("to", state))
	cb.state = state
	cb.lastStateChange = cb.now()
	cb.failures = 0
	cb.successes = 0
}

func (cb *CircuitBreaker) log(ctx context.Context) *logger.Logger {
	return logger.Log(ctx).With(zap.String("circuit_breaker", cb.name))
}

// GetState возвращает текущее состояние Circuit Breaker.
func (cb *CircuitBreaker) GetState() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
