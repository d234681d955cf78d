package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notablelists/internal/notes/domain/entities"
)

func fastRetry(attempts int) *Retry {
	return NewRetry("test", RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		BackoffFactor:  2,
		ShouldRetry:    IsTransient,
	})
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := fastRetry(3).Execute(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errUnavailable
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsAtMaxAttempts(t *testing.T) {
	calls := 0
	err := fastRetry(3).Execute(context.Background(), func() error {
		calls++
		return &entities.RemoteError{Op: "list", StatusCode: 503}
	})

	assert.True(t, entities.IsRemoteStatus(err, 503))
	assert.Equal(t, 3, calls)
}

func TestRetryDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	err := fastRetry(3).Execute(context.Background(), func() error {
		calls++
		return &entities.RemoteError{Op: "get", StatusCode: 404}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRetry("test", RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: time.Hour,
		MaxBackoff:     time.Hour,
		BackoffFactor:  1,
	})

	err := r.Execute(ctx, func() error {
		cancel()
		return errUnavailable
	})

	assert.ErrorIs(t, err, ErrContextCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(context.Canceled))
	assert.False(t, IsTransient(errors.New("plain")))
	assert.True(t, IsTransient(errUnavailable))
	assert.True(t, IsTransient(&entities.RemoteError{StatusCode: 500}))
	assert.True(t, IsTransient(&entities.RemoteError{StatusCode: 429}))
	assert.False(t, IsTransient(&entities.RemoteError{StatusCode: 400}))
}

func TestPolicyExecuteDoesNotRetry(t *testing.T) {
	p := NewPolicy("svc", DefaultCircuitBreakerConfig(), RetryConfig{
		MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond, BackoffFactor: 1,
	})

	calls := 0
	_ = p.Execute(context.Background(), "create", func() error { calls++; return errUnavailable })
	assert.Equal(t, 1, calls)

	calls = 0
	_ = p.ExecuteIdempotent(context.Background(), "list", func() error { calls++; return errUnavailable })
	assert.Equal(t, 3, calls)
	assert.Equal(t, StateClosed, p.State())
}
