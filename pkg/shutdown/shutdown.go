// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"notablelists/pkg/logger"
)

const (
	LogSignalReceived = "shutdown signal received"
	LogContextDone    = "parent context finished, shutting down"
	LogHookFailed     = "shutdown hook failed"
	LogHooksTimeout   = "shutdown hooks did not finish in time"
)

// Hook освобождает ресурс при завершении.
type Hook func(context.Context) error

// Wait блокирует выполнение до получения SIGINT/SIGTERM или завершения ctx,
// затем параллельно выполняет все хуки в рамках заданного timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	log := logger.Log(ctx)

	select {
	case sig := <-sigCh:
		log.Info(ctx, LogSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info(ctx, LogContextDone)
	}

	Run(context.WithoutCancel(ctx), timeout, hooks...)
}

// Run выполняет хуки параллельно и ждет их завершения не дольше timeout.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	log := logger.Log(ctx)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var wg sync.WaitGroup
	for i, hook := range hooks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := hook(ctx); err != nil {
				log.Error(ctx, LogHookFailed, zap.Int("hook", i), zap.Error(err))
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warn(ctx, LogHooksTimeout, zap.Duration("timeout", timeout))
	}
}
