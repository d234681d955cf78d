// Package rest реализует клиент удаленного REST сервиса заметок.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"notablelists/internal/notes/config"
	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/resilience"
	"notablelists/pkg/logger"
)

const (
	serviceName = "notes-remote"

	defaultTimeout    = 10 * time.Second
	maxErrorBodyBytes = 256

	LogRemoteCall   = "remote call"
	LogRemoteFailed = "remote call failed"
	ErrDecodeBody   = "failed to decode response body"
)

// Client - клиент удаленного сервиса. Все вызовы проходят через лимитер и Circuit Breaker,
// запросы GET дополнительно повторяются при временных сбоях.
type Client struct {
	http    *client.Client
	policy  *resilience.Policy
	limiter *rate.Limiter
}

// NewClient создает клиент по конфигурации.
func NewClient(cfg *config.RemoteConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	retryCfg := resilience.DefaultRetryConfig()
	if cfg.RetryAttempts > 0 {
		retryCfg.MaxAttempts = cfg.RetryAttempts
	}

	return &Client{
		http:    client.New().SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).SetTimeout(timeout),
		policy:  resilience.NewPolicy(serviceName, resilience.DefaultCircuitBreakerConfig(), retryCfg),
		limiter: rate.NewLimiter(limit, burst),
	}
}

// call выполняет запрос и декодирует тело ответа в out (если out != nil).
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	run := func() error {
		return c.send(ctx, op, method, path, body, out)
	}

	var err error
	if method == fiber.MethodGet {
		err = c.policy.ExecuteIdempotent(ctx, op, run)
	} else {
		err = c.policy.Execute(ctx, op, run)
	}

	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			err = &entities.NetworkError{Op: op, Err: err}
		}
		logger.Log(ctx).Debug(ctx, LogRemoteFailed,
			zap.String("op", op), zap.String("method", method), zap.String("path", path), zap.Error(err))
	}
	return err
}

func (c *Client) send(ctx context.Context, op, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &entities.NetworkError{Op: op, Err: err}
	}

	logger.Log(ctx).Debug(ctx, LogRemoteCall,
		zap.String("op", op), zap.String("method", method), zap.String("path", path))

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetJSON(body)
	}

	var (
		resp *client.Response
		err  error
	)
	switch method {
	case fiber.MethodGet:
		resp, err = req.Get(path)
	case fiber.MethodPost:
		resp, err = req.Post(path)
	case fiber.MethodPut:
		resp, err = req.Put(path)
	case fiber.MethodDelete:
		resp, err = req.Delete(path)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &entities.NetworkError{Op: op, Err: err}
	}
	defer resp.Close()

	status := resp.StatusCode()
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return &entities.RemoteError{Op: op, StatusCode: status, Message: errorMessage(resp.Body())}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return fmt.Errorf("%s: %w", op, entities.ErrEmptyResponse)
	}
	if err := resp.JSON(out); err != nil {
		return fmt.Errorf("%s: %s: %w", op, ErrDecodeBody, err)
	}
	return nil
}

// errorMessage извлекает текст ошибки из тела ответа: поля message, error, title или сам текст.
func errorMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, s := range []string{payload.Message, payload.Error, payload.Title} {
			if s != "" {
				return s
			}
		}
	}

	if body[0] == '{' || body[0] == '[' {
		return ""
	}
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return string(body)
}

// State возвращает состояние Circuit Breaker клиента.
func (c *Client) State() resilience.CircuitState {
	return c.policy.State()
}
