package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/remote"
)

var _ remote.AuthAPI = (*Client)(nil)

// Login проверяет учетные данные на сервере.
func (c *Client) Login(ctx context.Context, req remote.UserRequest) (*remote.AuthResponse, error) {
	return c.authenticate(ctx, "login", "/api/Auth/login", req)
}

// Register регистрирует пользователя на сервере.
func (c *Client) Register(ctx context.Context, req remote.UserRequest) (*remote.AuthResponse, error) {
	return c.authenticate(ctx, "register", "/api/Auth/register", req)
}

// authenticate превращает отказ 400/401 с сообщением в AuthResponse{Success: false}.
func (c *Client) authenticate(ctx context.Context, op, path string, req remote.UserRequest) (*remote.AuthResponse, error) {
	var out remote.AuthResponse
	err := c.call(ctx, op, fiber.MethodPost, path, req, &out)
	if err == nil {
		return &out, nil
	}

	if !entities.IsRemoteStatus(err, http.StatusUnauthorized) && !entities.IsRemoteStatus(err, http.StatusBadRequest) {
		return nil, err
	}

	var remoteErr *entities.RemoteError
	errors.As(err, &remoteErr)
	msg := remoteErr.Message
	return &remote.AuthResponse{Success: false, Message: &msg}, nil
}
