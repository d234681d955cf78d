package rest

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"notablelists/internal/notes/ports/remote"
)

var _ remote.UsersAPI = (*Client)(nil)

func userPath(id int64) string { return fmt.Sprintf("/api/Users/%d", id) }

// ListUsers получает всех пользователей.
func (c *Client) ListUsers(ctx context.Context) ([]remote.UserResponse, error) {
	var out []remote.UserResponse
	if err := c.call(ctx, "list users", fiber.MethodGet, "/api/Users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser получает пользователя по ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*remote.UserResponse, error) {
	var out remote.UserResponse
	if err := c.call(ctx, "get user", fiber.MethodGet, userPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser создает пользователя.
func (c *Client) CreateUser(ctx context.Context, req remote.UserRequest) (*remote.UserResponse, error) {
	var out remote.UserResponse
	if err := c.call(ctx, "create user", fiber.MethodPost, "/api/Users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser обновляет пользователя.
func (c *Client) UpdateUser(ctx context.Context, id int64, req remote.UserRequest) error {
	return c.call(ctx, "update user", fiber.MethodPut, userPath(id), req, nil)
}

// DeleteUser удаляет пользователя.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.call(ctx, "delete user", fiber.MethodDelete, userPath(id), nil, nil)
}
