package rest

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"notablelists/internal/notes/ports/remote"
)

var _ remote.NotesAPI = (*Client)(nil)

func notesPath() string                { return "/api/Notes" }
func notePath(id int64) string         { return fmt.Sprintf("/api/Notes/%d", id) }
func userNotesPath(userID int64) string { return fmt.Sprintf("/api/Notes/Users/%d/Notes", userID) }
func userNotePath(userID, id int64) string {
	return fmt.Sprintf("/api/Notes/Users/%d/Notes/%d", userID, id)
}

// ListNotes получает все заметки.
func (c *Client) ListNotes(ctx context.Context) ([]remote.NoteResponse, error) {
	var out []remote.NoteResponse
	if err := c.call(ctx, "list notes", fiber.MethodGet, notesPath(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNote получает заметку по ID.
func (c *Client) GetNote(ctx context.Context, id int64) (*remote.NoteResponse, error) {
	var out remote.NoteResponse
	if err := c.call(ctx, "get note", fiber.MethodGet, notePath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateNote создает заметку без владельца.
func (c *Client) CreateNote(ctx context.Context, req remote.NoteRequest) (*remote.NoteResponse, error) {
	var out remote.NoteResponse
	if err := c.call(ctx, "create note", fiber.MethodPost, notesPath(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote обновляет заметку.
func (c *Client) UpdateNote(ctx context.Context, id int64, req remote.NoteRequest) error {
	return c.call(ctx, "update note", fiber.MethodPut, notePath(id), req, nil)
}

// DeleteNote удаляет заметку.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.call(ctx, "delete note", fiber.MethodDelete, notePath(id), nil, nil)
}

// ListUserNotes получает заметки пользователя.
func (c *Client) ListUserNotes(ctx context.Context, userID int64) ([]remote.NoteResponse, error) {
	var out []remote.NoteResponse
	if err := c.call(ctx, "list user notes", fiber.MethodGet, userNotesPath(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUserNote получает заметку пользователя по ID.
func (c *Client) GetUserNote(ctx context.Context, userID, id int64) (*remote.NoteResponse, error) {
	var out remote.NoteResponse
	if err := c.call(ctx, "get user note", fiber.MethodGet, userNotePath(userID, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUserNote создает заметку от имени пользователя.
func (c *Client) CreateUserNote(ctx context.Context, userID int64, req remote.NoteRequest) (*remote.NoteResponse, error) {
	var out remote.NoteResponse
	if err := c.call(ctx, "create user note", fiber.MethodPost, userNotesPath(userID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserNote обновляет заметку пользователя.
func (c *Client) UpdateUserNote(ctx context.Context, userID, id int64, req remote.NoteRequest) error {
	return c.call(ctx, "update user note", fiber.MethodPut, userNotePath(userID, id), req, nil)
}

// DeleteUserNote удаляет заметку пользователя.
func (c *Client) DeleteUserNote(ctx context.Context, userID, id int64) error {
	return c.call(ctx, "delete user note", fiber.MethodDelete, userNotePath(userID, id), nil, nil)
}
