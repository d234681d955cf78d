package rest

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/remote"
)

var _ remote.SharingAPI = (*Client)(nil)

// ShareNote открывает заметку другу.
func (c *Client) ShareNote(ctx context.Context, userID, noteID, friendID int64) (*remote.ShareResponse, error) {
	var out remote.ShareResponse
	path := fmt.Sprintf("/api/Notes/Users/%d/Notes/%d/share", userID, noteID)
	if err := c.call(ctx, entities.OpShareNote, fiber.MethodPost, path, remote.ShareRequest{FriendID: friendID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SharedWithMe получает заметки, открытые пользователю.
func (c *Client) SharedWithMe(ctx context.Context, userID int64) ([]remote.SharedNoteWithDetails, error) {
	var out []remote.SharedNoteWithDetails
	path := fmt.Sprintf("/api/Notes/Users/%d/shared-notes", userID)
	if err := c.call(ctx, "list notes shared with me", fiber.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SharedByMe получает заметки, открытые пользователем.
func (c *Client) SharedByMe(ctx context.Context, userID int64) ([]remote.SharedNoteByMe, error) {
	var out []remote.SharedNoteByMe
	path := fmt.Sprintf("/api/Notes/Users/%d/shared-by-me", userID)
	if err := c.call(ctx, "list notes shared by me", fiber.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSharedStatus скрывает или отзывает совместный доступ.
func (c *Client) UpdateSharedStatus(ctx context.Context, userID, sharedNoteID int64) (*remote.UpdateSharedStatusResponse, error) {
	var out remote.UpdateSharedStatusResponse
	path := fmt.Sprintf("/api/Notes/Users/%d/shared-notes/%d", userID, sharedNoteID)
	if err := c.call(ctx, entities.OpUpdateSharedStatus, fiber.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
