package rest

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"notablelists/internal/notes/ports/remote"
)

var _ remote.FriendsAPI = (*Client)(nil)

func friendsPath(userID int64) string {
	return fmt.Sprintf("/api/Users/%d/friends", userID)
}

// SendFriendRequest отправляет заявку в друзья.
func (c *Client) SendFriendRequest(ctx context.Context, userID, friendID int64) error {
	return c.call(ctx, "send friend request", fiber.MethodPost,
		friendsPath(userID)+"/request", remote.FriendRequest{FriendID: friendID}, nil)
}

// AcceptFriendRequest принимает заявку.
func (c *Client) AcceptFriendRequest(ctx context.Context, userID, friendshipID int64) error {
	return c.call(ctx, "accept friend request", fiber.MethodPost,
		fmt.Sprintf("%s/accept/%d", friendsPath(userID), friendshipID), nil, nil)
}

// DeclineFriendRequest отклоняет заявку.
func (c *Client) DeclineFriendRequest(ctx context.Context, userID, friendshipID int64) error {
	return c.call(ctx, "decline friend request", fiber.MethodPost,
		fmt.Sprintf("%s/decline/%d", friendsPath(userID), friendshipID), nil, nil)
}

// RemoveFriend удаляет друга.
func (c *Client) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return c.call(ctx, "remove friend", fiber.MethodDelete,
		fmt.Sprintf("%s/%d", friendsPath(userID), friendID), nil, nil)
}

// ListFriends получает друзей пользователя.
func (c *Client) ListFriends(ctx context.Context, userID int64) ([]remote.FriendDTO, error) {
	var out []remote.FriendDTO
	if err := c.call(ctx, "list friends", fiber.MethodGet, friendsPath(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPendingRequests получает входящие заявки.
func (c *Client) ListPendingRequests(ctx context.Context, userID int64) ([]remote.PendingRequestDTO, error) {
	var out []remote.PendingRequestDTO
	if err := c.call(ctx, "list pending friend requests", fiber.MethodGet, friendsPath(userID)+"/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
