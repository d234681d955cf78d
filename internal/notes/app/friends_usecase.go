package app

import (
	"context"
	"fmt"
	"strings"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/api"
	"notablelists/internal/notes/ports/remote"
)

const (
	errListFriends   = "failed to list friends"
	errListPendingFR = "failed to list pending friend requests"
	errListUsers     = "failed to list users"
)

var _ api.FriendsService = (*FriendsUseCase)(nil)

// FriendsUseCase передает операции с друзьями удаленному сервису.
type FriendsUseCase struct {
	friends remote.FriendsAPI
	users   remote.UsersAPI
}

// NewFriendsUseCase создает сценарии работы с друзьями.
func NewFriendsUseCase(friends remote.FriendsAPI, users remote.UsersAPI) *FriendsUseCase {
	return &FriendsUseCase{friends: friends, users: users}
}

// SendFriendRequest отправляет заявку в друзья.
func (uc *FriendsUseCase) SendFriendRequest(ctx context.Context, userID, friendID int64) error {
	return uc.friends.SendFriendRequest(ctx, userID, friendID)
}

// AcceptFriendRequest принимает заявку в друзья.
func (uc *FriendsUseCase) AcceptFriendRequest(ctx context.Context, userID, friendshipID int64) error {
	return uc.friends.AcceptFriendRequest(ctx, userID, friendshipID)
}

// DeclineFriendRequest отклоняет заявку в друзья.
func (uc *FriendsUseCase) DeclineFriendRequest(ctx context.Context, userID, friendshipID int64) error {
	return uc.friends.DeclineFriendRequest(ctx, userID, friendshipID)
}

// RemoveFriend удаляет пользователя из друзей.
func (uc *FriendsUseCase) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return uc.friends.RemoveFriend(ctx, userID, friendID)
}

// GetFriends возвращает список друзей пользователя.
func (uc *FriendsUseCase) GetFriends(ctx context.Context, userID int64) ([]entities.Friend, error) {
	dtos, err := uc.friends.ListFriends(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errListFriends, err)
	}

	out := make([]entities.Friend, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, entities.Friend{UserID: d.UserID, Username: d.Username})
	}
	return out, nil
}

// GetPendingRequests возвращает входящие заявки в друзья.
func (uc *FriendsUseCase) GetPendingRequests(ctx context.Context, userID int64) ([]entities.PendingRequest, error) {
	dtos, err := uc.friends.ListPendingRequests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errListPendingFR, err)
	}

	out := make([]entities.PendingRequest, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, entities.PendingRequest{
			FriendshipID:      d.FriendshipID,
			RequesterID:       d.RequesterID,
			RequesterUsername: d.RequesterUsername,
		})
	}
	return out, nil
}

// GetAllUsers возвращает всех пользователей сервера.
func (uc *FriendsUseCase) GetAllUsers(ctx context.Context) ([]entities.Friend, error) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errListUsers, err)
	}

	out := make([]entities.Friend, 0, len(users))
	for _, u := range users {
		out = append(out, friendFromUser(u))
	}
	return out, nil
}

// SearchUsers фильтрует полный список пользователей по вхождению query в имя без учета регистра.
func (uc *FriendsUseCase) SearchUsers(ctx context.Context, query string) ([]entities.Friend, error) {
	all, err := uc.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	out := make([]entities.Friend, 0, len(all))
	for _, u := range all {
		if strings.Contains(strings.ToLower(u.Username), q) {
			out = append(out, u)
		}
	}
	return out, nil
}
