package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type friendRequest struct {
	FriendID int64 `json:"friendId"`
}

// ListFriends обрабатывает запрос на получение списка друзей.
func (h *Handler) ListFriends(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.ListFriends")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}

	friends, err := h.friends.GetFriends(requestCtx, userID)
	if err != nil {
		log.Warn(requestCtx, "failed to list friends", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, friends)
}

// ListPendingRequests обрабатывает запрос на получение входящих заявок.
func (h *Handler) ListPendingRequests(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.ListPendingRequests")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}

	pending, err := h.friends.GetPendingRequests(requestCtx, userID)
	if err != nil {
		log.Warn(requestCtx, "failed to list pending requests", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, pending)
}

// SendFriendRequest обрабатывает запрос на отправку заявки в друзья.
func (h *Handler) SendFriendRequest(ctx fiber.Ctx) error {
	requestCtx, _ := h.begin(ctx, "Handler.SendFriendRequest")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}

	var req friendRequest
	if err := ctx.Bind().Body(&req); err != nil || req.FriendID <= 0 {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if err := h.friends.SendFriendRequest(requestCtx, userID, req.FriendID); err != nil {
		return handleError(ctx, err)
	}
	return sendNoContent(ctx)
}

// AcceptFriendRequest обрабатывает запрос на принятие заявки.
func (h *Handler) AcceptFriendRequest(ctx fiber.Ctx) error {
	return h.answerFriendRequest(ctx, "Handler.AcceptFriendRequest", h.friends.AcceptFriendRequest)
}

// DeclineFriendRequest обрабатывает запрос на отклонение заявки.
func (h *Handler) DeclineFriendRequest(ctx fiber.Ctx) error {
	return h.answerFriendRequest(ctx, "Handler.DeclineFriendRequest", h.friends.DeclineFriendRequest)
}

func (h *Handler) answerFriendRequest(ctx fiber.Ctx, name string, answer func(context.Context, int64, int64) error) error {
	requestCtx, _ := h.begin(ctx, name)

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}
	friendshipID, ok := paramID(ctx, "id")
	if !ok {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	if err := answer(requestCtx, userID, friendshipID); err != nil {
		return handleError(ctx, err)
	}
	return sendNoContent(ctx)
}

// RemoveFriend обрабатывает запрос на удаление друга.
func (h *Handler) RemoveFriend(ctx fiber.Ctx) error {
	requestCtx, _ := h.begin(ctx, "Handler.RemoveFriend")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}
	friendID, ok := paramID(ctx, "id")
	if !ok {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	if err := h.friends.RemoveFriend(requestCtx, userID, friendID); err != nil {
		return handleError(ctx, err)
	}
	return sendNoContent(ctx)
}

// SearchUsers возвращает пользователей, чье имя содержит параметр q.
func (h *Handler) SearchUsers(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.SearchUsers")

	users, err := h.friends.SearchUsers(requestCtx, ctx.Query("q"))
	if err != nil {
		log.Warn(requestCtx, "failed to search users", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, users)
}
