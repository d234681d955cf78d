// Package handlers содержит HTTP-обработчики локального API заметок.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notablelists/internal/notes/adapters/http/middleware"
	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/api"
	"notablelists/pkg/logger"
)

const (
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInvalidID          = "invalid id"
	ErrMsgNotAuthenticated   = "not authenticated"
	ErrMsgInternal           = "Internal server error"
)

// Handler обрабатывает запросы локального API.
type Handler struct {
	notes   api.NoteService
	sharing api.SharingService
	friends api.FriendsService
	session api.SessionService
}

// NewHandler создает новый экземпляр обработчика.
func NewHandler(notes api.NoteService, sharing api.SharingService, friends api.FriendsService, session api.SessionService) *Handler {
	return &Handler{notes: notes, sharing: sharing, friends: friends, session: session}
}

func (h *Handler) begin(ctx fiber.Ctx, name string) (context.Context, *logger.Logger) {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", name))
	log.Debug(requestCtx, "handling request")
	return requestCtx, log
}

// currentUserID возвращает идентификатор вошедшего пользователя.
func (h *Handler) currentUserID(ctx context.Context) (int64, error) {
	sess, err := h.session.CurrentSession(ctx)
	if err != nil {
		return 0, err
	}
	return sess.UserID, nil
}

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func sendError(ctx fiber.Ctx, status int, msg string) error {
	return sendJSON(ctx, status, fiber.Map{"error": msg})
}

func sendNoContent(ctx fiber.Ctx) error {
	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func paramID(ctx fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleError переводит ошибки домена в HTTP статусы.
func handleError(ctx fiber.Ctx, err error) error {
	var (
		remoteErr *entities.RemoteError
		netErr    *entities.NetworkError
	)

	switch {
	case errors.Is(err, entities.ErrNotAuthenticated):
		return sendError(ctx, fiber.StatusUnauthorized, ErrMsgNotAuthenticated)
	case errors.Is(err, entities.ErrInvalidCredentials):
		return sendError(ctx, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, entities.ErrNotFound):
		return sendError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrValidation):
		return sendError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &remoteErr):
		return sendError(ctx, fiber.StatusBadGateway, remoteErr.UserMessage())
	case errors.As(err, &netErr):
		return sendError(ctx, fiber.StatusServiceUnavailable, netErr.UserMessage())
	case errors.Is(err, context.DeadlineExceeded):
		return sendError(ctx, fiber.StatusGatewayTimeout, err.Error())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return sendError(ctx, fiberErr.Code, fiberErr.Message)
	}

	return sendError(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
}
