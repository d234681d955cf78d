package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.Login")

	var req credentialsRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	sess, err := h.session.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Info(requestCtx, "login failed", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, sess)
}

// Register обрабатывает запрос на регистрацию пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.Register")

	var req credentialsRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	sess, err := h.session.Register(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Info(requestCtx, "registration failed", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusCreated, sess)
}

// Logout обрабатывает запрос на выход.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.Logout")

	if err := h.session.Logout(requestCtx); err != nil {
		log.Error(requestCtx, "logout failed", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendNoContent(ctx)
}

// GetSession обрабатывает запрос на получение текущей сессии.
func (h *Handler) GetSession(ctx fiber.Ctx) error {
	requestCtx, _ := h.begin(ctx, "Handler.GetSession")

	sess, err := h.session.CurrentSession(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, sess)
}
