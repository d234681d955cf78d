package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
)

// sharedNoteResponse - запись о доступе вместе с заметкой в том виде, в каком ее показывает список заметок.
type sharedNoteResponse struct {
	entities.SharedWithMe
	Note noteResponse `json:"note"`
}

type shareRequest struct {
	NoteID   int64 `json:"noteId"`
	FriendID int64 `json:"friendId"`
}

// ShareNote обрабатывает запрос на открытие заметки другу.
func (h *Handler) ShareNote(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.ShareNote")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}

	var req shareRequest
	if err := ctx.Bind().Body(&req); err != nil || req.FriendID <= 0 {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	result, err := h.sharing.ShareNote(requestCtx, userID, req.NoteID, req.FriendID)
	if err != nil {
		log.Warn(requestCtx, "failed to share note", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusCreated, result)
}

// ListShares обрабатывает запрос на получение обоих списков совместного доступа.
func (h *Handler) ListShares(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.ListShares")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}

	all, err := h.sharing.GetAllSharedNotes(requestCtx, userID)
	if err != nil {
		log.Warn(requestCtx, "failed to list shared notes", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, all)
}

// SyncShares обрабатывает запрос на полную синхронизацию совместного доступа.
func (h *Handler) SyncShares(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.SyncShares")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}

	if err := h.sharing.SyncSharedNotes(requestCtx, userID); err != nil {
		log.Warn(requestCtx, "failed to sync shared notes", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendNoContent(ctx)
}

// RemoveShare скрывает полученную заметку или отзывает доступ у друга.
func (h *Handler) RemoveShare(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.RemoveShare")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}
	sharedNoteID, ok := paramID(ctx, "id")
	if !ok {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	update, err := h.sharing.UpdateSharedNoteStatus(requestCtx, userID, sharedNoteID)
	if err != nil {
		log.Warn(requestCtx, "failed to update shared note status", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, update)
}

// CheckAccess обрабатывает запрос на проверку доступа к заметке.
func (h *Handler) CheckAccess(ctx fiber.Ctx) error {
	requestCtx, _ := h.begin(ctx, "Handler.CheckAccess")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}
	noteID, ok := paramID(ctx, "noteId")
	if !ok {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	allowed, err := h.sharing.CanAccessNote(requestCtx, userID, noteID)
	if err != nil {
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, fiber.Map{"noteId": noteID, "canAccess": allowed})
}

// GetSharedNote обрабатывает запрос на получение открытой пользователю заметки.
func (h *Handler) GetSharedNote(ctx fiber.Ctx) error {
	requestCtx, _ := h.begin(ctx, "Handler.GetSharedNote")

	userID, err := h.currentUserID(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}
	noteID, ok := paramID(ctx, "noteId")
	if !ok {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	details, err := h.sharing.GetSharedNoteDetails(requestCtx, userID, noteID)
	if err != nil {
		return handleError(ctx, err)
	}

	note := details.ToNote()
	return sendJSON(ctx, fiber.StatusOK, sharedNoteResponse{SharedWithMe: *details, Note: toNoteResponse(&note)})
}
