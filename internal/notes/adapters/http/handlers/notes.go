package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
)

// noteRequest - тело создания и изменения заметки. Чек-лист передается списком пунктов.
type noteRequest struct {
	RemoteID    *int64                   `json:"remoteId"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Tag         string                   `json:"tag"`
	Priority    int                      `json:"priority"`
	IsFinished  bool                     `json:"isFinished"`
	Reminder    *time.Time               `json:"reminder"`
	Checklist   []entities.ChecklistItem `json:"checklist"`
	AutoDelete  *bool                    `json:"autoDelete"`
	DeleteAt    *time.Time               `json:"deleteAt"`
}

func (r *noteRequest) toNote(id string) entities.Note {
	return entities.Note{
		ID:          id,
		RemoteID:    r.RemoteID,
		Title:       r.Title,
		Description: r.Description,
		Tag:         r.Tag,
		Priority:    r.Priority,
		IsFinished:  r.IsFinished,
		Reminder:    r.Reminder,
		Checklist:   entities.SerializeChecklist(r.Checklist),
		AutoDelete:  r.AutoDelete,
		DeleteAt:    r.DeleteAt,
	}
}

// noteResponse дополняет заметку разобранным чек-листом.
type noteResponse struct {
	entities.Note
	ChecklistItems []entities.ChecklistItem `json:"checklistItems"`
}

func toNoteResponse(n *entities.Note) noteResponse {
	return noteResponse{Note: *n, ChecklistItems: n.ChecklistItems()}
}

// ListNotes обрабатывает запрос на получение списка заметок.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.ListNotes")

	notes, err := h.notes.ListNotes(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	out := make([]noteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return sendJSON(ctx, fiber.StatusOK, out)
}

// GetNote обрабатывает запрос на получение заметки по ключу.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.GetNote")

	note, err := h.notes.GetNote(requestCtx, ctx.Params("key"))
	if err != nil {
		log.Debug(requestCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, toNoteResponse(note))
}

// CreateNote сохраняет новую заметку локально. Вошедший пользователь становится ее владельцем.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.CreateNote")

	var req noteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return handleError(ctx, entities.ErrInvalidNote)
	}

	note := req.toNote("")
	if userID, err := h.currentUserID(requestCtx); err == nil {
		note.UserID = entities.Int64Ptr(userID)
	}

	created, err := h.notes.CreateNoteLocal(requestCtx, note)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusCreated, toNoteResponse(created))
}

// UpsertNote сохраняет заметку по ключу. Серверный идентификатор и владелец
// берутся из сохраненной версии, если в теле их нет.
func (h *Handler) UpsertNote(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.UpsertNote")
	key := ctx.Params("key")

	var req noteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return handleError(ctx, entities.ErrInvalidNote)
	}

	note := req.toNote(key)

	existing, err := h.notes.GetNote(requestCtx, key)
	switch {
	case err == nil:
		if note.RemoteID == nil {
			note.RemoteID = existing.RemoteID
		}
		note.UserID = existing.UserID
	case !errors.Is(err, entities.ErrNotFound):
		log.Error(requestCtx, "failed to load note", zap.Error(err))
		return handleError(ctx, err)
	}

	saved, err := h.notes.Upsert(requestCtx, note)
	if err != nil {
		log.Error(requestCtx, "failed to save note", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendJSON(ctx, fiber.StatusOK, toNoteResponse(saved))
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.DeleteNote")

	if err := h.notes.Delete(requestCtx, ctx.Params("key")); err != nil {
		log.Debug(requestCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendNoContent(ctx)
}

// SyncNotes отправляет ожидающие заметки на сервер: для вошедшего пользователя
// через его эндпоинт, иначе через общий.
func (h *Handler) SyncNotes(ctx fiber.Ctx) error {
	requestCtx, log := h.begin(ctx, "Handler.SyncNotes")

	var err error
	userID, sessErr := h.currentUserID(requestCtx)
	switch {
	case sessErr == nil:
		err = h.notes.PostPendingNotesForUser(requestCtx, userID)
	case errors.Is(sessErr, entities.ErrNotAuthenticated):
		err = h.notes.PostPendingNotes(requestCtx)
	default:
		err = sessErr
	}

	if err != nil {
		log.Warn(requestCtx, "failed to sync pending notes", zap.Error(err))
		return handleError(ctx, err)
	}
	return sendNoContent(ctx)
}
