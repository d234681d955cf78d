package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/api"
	"notablelists/internal/notes/ports/remote"
	"notablelists/internal/notes/ports/repositories"
	"notablelists/pkg/logger"
)

const (
	errShareNote          = "failed to share note"
	errFetchSharedWithMe  = "failed to fetch notes shared with me"
	errFetchSharedByMe    = "failed to fetch notes shared by me"
	errReplaceShared      = "failed to replace local shared notes"
	errUpdateSharedStatus = "failed to update shared note status"
	errCheckAccess        = "failed to check note access"

	logShareNotCached     = "note shared on server but local record was not saved"
	logStatusNotMirrored  = "shared note status changed on server, no local record to update"
	logStatusMirrorFailed = "failed to update local shared note status"
	logUnknownShareStatus = "skipping shared note with unknown status"
	logSharedNotesSynced  = "shared notes synced"
)

var _ api.SharingService = (*SharingUseCase)(nil)

// SharingUseCase управляет совместным доступом к заметкам.
// Статусы записей определяет сервер, локальная копия служит только кэшем.
type SharingUseCase struct {
	api    remote.SharingAPI
	shared repositories.SharedNoteStore
	notes  repositories.NoteStore
}

// NewSharingUseCase создает новый экземпляр SharingUseCase.
func NewSharingUseCase(sharingAPI remote.SharingAPI, shared repositories.SharedNoteStore, notes repositories.NoteStore) *SharingUseCase {
	return &SharingUseCase{api: sharingAPI, shared: shared, notes: notes}
}

// ShareNote открывает другу доступ к заметке и кэширует активную запись локально.
func (uc *SharingUseCase) ShareNote(ctx context.Context, ownerID, noteID, friendID int64) (*entities.ShareResult, error) {
	if !uc.CanShareNote(&noteID) {
		return nil, entities.ErrInvalidNoteID
	}

	resp, err := uc.api.ShareNote(ctx, ownerID, noteID, friendID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errShareNote, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%s: %w", errShareNote, entities.ErrEmptyResponse)
	}

	row := entities.SharedNote{
		RemoteID:     resp.SharedNoteID,
		NoteID:       noteID,
		OwnerUserID:  ownerID,
		TargetUserID: friendID,
		Status:       entities.ShareStatusActive,
	}
	if err := uc.shared.Upsert(ctx, &row); err != nil {
		logger.Log(ctx).Warn(ctx, logShareNotCached,
			zap.Int64("shared_note_id", resp.SharedNoteID), zap.Error(err))
	}

	return &entities.ShareResult{
		SharedNoteID: resp.SharedNoteID,
		Message:      resp.Message,
		FriendName:   resp.FriendName,
		NoteTitle:    resp.NoteTitle,
	}, nil
}

// GetNotesSharedWithMe возвращает заметки, которыми поделились с пользователем.
func (uc *SharingUseCase) GetNotesSharedWithMe(ctx context.Context, userID int64) ([]entities.SharedWithMe, error) {
	dtos, err := uc.api.SharedWithMe(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errFetchSharedWithMe, err)
	}

	out := make([]entities.SharedWithMe, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, sharedWithMeFromDTO(d))
	}
	return out, nil
}

// GetNotesSharedByMe возвращает заметки пользователя, открытые друзьям.
func (uc *SharingUseCase) GetNotesSharedByMe(ctx context.Context, userID int64) ([]entities.SharedByMe, error) {
	dtos, err := uc.api.SharedByMe(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errFetchSharedByMe, err)
	}

	out := make([]entities.SharedByMe, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, sharedByMeFromDTO(d))
	}
	return out, nil
}

// GetAllSharedNotes загружает оба направления параллельно. Ошибка любого из них
// возвращается как ошибка всей операции.
func (uc *SharingUseCase) GetAllSharedNotes(ctx context.Context, userID int64) (*entities.SharedNotes, error) {
	var result entities.SharedNotes

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		withMe, err := uc.GetNotesSharedWithMe(gctx, userID)
		result.WithMe = withMe
		return err
	})
	g.Go(func() error {
		byMe, err := uc.GetNotesSharedByMe(gctx, userID)
		result.ByMe = byMe
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

// SyncSharedNotes полностью заменяет локальные записи серверным снимком обоих направлений.
// Локальные данные не меняются, если не удалось получить хотя бы один из списков.
func (uc *SharingUseCase) SyncSharedNotes(ctx context.Context, userID int64) error {
	log := logger.Log(ctx).With(zap.String("method", "SharingUseCase.SyncSharedNotes"), zap.Int64("user_id", userID))

	all, err := uc.GetAllSharedNotes(ctx, userID)
	if err != nil {
		return err
	}

	rows := make([]entities.SharedNote, 0, len(all.WithMe)+len(all.ByMe))
	for _, s := range all.WithMe {
		rows = append(rows, entities.SharedNote{
			RemoteID:     s.SharedNoteID,
			NoteID:       s.NoteID,
			OwnerUserID:  s.OwnerUserID,
			TargetUserID: userID,
			Status:       entities.ShareStatusActive,
		})
	}
	for _, s := range all.ByMe {
		if !s.Status.Valid() {
			log.Warn(ctx, logUnknownShareStatus,
				zap.Int64("shared_note_id", s.SharedNoteID), zap.String("status", string(s.Status)))
			continue
		}
		rows = append(rows, entities.SharedNote{
			RemoteID:     s.SharedNoteID,
			NoteID:       s.NoteID,
			OwnerUserID:  userID,
			TargetUserID: s.TargetUserID,
			Status:       s.Status,
		})
	}

	if err := uc.shared.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("%s: %w", errReplaceShared, err)
	}

	log.Debug(ctx, logSharedNotesSynced, zap.Int("count", len(rows)))
	return nil
}

// UpdateSharedNoteStatus просит сервер скрыть или отозвать доступ и переносит
// полученный статус в локальную запись, если она есть.
func (uc *SharingUseCase) UpdateSharedNoteStatus(ctx context.Context, userID, sharedNoteID int64) (*entities.StatusUpdate, error) {
	log := logger.Log(ctx).With(zap.String("method", "SharingUseCase.UpdateSharedNoteStatus"),
		zap.Int64("shared_note_id", sharedNoteID))

	resp, err := uc.api.UpdateSharedStatus(ctx, userID, sharedNoteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errUpdateSharedStatus, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%s: %w", errUpdateSharedStatus, entities.ErrEmptyResponse)
	}

	update := &entities.StatusUpdate{
		SharedNoteID: sharedNoteID,
		NewStatus:    entities.ShareStatus(resp.NewStatus),
		RemovedBy:    resp.RemovedBy,
		Message:      resp.Message,
	}

	if !update.NewStatus.Valid() {
		log.Warn(ctx, logUnknownShareStatus, zap.String("status", resp.NewStatus))
		return update, nil
	}

	row, err := uc.shared.GetByRemoteID(ctx, sharedNoteID)
	switch {
	case errors.Is(err, entities.ErrNotFound):
		log.Debug(ctx, logStatusNotMirrored)
		return update, nil
	case err != nil:
		log.Warn(ctx, logStatusMirrorFailed, zap.Error(err))
		return update, nil
	}

	row.Status = update.NewStatus
	if err := uc.shared.Upsert(ctx, row); err != nil {
		log.Warn(ctx, logStatusMirrorFailed, zap.Error(err))
	}
	return update, nil
}

// CanAccessNote решает по локальным данным, без обращения к серверу: владелец заметки
// или получатель активной записи о совместном доступе.
func (uc *SharingUseCase) CanAccessNote(ctx context.Context, userID, noteID int64) (bool, error) {
	note, err := uc.notes.GetByRemoteID(ctx, noteID)
	switch {
	case err == nil:
		if note.UserID != nil && *note.UserID == userID {
			return true, nil
		}
	case !errors.Is(err, entities.ErrNotFound):
		return false, fmt.Errorf("%s: %w", errCheckAccess, err)
	}

	ok, err := uc.shared.ExistsActiveShare(ctx, noteID, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCheckAccess, err)
	}
	return ok, nil
}

// CanShareNote проверяет, что идентификатор заметки задан и положителен.
func (uc *SharingUseCase) CanShareNote(noteID *int64) bool {
	return noteID != nil && *noteID > 0
}

// GetSharedNoteDetails ищет заметку в списке "со мной поделились".
// Ошибка загрузки списка также возвращается как ErrSharedNoteNotFound.
func (uc *SharingUseCase) GetSharedNoteDetails(ctx context.Context, userID, noteID int64) (*entities.SharedWithMe, error) {
	list, err := uc.GetNotesSharedWithMe(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrSharedNoteNotFound, err)
	}

	for i := range list {
		if list[i].NoteID == noteID {
			return &list[i], nil
		}
	}
	return nil, entities.ErrSharedNoteNotFound
}
