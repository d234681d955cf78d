// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/api"
	"notablelists/internal/notes/ports/remote"
	"notablelists/internal/notes/ports/repositories"
	"notablelists/pkg/logger"
)

const (
	errGetNote          = "failed to get note"
	errListNotes        = "failed to list notes"
	errSaveNote         = "failed to save note"
	errDeleteNote       = "failed to delete note"
	errListPending      = "failed to list pending notes"
	errLinkNotes        = "failed to link local notes to user"
	errCreateRemoteNote = "failed to create note on server"
	errUpdateRemoteNote = "failed to update note on server"
	errFetchUserNotes   = "failed to fetch user notes"

	logRemoteUpdateSkipped = "remote update failed, local note kept"
	logRemoteDeleteSkipped = "remote delete failed, local note already removed"
	logPendingPosted       = "pending note created on server"
	logPendingFailed       = "failed to create pending note on server"
	logNotesLinked         = "local notes linked to user"
)

var _ api.NoteService = (*NoteUseCase)(nil)

// NoteUseCase согласует локальное хранилище заметок с удаленным сервисом.
// Чтение всегда идет из локального хранилища, запись на сервер выполняется попутно.
type NoteUseCase struct {
	store repositories.NoteStore
	api   remote.NotesAPI
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(store repositories.NoteStore, notesAPI remote.NotesAPI) *NoteUseCase {
	return &NoteUseCase{store: store, api: notesAPI}
}

// ObserveNotes отдает текущий список заметок и новый список после каждого изменения.
func (uc *NoteUseCase) ObserveNotes(ctx context.Context) (<-chan []entities.Note, error) {
	return uc.store.Observe(ctx)
}

// GetNote возвращает заметку по локальному ключу.
func (uc *NoteUseCase) GetNote(ctx context.Context, id string) (*entities.Note, error) {
	note, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errGetNote, err)
	}
	return note, nil
}

// ListNotes возвращает все локальные заметки.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]entities.Note, error) {
	notes, err := uc.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errListNotes, err)
	}
	return notes, nil
}

// CreateNoteLocal сохраняет заметку только локально, помечая ее как ожидающую создания на сервере.
func (uc *NoteUseCase) CreateNoteLocal(ctx context.Context, note entities.Note) (*entities.Note, error) {
	if note.ID == "" {
		note.ID = entities.NewLocalKey()
	}
	note.IsPendingCreate = true

	if err := uc.store.Upsert(ctx, &note); err != nil {
		return nil, fmt.Errorf("%s: %w", errSaveNote, err)
	}
	return &note, nil
}

// Upsert сохраняет заметку локально. Для заметки с серверным идентификатором
// дополнительно отправляется обновление на сервер; его ошибка только логируется.
func (uc *NoteUseCase) Upsert(ctx context.Context, note entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Upsert"))

	if note.ID == "" {
		note.ID = entities.NewLocalKey()
	}
	note.IsPendingCreate = !note.HasRemoteID()

	if err := uc.store.Upsert(ctx, &note); err != nil {
		return nil, fmt.Errorf("%s: %w", errSaveNote, err)
	}

	if note.HasRemoteID() {
		if err := uc.updateRemote(ctx, &note); err != nil {
			log.Warn(ctx, logRemoteUpdateSkipped,
				zap.String("note_id", note.ID), zap.Int64("remote_id", *note.RemoteID), zap.Error(err))
		}
	}
	return &note, nil
}

// Delete удаляет заметку локально и, если она была синхронизирована, на сервере.
// Локальное удаление не откатывается при ошибке сервера.
func (uc *NoteUseCase) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Delete"))

	note, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", errGetNote, err)
	}

	if err := uc.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errDeleteNote, err)
	}

	if !note.HasRemoteID() {
		return nil
	}

	if note.HasOwner() {
		err = uc.api.DeleteUserNote(ctx, *note.UserID, *note.RemoteID)
	} else {
		err = uc.api.DeleteNote(ctx, *note.RemoteID)
	}
	if err != nil {
		log.Warn(ctx, logRemoteDeleteSkipped,
			zap.String("note_id", id), zap.Int64("remote_id", *note.RemoteID), zap.Error(err))
	}
	return nil
}

// PostPendingNotes создает на сервере все ожидающие заметки. Ошибка одной заметки
// не прерывает обработку остальных, все ошибки возвращаются вместе.
func (uc *NoteUseCase) PostPendingNotes(ctx context.Context) error {
	pending, err := uc.store.GetPendingCreate(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errListPending, err)
	}
	return uc.postPending(ctx, pending, nil)
}

// PostPendingNotesForUser создает ожидающие заметки через эндпоинт пользователя
// и назначает ему владение. Заметки других пользователей не затрагиваются.
func (uc *NoteUseCase) PostPendingNotesForUser(ctx context.Context, userID int64) error {
	pending, err := uc.store.GetPendingCreate(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errListPending, err)
	}

	own := make([]entities.Note, 0, len(pending))
	for _, n := range pending {
		if n.UserID == nil || *n.UserID == userID {
			own = append(own, n)
		}
	}
	return uc.postPending(ctx, own, &userID)
}

func (uc *NoteUseCase) postPending(ctx context.Context, pending []entities.Note, owner *int64) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.PostPendingNotes"))

	var errs []error
	for i := range pending {
		note := pending[i]
		if owner != nil {
			note.UserID = entities.Int64Ptr(*owner)
		}

		resp, err := uc.createRemote(ctx, &note)
		if err != nil {
			log.Warn(ctx, logPendingFailed, zap.String("note_id", note.ID), zap.Error(err))
			errs = append(errs, fmt.Errorf("note %s: %w", note.ID, err))
			continue
		}

		note.RemoteID = entities.Int64Ptr(resp.NoteID)
		note.IsPendingCreate = false
		if err := uc.store.Upsert(ctx, &note); err != nil {
			errs = append(errs, fmt.Errorf("note %s: %s: %w", note.ID, errSaveNote, err))
			continue
		}

		log.Debug(ctx, logPendingPosted, zap.String("note_id", note.ID), zap.Int64("remote_id", resp.NoteID))
	}

	return errors.Join(errs...)
}

// PostNote создает заметку на сервере и возвращает ее копию с серверным идентификатором.
// Локальное хранилище не изменяется.
func (uc *NoteUseCase) PostNote(ctx context.Context, note entities.Note) (*entities.Note, error) {
	resp, err := uc.createRemote(ctx, &note)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCreateRemoteNote, err)
	}

	note.RemoteID = entities.Int64Ptr(resp.NoteID)
	note.IsPendingCreate = false
	return &note, nil
}

// PutNote обновляет заметку на сервере. Требует серверный идентификатор.
func (uc *NoteUseCase) PutNote(ctx context.Context, note entities.Note) (*entities.Note, error) {
	if !note.HasRemoteID() {
		return nil, entities.ErrMissingRemoteID
	}
	if err := uc.updateRemote(ctx, &note); err != nil {
		return nil, fmt.Errorf("%s: %w", errUpdateRemoteNote, err)
	}
	return &note, nil
}

// FetchUserNotesFromAPI загружает заметки пользователя с сервера и сохраняет их локально.
// Уже известные заметки сохраняют свой локальный ключ.
func (uc *NoteUseCase) FetchUserNotesFromAPI(ctx context.Context, userID int64) ([]entities.Note, error) {
	remoteNotes, err := uc.api.ListUserNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errFetchUserNotes, err)
	}

	notes := make([]entities.Note, 0, len(remoteNotes))
	for i := range remoteNotes {
		key, err := uc.localKeyFor(ctx, remoteNotes[i].NoteID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errFetchUserNotes, err)
		}

		note := noteFromResponse(key, &remoteNotes[i], entities.Int64Ptr(userID))
		if err := uc.store.Upsert(ctx, &note); err != nil {
			return nil, fmt.Errorf("%s: %w", errSaveNote, err)
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// SyncOnLogin переносит локальные данные в учетную запись пользователя после входа:
// отправляет ожидающие заметки, привязывает заметки без владельца, затем загружает заметки с сервера.
func (uc *NoteUseCase) SyncOnLogin(ctx context.Context, userID int64) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.SyncOnLogin"), zap.Int64("user_id", userID))

	var errs []error
	if err := uc.PostPendingNotesForUser(ctx, userID); err != nil {
		errs = append(errs, err)
	}

	linked, err := uc.store.LinkToUser(ctx, userID)
	if err != nil {
		return errors.Join(append(errs, fmt.Errorf("%s: %w", errLinkNotes, err))...)
	}
	log.Debug(ctx, logNotesLinked, zap.Int64("count", linked))

	if _, err := uc.FetchUserNotesFromAPI(ctx, userID); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (uc *NoteUseCase) localKeyFor(ctx context.Context, remoteID int64) (string, error) {
	existing, err := uc.store.GetByRemoteID(ctx, remoteID)
	switch {
	case err == nil:
		return existing.ID, nil
	case errors.Is(err, entities.ErrNotFound):
		return entities.NoteKeyForRemote(remoteID), nil
	default:
		return "", err
	}
}

func (uc *NoteUseCase) createRemote(ctx context.Context, note *entities.Note) (*remote.NoteResponse, error) {
	var (
		resp *remote.NoteResponse
		err  error
	)
	if note.HasOwner() {
		resp, err = uc.api.CreateUserNote(ctx, *note.UserID, toNoteRequest(note))
	} else {
		resp, err = uc.api.CreateNote(ctx, toNoteRequest(note))
	}
	if err == nil && resp == nil {
		err = entities.ErrEmptyResponse
	}
	return resp, err
}

func (uc *NoteUseCase) updateRemote(ctx context.Context, note *entities.Note) error {
	if note.HasOwner() {
		return uc.api.UpdateUserNote(ctx, *note.UserID, *note.RemoteID, toNoteRequest(note))
	}
	return uc.api.UpdateNote(ctx, *note.RemoteID, toNoteRequest(note))
}
