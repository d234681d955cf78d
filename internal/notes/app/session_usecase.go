package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/api"
	"notablelists/internal/notes/ports/remote"
	"notablelists/internal/notes/ports/session"
	"notablelists/pkg/logger"
)

const (
	msgLoginFailed        = "login failed"
	msgRegistrationFailed = "registration failed"

	errSaveSession  = "failed to save session"
	errClearSession = "failed to clear session"

	logLoggedIn        = "user logged in"
	logLoginNotesSync  = "note sync after login failed"
	logLoginSharesSync = "shared note sync after login failed"
)

var _ api.SessionService = (*SessionUseCase)(nil)

// NoteSyncer переносит локальные заметки пользователю после входа.
type NoteSyncer interface {
	SyncOnLogin(ctx context.Context, userID int64) error
}

// SharedNoteSyncer обновляет локальный кэш совместного доступа.
type SharedNoteSyncer interface {
	SyncSharedNotes(ctx context.Context, userID int64) error
}

// SessionUseCase отвечает за вход, регистрацию и текущую сессию.
type SessionUseCase struct {
	auth   remote.AuthAPI
	store  session.Store
	notes  NoteSyncer
	shares SharedNoteSyncer
}

// NewSessionUseCase создает сценарии входа и выхода.
func NewSessionUseCase(auth remote.AuthAPI, store session.Store, notes NoteSyncer, shares SharedNoteSyncer) *SessionUseCase {
	return &SessionUseCase{auth: auth, store: store, notes: notes, shares: shares}
}

// Login проверяет учетные данные на сервере, сохраняет сессию и синхронизирует данные пользователя.
// Ошибки синхронизации только логируются.
func (uc *SessionUseCase) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	sess, err := uc.authenticate(ctx, uc.auth.Login, username, password, msgLoginFailed)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithUserID(ctx, sess.UserID)
	log := logger.Log(ctx).With(zap.String("method", "SessionUseCase.Login"))
	log.Info(ctx, logLoggedIn)

	if err := uc.notes.SyncOnLogin(ctx, sess.UserID); err != nil {
		log.Warn(ctx, logLoginNotesSync, zap.Error(err))
	}
	if err := uc.shares.SyncSharedNotes(ctx, sess.UserID); err != nil {
		log.Warn(ctx, logLoginSharesSync, zap.Error(err))
	}
	return sess, nil
}

// Register создает учетную запись и сохраняет сессию без синхронизации.
func (uc *SessionUseCase) Register(ctx context.Context, username, password string) (*entities.Session, error) {
	return uc.authenticate(ctx, uc.auth.Register, username, password, msgRegistrationFailed)
}

func (uc *SessionUseCase) authenticate(
	ctx context.Context,
	call func(context.Context, remote.UserRequest) (*remote.AuthResponse, error),
	username, password, fallback string,
) (*entities.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, entities.ErrMissingCredentials
	}

	resp, err := call(ctx, remote.UserRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if resp == nil || !resp.Success || resp.User == nil {
		msg := fallback
		if resp != nil && resp.Message != nil && *resp.Message != "" {
			msg = *resp.Message
		}
		return nil, fmt.Errorf("%w: %s", entities.ErrInvalidCredentials, msg)
	}

	sess := entities.Session{UserID: resp.User.UserID, Username: resp.User.Username}
	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("%s: %w", errSaveSession, err)
	}
	return &sess, nil
}

// Logout удаляет текущую сессию.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	if err := uc.store.Clear(ctx); err != nil {
		return fmt.Errorf("%s: %w", errClearSession, err)
	}
	return nil
}

// CurrentSession возвращает entities.ErrNotAuthenticated, если вход не выполнен.
func (uc *SessionUseCase) CurrentSession(ctx context.Context) (*entities.Session, error) {
	return uc.store.Get(ctx)
}

// ObserveSession возвращает текущую сессию и ее последующие изменения; nil означает выход.
func (uc *SessionUseCase) ObserveSession(ctx context.Context) (<-chan *entities.Session, error) {
	return uc.store.Observe(ctx)
}
