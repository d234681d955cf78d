package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/session"
	"notablelists/pkg/logger"
)

const (
	logSyncWorkerDisabled = "periodic sync disabled"
	logSyncWorkerStarted  = "periodic sync started"
	logSyncWorkerStopped  = "periodic sync stopped"
	logSyncPendingFailed  = "periodic pending note sync failed"
	logSyncSharesFailed   = "periodic shared note sync failed"
	logSyncSessionFailed  = "failed to read session for periodic sync"
)

// PendingNoteFlusher отправляет ожидающие заметки пользователя на сервер.
type PendingNoteFlusher interface {
	PostPendingNotesForUser(ctx context.Context, userID int64) error
}

// SyncWorker периодически синхронизирует данные вошедшего пользователя.
type SyncWorker struct {
	sessions session.Store
	notes    PendingNoteFlusher
	shares   SharedNoteSyncer
	interval time.Duration
}

// NewSyncWorker создает фоновую синхронизацию. При interval <= 0 Run сразу завершается.
func NewSyncWorker(sessions session.Store, notes PendingNoteFlusher, shares SharedNoteSyncer, interval time.Duration) *SyncWorker {
	return &SyncWorker{sessions: sessions, notes: notes, shares: shares, interval: interval}
}

// Run выполняет синхронизацию с заданным интервалом до завершения ctx.
// При нулевом интервале сразу возвращает управление.
func (w *SyncWorker) Run(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("component", "SyncWorker"))

	if w.interval <= 0 {
		log.Info(ctx, logSyncWorkerDisabled)
		return nil
	}

	log.Info(ctx, logSyncWorkerStarted, zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(ctx, logSyncWorkerStopped)
			return nil
		case <-ticker.C:
			w.SyncOnce(ctx)
		}
	}
}

// SyncOnce выполняет один цикл синхронизации. Без сессии ничего не делает.
func (w *SyncWorker) SyncOnce(ctx context.Context) {
	log := logger.Log(ctx).With(zap.String("component", "SyncWorker"))

	sess, err := w.sessions.Get(ctx)
	if err != nil {
		if !errors.Is(err, entities.ErrNotAuthenticated) {
			log.Warn(ctx, logSyncSessionFailed, zap.Error(err))
		}
		return
	}
	ctx = logger.WithUserID(ctx, sess.UserID)

	if err := w.notes.PostPendingNotesForUser(ctx, sess.UserID); err != nil {
		log.Warn(ctx, logSyncPendingFailed, zap.Error(err))
	}
	if err := w.shares.SyncSharedNotes(ctx, sess.UserID); err != nil {
		log.Warn(ctx, logSyncSharesFailed, zap.Error(err))
	}
}
