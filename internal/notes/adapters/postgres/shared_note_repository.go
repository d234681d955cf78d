package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/repositories"
	"notablelists/pkg/logger"
	"notablelists/pkg/observe"
)

const sharedNoteColumns = `remote_id, note_id, owner_user_id, target_user_id, status`

const upsertSharedNoteQuery = `
        INSERT INTO shared_notes (` + sharedNoteColumns + `)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (remote_id) DO UPDATE SET
            note_id = EXCLUDED.note_id,
            owner_user_id = EXCLUDED.owner_user_id,
            target_user_id = EXCLUDED.target_user_id,
            status = EXCLUDED.status
    `

// SharedNoteRepository реализует repositories.SharedNoteStore.
type SharedNoteRepository struct {
	pool PgxPoolInterface
	hub  *observe.Hub[[]entities.SharedNote]

	snapshotMu sync.Mutex
}

// NewSharedNoteRepository создает новый экземпляр репозитория записей о совместном доступе.
func NewSharedNoteRepository(pool PgxPoolInterface) *SharedNoteRepository {
	return &SharedNoteRepository{pool: pool, hub: observe.NewHub[[]entities.SharedNote]()}
}

var _ repositories.SharedNoteStore = (*SharedNoteRepository)(nil)

func scanSharedNote(row pgx.Row) (*entities.SharedNote, error) {
	var (
		s      entities.SharedNote
		status string
	)
	if err := row.Scan(&s.RemoteID, &s.NoteID, &s.OwnerUserID, &s.TargetUserID, &status); err != nil {
		return nil, err
	}
	s.Status = entities.ShareStatus(status)
	return &s, nil
}

func (r *SharedNoteRepository) querySharedNotes(ctx context.Context, query string, args ...interface{}) ([]entities.SharedNote, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []entities.SharedNote{}
	for rows.Next() {
		s, err := scanSharedNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByRemoteID находит запись по серверному идентификатору.
func (r *SharedNoteRepository) GetByRemoteID(ctx context.Context, remoteID int64) (*entities.SharedNote, error) {
	log := logger.Log(ctx).With(zap.String("repository", "shared_note"), zap.String("method", "GetByRemoteID"))

	query := `SELECT ` + sharedNoteColumns + ` FROM shared_notes WHERE remote_id = $1`

	s, err := scanSharedNote(r.pool.QueryRow(ctx, query, remoteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "shared note not found", zap.Int64("remote_id", remoteID))
			return nil, entities.ErrSharedNoteNotFound
		}
		log.Error(ctx, "error finding shared note", zap.Error(err))
		return nil, fmt.Errorf("error querying shared note: %w", err)
	}
	return s, nil
}

// Upsert вставляет или обновляет запись по серверному идентификатору.
func (r *SharedNoteRepository) Upsert(ctx context.Context, shared *entities.SharedNote) error {
	_, err := r.pool.Exec(ctx, upsertSharedNoteQuery,
		shared.RemoteID, shared.NoteID, shared.OwnerUserID, shared.TargetUserID, string(shared.Status))
	if err != nil {
		logger.Log(ctx).Error(ctx, "error upserting shared note",
			zap.Int64("remote_id", shared.RemoteID), zap.Error(err))
		return fmt.Errorf("error upserting shared note: %w", err)
	}
	r.notify(ctx)
	return nil
}

// DeleteByRemoteID удаляет запись; отсутствие записи ошибкой не считается.
func (r *SharedNoteRepository) DeleteByRemoteID(ctx context.Context, remoteID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM shared_notes WHERE remote_id = $1`, remoteID); err != nil {
		logger.Log(ctx).Error(ctx, "error deleting shared note", zap.Int64("remote_id", remoteID), zap.Error(err))
		return fmt.Errorf("error deleting shared note: %w", err)
	}
	r.notify(ctx)
	return nil
}

// ClearAll удаляет все записи.
func (r *SharedNoteRepository) ClearAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM shared_notes`); err != nil {
		logger.Log(ctx).Error(ctx, "error clearing shared notes", zap.Error(err))
		return fmt.Errorf("error clearing shared notes: %w", err)
	}
	r.notify(ctx)
	return nil
}

// ReplaceAll в одной транзакции очищает таблицу и вставляет rows.
func (r *SharedNoteRepository) ReplaceAll(ctx context.Context, rows []entities.SharedNote) (err error) {
	log := logger.Log(ctx).With(zap.String("repository", "shared_note"), zap.String("method", "ReplaceAll"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Error(ctx, "error rolling back transaction", zap.Error(rbErr))
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM shared_notes`); err != nil {
		log.Error(ctx, "error clearing shared notes", zap.Error(err))
		return fmt.Errorf("error clearing shared notes: %w", err)
	}

	for _, s := range rows {
		if _, err = tx.Exec(ctx, upsertSharedNoteQuery,
			s.RemoteID, s.NoteID, s.OwnerUserID, s.TargetUserID, string(s.Status)); err != nil {
			log.Error(ctx, "error inserting shared note", zap.Int64("remote_id", s.RemoteID), zap.Error(err))
			return fmt.Errorf("error inserting shared note: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing transaction", zap.Error(err))
		return fmt.Errorf("error committing transaction: %w", err)
	}

	log.Debug(ctx, "shared notes replaced", zap.Int("count", len(rows)))
	r.notify(ctx)
	return nil
}

// ExistsActiveShare проверяет наличие активной записи для заметки и получателя.
func (r *SharedNoteRepository) ExistsActiveShare(ctx context.Context, noteID, targetUserID int64) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM shared_notes
            WHERE note_id = $1 AND target_user_id = $2 AND status = 'active'
        )
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, noteID, targetUserID).Scan(&exists); err != nil {
		logger.Log(ctx).Error(ctx, "error checking active share", zap.Error(err))
		return false, fmt.Errorf("error checking active share: %w", err)
	}
	return exists, nil
}

// ListSharedWithUser возвращает активные записи, адресованные пользователю.
func (r *SharedNoteRepository) ListSharedWithUser(ctx context.Context, userID int64) ([]entities.SharedNote, error) {
	result, err := r.querySharedNotes(ctx,
		`SELECT `+sharedNoteColumns+` FROM shared_notes WHERE target_user_id = $1 AND status = 'active' ORDER BY remote_id`,
		userID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error listing notes shared with user", zap.Error(err))
		return nil, fmt.Errorf("error listing notes shared with user: %w", err)
	}
	return result, nil
}

// ListSharedByUser возвращает записи владельца, кроме отозванных.
func (r *SharedNoteRepository) ListSharedByUser(ctx context.Context, userID int64) ([]entities.SharedNote, error) {
	result, err := r.querySharedNotes(ctx,
		`SELECT `+sharedNoteColumns+` FROM shared_notes
        WHERE owner_user_id = $1 AND status IN ('active', 'hidden_by_target') ORDER BY remote_id`,
		userID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error listing notes shared by user", zap.Error(err))
		return nil, fmt.Errorf("error listing notes shared by user: %w", err)
	}
	return result, nil
}

func (r *SharedNoteRepository) listAll(ctx context.Context) ([]entities.SharedNote, error) {
	return r.querySharedNotes(ctx, `SELECT `+sharedNoteColumns+` FROM shared_notes ORDER BY remote_id`)
}

// ObserveSharedWithUser подписывает на активные записи, адресованные пользователю.
func (r *SharedNoteRepository) ObserveSharedWithUser(ctx context.Context, userID int64) (<-chan []entities.SharedNote, error) {
	return r.observe(ctx, func(s entities.SharedNote) bool {
		return s.TargetUserID == userID && s.Status == entities.ShareStatusActive
	})
}

// ObserveSharedByUser подписывает на записи владельца, кроме отозванных.
func (r *SharedNoteRepository) ObserveSharedByUser(ctx context.Context, userID int64) (<-chan []entities.SharedNote, error) {
	return r.observe(ctx, func(s entities.SharedNote) bool {
		return s.OwnerUserID == userID && s.Status != entities.ShareStatusRemovedByOwner
	})
}

func (r *SharedNoteRepository) observe(ctx context.Context, keep func(entities.SharedNote) bool) (<-chan []entities.SharedNote, error) {
	in, err := r.subscribe(ctx)
	if err != nil {
		return nil, err
	}
	out := make(chan []entities.SharedNote, 1)

	go func() {
		defer close(out)
		for snapshot := range in {
			filtered := make([]entities.SharedNote, 0, len(snapshot))
			for _, s := range snapshot {
				if keep(s) {
					filtered = append(filtered, s)
				}
			}
			select {
			case out <- filtered:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Close завершает все подписки.
func (r *SharedNoteRepository) Close() {
	r.hub.Close()
}

// subscribe публикует текущий снимок и подписывается на следующие
// под тем же замком, что и notify.
func (r *SharedNoteRepository) subscribe(ctx context.Context) (<-chan []entities.SharedNote, error) {
	r.snapshotMu.Lock()
	defer r.snapshotMu.Unlock()

	all, err := r.listAll(ctx)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error loading shared notes snapshot", zap.Error(err))
		return nil, fmt.Errorf("error loading shared notes snapshot: %w", err)
	}
	r.hub.Publish(all)
	return r.hub.Subscribe(ctx), nil
}

func (r *SharedNoteRepository) notify(ctx context.Context) {
	r.snapshotMu.Lock()
	defer r.snapshotMu.Unlock()

	if r.hub.Subscribers() == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	all, err := r.listAll(ctx)
	if err != nil {
		logger.Log(ctx).Warn(ctx, "failed to refresh shared notes snapshot", zap.Error(err))
		return
	}
	r.hub.Publish(all)
}
