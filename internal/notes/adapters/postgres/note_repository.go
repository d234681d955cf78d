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

const noteColumns = `local_key, remote_id, title, description, tag, priority, is_finished,
        reminder, checklist, auto_delete, delete_at, user_id, is_pending_create`

// NoteRepository реализует repositories.NoteStore и рассылает снимки после каждого изменения.
type NoteRepository struct {
	pool PgxPoolInterface
	hub  *observe.Hub[[]entities.Note]

	// snapshotMu упорядочивает чтение снимка и его публикацию.
	snapshotMu sync.Mutex
}

// NewNoteRepository создает новый экземпляр репозитория заметок.
func NewNoteRepository(pool PgxPoolInterface) *NoteRepository {
	return &NoteRepository{pool: pool, hub: observe.NewHub[[]entities.Note]()}
}

var _ repositories.NoteStore = (*NoteRepository)(nil)

func scanNote(row pgx.Row) (*entities.Note, error) {
	var n entities.Note
	err := row.Scan(
		&n.ID,
		&n.RemoteID,
		&n.Title,
		&n.Description,
		&n.Tag,
		&n.Priority,
		&n.IsFinished,
		&n.Reminder,
		&n.Checklist,
		&n.AutoDelete,
		&n.DeleteAt,
		&n.UserID,
		&n.IsPendingCreate,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepository) queryNotes(ctx context.Context, query string, args ...interface{}) ([]entities.Note, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []entities.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetByID находит заметку по локальному ключу.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	query := `SELECT ` + noteColumns + ` FROM notes WHERE local_key = $1`

	n, err := scanNote(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("id", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error finding note by id", zap.Error(err))
		return nil, fmt.Errorf("error querying note by id: %w", err)
	}
	return n, nil
}

// GetByRemoteID находит заметку по серверному идентификатору.
func (r *NoteRepository) GetByRemoteID(ctx context.Context, remoteID int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByRemoteID"))

	query := `SELECT ` + noteColumns + ` FROM notes WHERE remote_id = $1`

	n, err := scanNote(r.pool.QueryRow(ctx, query, remoteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("remote_id", remoteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error finding note by remote id", zap.Error(err))
		return nil, fmt.Errorf("error querying note by remote id: %w", err)
	}
	return n, nil
}

// GetAll возвращает все заметки.
func (r *NoteRepository) GetAll(ctx context.Context) ([]entities.Note, error) {
	notes, err := r.queryNotes(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY priority DESC, local_key`)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error listing notes", zap.Error(err))
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

// GetPendingCreate возвращает заметки, еще не созданные на сервере.
func (r *NoteRepository) GetPendingCreate(ctx context.Context) ([]entities.Note, error) {
	notes, err := r.queryNotes(ctx, `SELECT `+noteColumns+` FROM notes WHERE is_pending_create ORDER BY local_key`)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error listing pending notes", zap.Error(err))
		return nil, fmt.Errorf("error listing pending notes: %w", err)
	}
	return notes, nil
}

// GetByOwner возвращает заметки пользователя или, при nil, заметки без владельца.
func (r *NoteRepository) GetByOwner(ctx context.Context, userID *int64) ([]entities.Note, error) {
	var (
		notes []entities.Note
		err   error
	)
	if userID == nil {
		notes, err = r.queryNotes(ctx, `SELECT `+noteColumns+` FROM notes WHERE user_id IS NULL ORDER BY local_key`)
	} else {
		notes, err = r.queryNotes(ctx, `SELECT `+noteColumns+` FROM notes WHERE user_id = $1 ORDER BY local_key`, *userID)
	}
	if err != nil {
		logger.Log(ctx).Error(ctx, "error listing notes by owner", zap.Error(err))
		return nil, fmt.Errorf("error listing notes by owner: %w", err)
	}
	return notes, nil
}

// Upsert вставляет или обновляет заметку по локальному ключу.
func (r *NoteRepository) Upsert(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Upsert"))

	query := `
        INSERT INTO notes (` + noteColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (local_key) DO UPDATE SET
            remote_id = EXCLUDED.remote_id,
            title = EXCLUDED.title,
            description = EXCLUDED.description,
            tag = EXCLUDED.tag,
            priority = EXCLUDED.priority,
            is_finished = EXCLUDED.is_finished,
            reminder = EXCLUDED.reminder,
            checklist = EXCLUDED.checklist,
            auto_delete = EXCLUDED.auto_delete,
            delete_at = EXCLUDED.delete_at,
            user_id = EXCLUDED.user_id,
            is_pending_create = EXCLUDED.is_pending_create,
            updated_at = NOW()
    `

	_, err := r.pool.Exec(ctx, query,
		note.ID,
		note.RemoteID,
		note.Title,
		note.Description,
		note.Tag,
		note.Priority,
		note.IsFinished,
		note.Reminder,
		note.Checklist,
		note.AutoDelete,
		note.DeleteAt,
		note.UserID,
		note.IsPendingCreate,
	)
	if err != nil {
		log.Error(ctx, "error upserting note", zap.String("id", note.ID), zap.Error(err))
		return fmt.Errorf("error upserting note: %w", err)
	}

	r.notify(ctx)
	return nil
}

// Delete удаляет заметку по локальному ключу.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE local_key = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting note", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("error deleting note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNoteNotFound
	}

	r.notify(ctx)
	return nil
}

// DeleteAll удаляет все заметки.
func (r *NoteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM notes`); err != nil {
		logger.Log(ctx).Error(ctx, "error deleting all notes", zap.Error(err))
		return fmt.Errorf("error deleting all notes: %w", err)
	}
	r.notify(ctx)
	return nil
}

// LinkToUser назначает владельца заметкам без владельца.
func (r *NoteRepository) LinkToUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE notes SET user_id = $1, updated_at = NOW() WHERE user_id IS NULL`, userID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error linking notes to user", zap.Int64("user_id", userID), zap.Error(err))
		return 0, fmt.Errorf("error linking notes to user: %w", err)
	}
	if tag.RowsAffected() > 0 {
		r.notify(ctx)
	}
	return tag.RowsAffected(), nil
}

// Observe подписывает на снимки всех заметок.
func (r *NoteRepository) Observe(ctx context.Context) (<-chan []entities.Note, error) {
	r.snapshotMu.Lock()
	defer r.snapshotMu.Unlock()

	notes, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	r.hub.Publish(notes)
	return r.hub.Subscribe(ctx), nil
}

// Close завершает все подписки.
func (r *NoteRepository) Close() {
	r.hub.Close()
}

// notify публикует свежий снимок, если есть подписчики.
// Снимок читается уже после фиксации записи, поэтому последний опубликованный
// снимок всегда включает последнее изменение.
func (r *NoteRepository) notify(ctx context.Context) {
	r.snapshotMu.Lock()
	defer r.snapshotMu.Unlock()

	if r.hub.Subscribers() == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	notes, err := r.GetAll(ctx)
	if err != nil {
		logger.Log(ctx).Warn(ctx, "failed to refresh notes snapshot", zap.Error(err))
		return
	}
	r.hub.Publish(notes)
}
