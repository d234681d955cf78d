// Package repositories defines local store interfaces for the notes service.
package repositories

import (
	"context"

	"notablelists/internal/notes/domain/entities"
)

// NoteStore - локальное хранилище заметок.
// GetByID и GetByRemoteID возвращают entities.ErrNoteNotFound, если записи нет.
type NoteStore interface {
	GetByID(ctx context.Context, id string) (*entities.Note, error)
	GetByRemoteID(ctx context.Context, remoteID int64) (*entities.Note, error)
	GetAll(ctx context.Context) ([]entities.Note, error)
	GetPendingCreate(ctx context.Context) ([]entities.Note, error)
	// GetByOwner при userID == nil возвращает заметки без владельца.
	GetByOwner(ctx context.Context, userID *int64) ([]entities.Note, error)
	Upsert(ctx context.Context, note *entities.Note) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	// LinkToUser назначает владельца всем заметкам без владельца и возвращает их число.
	LinkToUser(ctx context.Context, userID int64) (int64, error)
	// Observe отдает текущий снимок всех заметок и затем новый снимок после каждого изменения.
	Observe(ctx context.Context) (<-chan []entities.Note, error)
}

// SharedNoteStore - локальный кэш записей о совместном доступе.
type SharedNoteStore interface {
	GetByRemoteID(ctx context.Context, remoteID int64) (*entities.SharedNote, error)
	Upsert(ctx context.Context, shared *entities.SharedNote) error
	DeleteByRemoteID(ctx context.Context, remoteID int64) error
	ClearAll(ctx context.Context) error
	// ReplaceAll атомарно заменяет все записи переданными.
	ReplaceAll(ctx context.Context, rows []entities.SharedNote) error
	ExistsActiveShare(ctx context.Context, noteID, targetUserID int64) (bool, error)
	// ListSharedWithUser возвращает активные записи, адресованные пользователю.
	ListSharedWithUser(ctx context.Context, userID int64) ([]entities.SharedNote, error)
	// ListSharedByUser возвращает записи владельца в статусах active и hidden_by_target.
	ListSharedByUser(ctx context.Context, userID int64) ([]entities.SharedNote, error)
	ObserveSharedWithUser(ctx context.Context, userID int64) (<-chan []entities.SharedNote, error)
	ObserveSharedByUser(ctx context.Context, userID int64) (<-chan []entities.SharedNote, error)
}

// UserStore - локальное хранилище учетных записей.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetPendingCreate(ctx context.Context) ([]entities.User, error)
	Upsert(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
}
