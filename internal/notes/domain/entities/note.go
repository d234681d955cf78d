// Package entities defines the domain entities for the notes service.
package entities

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Note представляет заметку, хранимую локально и, после синхронизации, на сервере.
type Note struct {
	ID              string     `json:"id"`
	RemoteID        *int64     `json:"remoteId,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Tag             string     `json:"tag"`
	Priority        int        `json:"priority"`
	IsFinished      bool       `json:"isFinished"`
	Reminder        *time.Time `json:"reminder,omitempty"`
	Checklist       *string    `json:"checklist,omitempty"`
	AutoDelete      *bool      `json:"autoDelete,omitempty"`
	DeleteAt        *time.Time `json:"deleteAt,omitempty"`
	UserID          *int64     `json:"userId,omitempty"`
	IsPendingCreate bool       `json:"isPendingCreate"`
}

// NewLocalKey генерирует локальный ключ заметки или пользователя.
func NewLocalKey() string {
	return uuid.NewString()
}

// NoteKeyForRemote строит детерминированный локальный ключ для заметки,
// впервые полученной с сервера.
func NoteKeyForRemote(remoteID int64) string {
	return "remote-" + strconv.FormatInt(remoteID, 10)
}

// HasRemoteID сообщает, назначен ли заметке серверный идентификатор.
func (n *Note) HasRemoteID() bool {
	return n.RemoteID != nil
}

// HasOwner сообщает, привязана ли заметка к пользователю.
func (n *Note) HasOwner() bool {
	return n.UserID != nil
}

// ChecklistItems разбирает сериализованный чек-лист заметки.
func (n *Note) ChecklistItems() []ChecklistItem {
	if n.Checklist == nil {
		return []ChecklistItem{}
	}
	return ParseChecklist(*n.Checklist)
}

// Int64Ptr возвращает указатель на v.
func Int64Ptr(v int64) *int64 {
	return &v
}
