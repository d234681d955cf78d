package entities

import "time"

// ShareStatus - состояние записи о совместном доступе.
type ShareStatus string

const (
	ShareStatusActive         ShareStatus = "active"
	ShareStatusHiddenByTarget ShareStatus = "hidden_by_target"
	ShareStatusRemovedByOwner ShareStatus = "removed_by_owner"
)

// Valid сообщает, является ли статус одним из известных.
func (s ShareStatus) Valid() bool {
	switch s {
	case ShareStatusActive, ShareStatusHiddenByTarget, ShareStatusRemovedByOwner:
		return true
	default:
		return false
	}
}

// SharedNote - локальная копия серверной записи о совместном доступе.
// RemoteID - серверный идентификатор записи, NoteID - серверный идентификатор заметки.
type SharedNote struct {
	RemoteID     int64       `json:"remoteId"`
	NoteID       int64       `json:"noteId"`
	OwnerUserID  int64       `json:"ownerUserId"`
	TargetUserID int64       `json:"targetUserId"`
	Status       ShareStatus `json:"status"`
}

// SharedWithMe - заметка, которой поделились с пользователем.
type SharedWithMe struct {
	SharedNoteID  int64      `json:"sharedNoteId"`
	NoteID        int64      `json:"noteId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	OwnerUserID   int64      `json:"ownerUserId"`
	OwnerUsername string     `json:"ownerUsername"`
	Tag           string     `json:"tag"`
	IsFinished    bool       `json:"isFinished"`
	Reminder      *time.Time `json:"reminder,omitempty"`
	Checklist     *string    `json:"checklist,omitempty"`
	Priority      int        `json:"priority"`
}

// ToNote представляет запись как заметку владельца.
func (s SharedWithMe) ToNote() Note {
	return Note{
		ID:          NoteKeyForRemote(s.NoteID),
		RemoteID:    Int64Ptr(s.NoteID),
		Title:       s.Title,
		Description: s.Description,
		Tag:         s.Tag,
		Priority:    s.Priority,
		IsFinished:  s.IsFinished,
		Reminder:    s.Reminder,
		Checklist:   s.Checklist,
		UserID:      Int64Ptr(s.OwnerUserID),
	}
}

// SharedByMe - заметка пользователя, которой он поделился с другом.
type SharedByMe struct {
	SharedNoteID   int64       `json:"sharedNoteId"`
	NoteID         int64       `json:"noteId"`
	NoteTitle      string      `json:"noteTitle"`
	TargetUserID   int64       `json:"targetUserId"`
	TargetUsername string      `json:"targetUsername"`
	Status         ShareStatus `json:"status"`
}

// SharedNotes объединяет оба направления совместного доступа.
type SharedNotes struct {
	WithMe []SharedWithMe `json:"sharedWithMe"`
	ByMe   []SharedByMe   `json:"sharedByMe"`
}

// ShareResult - ответ сервера на создание совместного доступа.
type ShareResult struct {
	SharedNoteID int64  `json:"sharedNoteId"`
	Message      string `json:"message"`
	FriendName   string `json:"friendName"`
	NoteTitle    string `json:"noteTitle"`
}

// StatusUpdate - ответ сервера на изменение статуса совместного доступа.
type StatusUpdate struct {
	SharedNoteID int64       `json:"sharedNoteId"`
	NewStatus    ShareStatus `json:"newStatus"`
	RemovedBy    string      `json:"removedBy"`
	Message      string      `json:"message"`
}
