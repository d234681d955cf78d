// Package remote defines the contract of the remote notes REST service.
package remote

import "time"

// NoteRequest - тело создания и обновления заметки.
type NoteRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tag         string     `json:"tag"`
	IsFinished  bool       `json:"isFinished"`
	Reminder    *time.Time `json:"reminder"`
	Checklist   *string    `json:"checklist"`
	Priority    int        `json:"priority"`
	DeleteAt    *time.Time `json:"deleteAt"`
	AutoDelete  *bool      `json:"autoDelete"`
}

// NoteResponse - заметка в ответе сервера.
type NoteResponse struct {
	NoteID      int64      `json:"noteId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tag         string     `json:"tag"`
	IsFinished  bool       `json:"isFinished"`
	Reminder    *time.Time `json:"reminder"`
	Checklist   *string    `json:"checklist"`
	Priority    int        `json:"priority"`
	DeleteAt    *time.Time `json:"deleteAt"`
	AutoDelete  *bool      `json:"autoDelete"`
	UserID      *int64     `json:"userId,omitempty"`
}

type ShareRequest struct {
	FriendID int64 `json:"friendId"`
}

type ShareResponse struct {
	Message      string `json:"message"`
	SharedNoteID int64  `json:"sharedNoteId"`
	FriendName   string `json:"friendName"`
	NoteTitle    string `json:"noteTitle"`
}

// SharedNoteWithDetails - запись списка shared-notes (со мной поделились).
type SharedNoteWithDetails struct {
	SharedNoteID    int64      `json:"sharedNoteId"`
	NoteID          int64      `json:"noteId"`
	NoteTitle       string     `json:"noteTitle"`
	NoteDescription string     `json:"noteDescription"`
	OwnerUserID     int64      `json:"ownerUserId"`
	OwnerUsername   string     `json:"ownerUsername"`
	Tag             string     `json:"tag"`
	IsFinished      bool       `json:"isFinished"`
	Reminder        *time.Time `json:"reminder"`
	Checklist       *string    `json:"checklist"`
	Priority        int        `json:"priority"`
}

// SharedNoteByMe - запись списка shared-by-me.
type SharedNoteByMe struct {
	SharedNoteID   int64  `json:"sharedNoteId"`
	NoteID         int64  `json:"noteId"`
	NoteTitle      string `json:"noteTitle"`
	TargetUserID   int64  `json:"targetUserId"`
	TargetUsername string `json:"targetUsername"`
	Status         string `json:"status"`
}

type UpdateSharedStatusResponse struct {
	Message      string `json:"message"`
	RemovedBy    string `json:"removedBy"`
	NewStatus    string `json:"newStatus"`
	SharedNoteID int64  `json:"sharedNoteId"`
}

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse - ответ login/register. User заполнен только при Success.
type AuthResponse struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user,omitempty"`
	Message *string       `json:"message,omitempty"`
}

type FriendRequest struct {
	FriendID int64 `json:"friendId"`
}

type FriendDTO struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

type PendingRequestDTO struct {
	FriendshipID      int64  `json:"friendshipId"`
	RequesterID       int64  `json:"requesterId"`
	RequesterUsername string `json:"requesterUsername"`
}
