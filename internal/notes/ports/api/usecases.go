// Package api defines the use-case interfaces served by the local HTTP API.
package api

import (
	"context"

	"notablelists/internal/notes/domain/entities"
)

// NoteService - работа с заметками: локальное хранение и синхронизация.
type NoteService interface {
	ObserveNotes(ctx context.Context) (<-chan []entities.Note, error)
	GetNote(ctx context.Context, id string) (*entities.Note, error)
	ListNotes(ctx context.Context) ([]entities.Note, error)
	CreateNoteLocal(ctx context.Context, note entities.Note) (*entities.Note, error)
	Upsert(ctx context.Context, note entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, id string) error
	PostPendingNotes(ctx context.Context) error
	PostPendingNotesForUser(ctx context.Context, userID int64) error
	PostNote(ctx context.Context, note entities.Note) (*entities.Note, error)
	PutNote(ctx context.Context, note entities.Note) (*entities.Note, error)
	FetchUserNotesFromAPI(ctx context.Context, userID int64) ([]entities.Note, error)
	SyncOnLogin(ctx context.Context, userID int64) error
}

// SharingService - совместный доступ к заметкам.
type SharingService interface {
	ShareNote(ctx context.Context, ownerID, noteID, friendID int64) (*entities.ShareResult, error)
	GetNotesSharedWithMe(ctx context.Context, userID int64) ([]entities.SharedWithMe, error)
	GetNotesSharedByMe(ctx context.Context, userID int64) ([]entities.SharedByMe, error)
	GetAllSharedNotes(ctx context.Context, userID int64) (*entities.SharedNotes, error)
	SyncSharedNotes(ctx context.Context, userID int64) error
	UpdateSharedNoteStatus(ctx context.Context, userID, sharedNoteID int64) (*entities.StatusUpdate, error)
	CanAccessNote(ctx context.Context, userID, noteID int64) (bool, error)
	CanShareNote(noteID *int64) bool
	GetSharedNoteDetails(ctx context.Context, userID, noteID int64) (*entities.SharedWithMe, error)
}

// FriendsService - друзья и каталог пользователей.
type FriendsService interface {
	SendFriendRequest(ctx context.Context, userID, friendID int64) error
	AcceptFriendRequest(ctx context.Context, userID, friendshipID int64) error
	DeclineFriendRequest(ctx context.Context, userID, friendshipID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]entities.Friend, error)
	GetPendingRequests(ctx context.Context, userID int64) ([]entities.PendingRequest, error)
	GetAllUsers(ctx context.Context) ([]entities.Friend, error)
	SearchUsers(ctx context.Context, query string) ([]entities.Friend, error)
}

// SessionService - вход, регистрация и текущая сессия.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*entities.Session, error)
	Register(ctx context.Context, username, password string) (*entities.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*entities.Session, error)
	ObserveSession(ctx context.Context) (<-chan *entities.Session, error)
}

// UserService - локальные учетные записи и их синхронизация.
type UserService interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
	UpsertUser(ctx context.Context, user entities.User) error
	DeleteUser(ctx context.Context, id string) error
	PostPendingUsers(ctx context.Context) error
	PostUser(ctx context.Context, user entities.User) (*entities.User, error)
	PutUser(ctx context.Context, user entities.User) (*entities.User, error)
}
