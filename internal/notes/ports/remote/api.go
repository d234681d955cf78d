package remote

import "context"

// Все методы возвращают *entities.RemoteError для ответов вне 2xx
// и *entities.NetworkError для сбоев транспорта.

// NotesAPI - CRUD заметок: глобальный и в разрезе пользователя.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]NoteResponse, error)
	GetNote(ctx context.Context, id int64) (*NoteResponse, error)
	CreateNote(ctx context.Context, req NoteRequest) (*NoteResponse, error)
	UpdateNote(ctx context.Context, id int64, req NoteRequest) error
	DeleteNote(ctx context.Context, id int64) error

	ListUserNotes(ctx context.Context, userID int64) ([]NoteResponse, error)
	GetUserNote(ctx context.Context, userID, id int64) (*NoteResponse, error)
	CreateUserNote(ctx context.Context, userID int64, req NoteRequest) (*NoteResponse, error)
	UpdateUserNote(ctx context.Context, userID, id int64, req NoteRequest) error
	DeleteUserNote(ctx context.Context, userID, id int64) error
}

// SharingAPI - совместный доступ к заметкам.
type SharingAPI interface {
	ShareNote(ctx context.Context, userID, noteID, friendID int64) (*ShareResponse, error)
	SharedWithMe(ctx context.Context, userID int64) ([]SharedNoteWithDetails, error)
	SharedByMe(ctx context.Context, userID int64) ([]SharedNoteByMe, error)
	// UpdateSharedStatus отправляет DELETE, который на сервере меняет статус записи.
	UpdateSharedStatus(ctx context.Context, userID, sharedNoteID int64) (*UpdateSharedStatusResponse, error)
}

type FriendsAPI interface {
	SendFriendRequest(ctx context.Context, userID, friendID int64) error
	AcceptFriendRequest(ctx context.Context, userID, friendshipID int64) error
	DeclineFriendRequest(ctx context.Context, userID, friendshipID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	ListFriends(ctx context.Context, userID int64) ([]FriendDTO, error)
	ListPendingRequests(ctx context.Context, userID int64) ([]PendingRequestDTO, error)
}

type UsersAPI interface {
	ListUsers(ctx context.Context) ([]UserResponse, error)
	GetUser(ctx context.Context, id int64) (*UserResponse, error)
	CreateUser(ctx context.Context, req UserRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req UserRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

type AuthAPI interface {
	Login(ctx context.Context, req UserRequest) (*AuthResponse, error)
	Register(ctx context.Context, req UserRequest) (*AuthResponse, error)
}
