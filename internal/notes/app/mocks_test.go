package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/remote"
)

type mockNoteStore struct {
	mock.Mock
}

func (m *mockNoteStore) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteStore) GetByRemoteID(ctx context.Context, remoteID int64) (*entities.Note, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteStore) GetAll(ctx context.Context) ([]entities.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *mockNoteStore) GetPendingCreate(ctx context.Context) ([]entities.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *mockNoteStore) GetByOwner(ctx context.Context, userID *int64) ([]entities.Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *mockNoteStore) Upsert(ctx context.Context, note *entities.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNoteStore) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockNoteStore) LinkToUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNoteStore) Observe(ctx context.Context) (<-chan []entities.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []entities.Note), args.Error(1)
}

type mockSharedNoteStore struct {
	mock.Mock
}

func (m *mockSharedNoteStore) GetByRemoteID(ctx context.Context, remoteID int64) (*entities.SharedNote, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SharedNote), args.Error(1)
}

func (m *mockSharedNoteStore) Upsert(ctx context.Context, shared *entities.SharedNote) error {
	return m.Called(ctx, shared).Error(0)
}

func (m *mockSharedNoteStore) DeleteByRemoteID(ctx context.Context, remoteID int64) error {
	return m.Called(ctx, remoteID).Error(0)
}

func (m *mockSharedNoteStore) ClearAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockSharedNoteStore) ReplaceAll(ctx context.Context, rows []entities.SharedNote) error {
	return m.Called(ctx, rows).Error(0)
}

func (m *mockSharedNoteStore) ExistsActiveShare(ctx context.Context, noteID, targetUserID int64) (bool, error) {
	args := m.Called(ctx, noteID, targetUserID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSharedNoteStore) ListSharedWithUser(ctx context.Context, userID int64) ([]entities.SharedNote, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.SharedNote), args.Error(1)
}

func (m *mockSharedNoteStore) ListSharedByUser(ctx context.Context, userID int64) ([]entities.SharedNote, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.SharedNote), args.Error(1)
}

func (m *mockSharedNoteStore) ObserveSharedWithUser(ctx context.Context, userID int64) (<-chan []entities.SharedNote, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(<-chan []entities.SharedNote), args.Error(1)
}

func (m *mockSharedNoteStore) ObserveSharedByUser(ctx context.Context, userID int64) (<-chan []entities.SharedNote, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(<-chan []entities.SharedNote), args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserStore) GetPendingCreate(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *mockUserStore) Upsert(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockNotesAPI struct {
	mock.Mock
}

func (m *mockNotesAPI) ListNotes(ctx context.Context) ([]remote.NoteResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]remote.NoteResponse), args.Error(1)
}

func (m *mockNotesAPI) GetNote(ctx context.Context, id int64) (*remote.NoteResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.NoteResponse), args.Error(1)
}

func (m *mockNotesAPI) CreateNote(ctx context.Context, req remote.NoteRequest) (*remote.NoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.NoteResponse), args.Error(1)
}

func (m *mockNotesAPI) UpdateNote(ctx context.Context, id int64, req remote.NoteRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *mockNotesAPI) DeleteNote(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNotesAPI) ListUserNotes(ctx context.Context, userID int64) ([]remote.NoteResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]remote.NoteResponse), args.Error(1)
}

func (m *mockNotesAPI) GetUserNote(ctx context.Context, userID, id int64) (*remote.NoteResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.NoteResponse), args.Error(1)
}

func (m *mockNotesAPI) CreateUserNote(ctx context.Context, userID int64, req remote.NoteRequest) (*remote.NoteResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.NoteResponse), args.Error(1)
}

func (m *mockNotesAPI) UpdateUserNote(ctx context.Context, userID, id int64, req remote.NoteRequest) error {
	return m.Called(ctx, userID, id, req).Error(0)
}

func (m *mockNotesAPI) DeleteUserNote(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockSharingAPI struct {
	mock.Mock
}

func (m *mockSharingAPI) ShareNote(ctx context.Context, userID, noteID, friendID int64) (*remote.ShareResponse, error) {
	args := m.Called(ctx, userID, noteID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.ShareResponse), args.Error(1)
}

func (m *mockSharingAPI) SharedWithMe(ctx context.Context, userID int64) ([]remote.SharedNoteWithDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]remote.SharedNoteWithDetails), args.Error(1)
}

func (m *mockSharingAPI) SharedByMe(ctx context.Context, userID int64) ([]remote.SharedNoteByMe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]remote.SharedNoteByMe), args.Error(1)
}

func (m *mockSharingAPI) UpdateSharedStatus(ctx context.Context, userID, sharedNoteID int64) (*remote.UpdateSharedStatusResponse, error) {
	args := m.Called(ctx, userID, sharedNoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.UpdateSharedStatusResponse), args.Error(1)
}

type mockFriendsAPI struct {
	mock.Mock
}

func (m *mockFriendsAPI) SendFriendRequest(ctx context.Context, userID, friendID int64) error {
	return m.Called(ctx, userID, friendID).Error(0)
}

func (m *mockFriendsAPI) AcceptFriendRequest(ctx context.Context, userID, friendshipID int64) error {
	return m.Called(ctx, userID, friendshipID).Error(0)
}

func (m *mockFriendsAPI) DeclineFriendRequest(ctx context.Context, userID, friendshipID int64) error {
	return m.Called(ctx, userID, friendshipID).Error(0)
}

func (m *mockFriendsAPI) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return m.Called(ctx, userID, friendID).Error(0)
}

func (m *mockFriendsAPI) ListFriends(ctx context.Context, userID int64) ([]remote.FriendDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]remote.FriendDTO), args.Error(1)
}

func (m *mockFriendsAPI) ListPendingRequests(ctx context.Context, userID int64) ([]remote.PendingRequestDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]remote.PendingRequestDTO), args.Error(1)
}

type mockUsersAPI struct {
	mock.Mock
}

func (m *mockUsersAPI) ListUsers(ctx context.Context) ([]remote.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]remote.UserResponse), args.Error(1)
}

func (m *mockUsersAPI) GetUser(ctx context.Context, id int64) (*remote.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.UserResponse), args.Error(1)
}

func (m *mockUsersAPI) CreateUser(ctx context.Context, req remote.UserRequest) (*remote.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.UserResponse), args.Error(1)
}

func (m *mockUsersAPI) UpdateUser(ctx context.Context, id int64, req remote.UserRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *mockUsersAPI) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthAPI struct {
	mock.Mock
}

func (m *mockAuthAPI) Login(ctx context.Context, req remote.UserRequest) (*remote.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.AuthResponse), args.Error(1)
}

func (m *mockAuthAPI) Register(ctx context.Context, req remote.UserRequest) (*remote.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remote.AuthResponse), args.Error(1)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Save(ctx context.Context, s entities.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSessionStore) Get(ctx context.Context) (*entities.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *mockSessionStore) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockSessionStore) Observe(ctx context.Context) (<-chan *entities.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *entities.Session), args.Error(1)
}

type mockSyncer struct {
	mock.Mock
}

func (m *mockSyncer) SyncOnLogin(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockSyncer) SyncSharedNotes(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockSyncer) PostPendingNotesForUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}
