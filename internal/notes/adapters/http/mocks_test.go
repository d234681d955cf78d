package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notablelists/internal/notes/domain/entities"
)

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) ObserveNotes(ctx context.Context) (<-chan []entities.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).(<-chan []entities.Note), args.Error(1)
}

func (m *mockNoteService) GetNote(ctx context.Context, id string) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) ListNotes(ctx context.Context) ([]entities.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *mockNoteService) CreateNoteLocal(ctx context.Context, note entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) Upsert(ctx context.Context, note entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNoteService) PostPendingNotes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockNoteService) PostPendingNotesForUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockNoteService) PostNote(ctx context.Context, note entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) PutNote(ctx context.Context, note entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) FetchUserNotesFromAPI(ctx context.Context, userID int64) ([]entities.Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *mockNoteService) SyncOnLogin(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockSharingService struct {
	mock.Mock
}

func (m *mockSharingService) ShareNote(ctx context.Context, ownerID, noteID, friendID int64) (*entities.ShareResult, error) {
	args := m.Called(ctx, ownerID, noteID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShareResult), args.Error(1)
}

func (m *mockSharingService) GetNotesSharedWithMe(ctx context.Context, userID int64) ([]entities.SharedWithMe, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.SharedWithMe), args.Error(1)
}

func (m *mockSharingService) GetNotesSharedByMe(ctx context.Context, userID int64) ([]entities.SharedByMe, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.SharedByMe), args.Error(1)
}

func (m *mockSharingService) GetAllSharedNotes(ctx context.Context, userID int64) (*entities.SharedNotes, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SharedNotes), args.Error(1)
}

func (m *mockSharingService) SyncSharedNotes(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockSharingService) UpdateSharedNoteStatus(ctx context.Context, userID, sharedNoteID int64) (*entities.StatusUpdate, error) {
	args := m.Called(ctx, userID, sharedNoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StatusUpdate), args.Error(1)
}

func (m *mockSharingService) CanAccessNote(ctx context.Context, userID, noteID int64) (bool, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSharingService) CanShareNote(noteID *int64) bool {
	return m.Called(noteID).Bool(0)
}

func (m *mockSharingService) GetSharedNoteDetails(ctx context.Context, userID, noteID int64) (*entities.SharedWithMe, error) {
	args := m.Called(ctx, userID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SharedWithMe), args.Error(1)
}

type mockFriendsService struct {
	mock.Mock
}

func (m *mockFriendsService) SendFriendRequest(ctx context.Context, userID, friendID int64) error {
	return m.Called(ctx, userID, friendID).Error(0)
}

func (m *mockFriendsService) AcceptFriendRequest(ctx context.Context, userID, friendshipID int64) error {
	return m.Called(ctx, userID, friendshipID).Error(0)
}

func (m *mockFriendsService) DeclineFriendRequest(ctx context.Context, userID, friendshipID int64) error {
	return m.Called(ctx, userID, friendshipID).Error(0)
}

func (m *mockFriendsService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return m.Called(ctx, userID, friendID).Error(0)
}

func (m *mockFriendsService) GetFriends(ctx context.Context, userID int64) ([]entities.Friend, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Friend), args.Error(1)
}

func (m *mockFriendsService) GetPendingRequests(ctx context.Context, userID int64) ([]entities.PendingRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PendingRequest), args.Error(1)
}

func (m *mockFriendsService) GetAllUsers(ctx context.Context) ([]entities.Friend, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Friend), args.Error(1)
}

func (m *mockFriendsService) SearchUsers(ctx context.Context, query string) ([]entities.Friend, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Friend), args.Error(1)
}

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *mockSessionService) Register(ctx context.Context, username, password string) (*entities.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *mockSessionService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockSessionService) CurrentSession(ctx context.Context) (*entities.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *mockSessionService) ObserveSession(ctx context.Context) (<-chan *entities.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(<-chan *entities.Session), args.Error(1)
}
