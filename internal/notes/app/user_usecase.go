package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/api"
	"notablelists/internal/notes/ports/remote"
	"notablelists/internal/notes/ports/repositories"
	"notablelists/pkg/logger"
)

const (
	errGetUser          = "failed to get user"
	errSaveUser         = "failed to save user"
	errDeleteUser       = "failed to delete user"
	errListPendingUsers = "failed to list pending users"
	errUserSync         = "user sync failed"
	errCreateRemoteUser = "failed to create user on server"
	errUpdateRemoteUser = "failed to update user on server"
	errDeleteRemoteUser = "failed to delete user on server"

	logPendingUserFailed = "failed to create pending user on server"
)

var _ api.UserService = (*UserUseCase)(nil)

// UserUseCase синхронизирует локальные учетные записи с сервером.
// В отличие от заметок, изменения сначала применяются на сервере.
type UserUseCase struct {
	store repositories.UserStore
	api   remote.UsersAPI
}

// NewUserUseCase создает сценарии работы с учетными записями.
func NewUserUseCase(store repositories.UserStore, usersAPI remote.UsersAPI) *UserUseCase {
	return &UserUseCase{store: store, api: usersAPI}
}

// GetUser читает учетную запись по локальному ключу.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errGetUser, err)
	}
	return user, nil
}

// UpsertUser обновляет учетную запись на сервере и затем локально.
func (uc *UserUseCase) UpsertUser(ctx context.Context, user entities.User) error {
	if user.RemoteID == nil {
		return entities.ErrMissingRemoteID
	}

	if err := uc.api.UpdateUser(ctx, *user.RemoteID, toUserRequest(&user)); err != nil {
		return fmt.Errorf("%s: %w", errUpdateRemoteUser, err)
	}

	if user.ID == "" {
		user.ID = entities.NewLocalKey()
	}
	user.IsPendingCreate = false
	if err := uc.store.Upsert(ctx, &user); err != nil {
		return fmt.Errorf("%s: %w", errSaveUser, err)
	}
	return nil
}

// DeleteUser удаляет учетную запись на сервере, затем локально.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	user, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", errGetUser, err)
	}
	if user.RemoteID == nil {
		return entities.ErrMissingRemoteID
	}

	if err := uc.api.DeleteUser(ctx, *user.RemoteID); err != nil {
		return fmt.Errorf("%s: %w", errDeleteRemoteUser, err)
	}
	if err := uc.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errDeleteUser, err)
	}
	return nil
}

// PostPendingUsers создает на сервере все ожидающие учетные записи.
func (uc *UserUseCase) PostPendingUsers(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", "UserUseCase.PostPendingUsers"))

	pending, err := uc.store.GetPendingCreate(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errListPendingUsers, err)
	}

	var errs []error
	for i := range pending {
		user := pending[i]

		created, err := uc.PostUser(ctx, user)
		if err != nil {
			log.Warn(ctx, logPendingUserFailed, zap.String("user_id", user.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		if err := uc.store.Upsert(ctx, created); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", errSaveUser, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", errUserSync, errors.Join(errs...))
	}
	return nil
}

// PostUser создает учетную запись на сервере и возвращает ее копию с серверным идентификатором.
func (uc *UserUseCase) PostUser(ctx context.Context, user entities.User) (*entities.User, error) {
	resp, err := uc.api.CreateUser(ctx, toUserRequest(&user))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCreateRemoteUser, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%s: %w", errCreateRemoteUser, entities.ErrEmptyResponse)
	}

	user.RemoteID = entities.Int64Ptr(resp.UserID)
	user.IsPendingCreate = false
	return &user, nil
}

// PutUser обновляет учетную запись на сервере. Требует серверный идентификатор.
func (uc *UserUseCase) PutUser(ctx context.Context, user entities.User) (*entities.User, error) {
	if user.RemoteID == nil {
		return nil, entities.ErrMissingRemoteID
	}
	if err := uc.api.UpdateUser(ctx, *user.RemoteID, toUserRequest(&user)); err != nil {
		return nil, fmt.Errorf("%s: %w", errUpdateRemoteUser, err)
	}
	return &user, nil
}

func toUserRequest(u *entities.User) remote.UserRequest {
	return remote.UserRequest{Username: u.Username, Password: u.Password}
}
