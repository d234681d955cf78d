package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notablelists/internal/notes/adapters/postgres"
	"notablelists/internal/notes/domain/entities"
)

var userColumnNames = []string{"local_key", "remote_id", "username", "password", "is_pending_create"}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM users").
			WithArgs("user-1").
			WillReturnRows(pgxmock.NewRows(userColumnNames).
				AddRow("user-1", entities.Int64Ptr(7), "ana", "secret", false))

		got, err := postgres.NewUserRepository(mock).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "ana", got.Username)
		require.NotNil(t, got.RemoteID)
		assert.Equal(t, int64(7), *got.RemoteID)
	})

	t.Run("not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM users").WithArgs("nope").WillReturnError(pgx.ErrNoRows)

		_, err = postgres.NewUserRepository(mock).GetByID(ctx, "nope")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestUserRepository_GetPendingCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("WHERE is_pending_create").
		WillReturnRows(pgxmock.NewRows(userColumnNames).
			AddRow("user-2", (*int64)(nil), "bob", "pw", true))

	got, err := postgres.NewUserRepository(mock).GetPendingCreate(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].RemoteID)
	assert.True(t, got[0].IsPendingCreate)
}

func TestUserRepository_UpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	user := entities.User{ID: "user-1", RemoteID: entities.Int64Ptr(7), Username: "ana", Password: "secret"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, pgxmock.AnyArg(), user.Username, user.Password, false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM users").
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM users").
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := postgres.NewUserRepository(mock)
	require.NoError(t, repo.Upsert(ctx, &user))
	require.NoError(t, repo.Delete(ctx, "user-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "user-1"), entities.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
