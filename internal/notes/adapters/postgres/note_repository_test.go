package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notablelists/internal/notes/adapters/postgres"
	"notablelists/internal/notes/domain/entities"
)

var errDatabaseConnection = errors.New("database connection failed")

var noteColumnNames = []string{
	"local_key", "remote_id", "title", "description", "tag", "priority", "is_finished",
	"reminder", "checklist", "auto_delete", "delete_at", "user_id", "is_pending_create",
}

func noteRow(rows *pgxmock.Rows, n entities.Note) *pgxmock.Rows {
	return rows.AddRow(
		n.ID, n.RemoteID, n.Title, n.Description, n.Tag, n.Priority, n.IsFinished,
		n.Reminder, n.Checklist, n.AutoDelete, n.DeleteAt, n.UserID, n.IsPendingCreate,
	)
}

func syncedNote() entities.Note {
	checklist := "1|milk"
	return entities.Note{
		ID:          "note-1",
		RemoteID:    entities.Int64Ptr(42),
		Title:       "Groceries",
		Description: "weekly",
		Tag:         "home",
		Priority:    1,
		Checklist:   &checklist,
		UserID:      entities.Int64Ptr(7),
	}
}

func pendingNote() entities.Note {
	return entities.Note{
		ID:              "note-2",
		Title:           "Draft",
		IsPendingCreate: true,
	}
}

func TestNoteRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		want := syncedNote()
		mock.ExpectQuery("FROM notes WHERE local_key = \\$1").
			WithArgs("note-1").
			WillReturnRows(noteRow(pgxmock.NewRows(noteColumnNames), want))

		repo := postgres.NewNoteRepository(mock)
		got, err := repo.GetByID(ctx, "note-1")

		require.NoError(t, err)
		assert.Equal(t, want, *got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM notes WHERE local_key = \\$1").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mock)
		got, err := repo.GetByID(ctx, "missing")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM notes WHERE local_key = \\$1").
			WithArgs("note-1").
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewNoteRepository(mock)
		_, err = repo.GetByID(ctx, "note-1")

		assert.ErrorIs(t, err, errDatabaseConnection)
		assert.NotErrorIs(t, err, entities.ErrNoteNotFound)
	})
}

func TestNoteRepository_GetByRemoteID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	want := syncedNote()
	mock.ExpectQuery("FROM notes WHERE remote_id = \\$1").
		WithArgs(int64(42)).
		WillReturnRows(noteRow(pgxmock.NewRows(noteColumnNames), want))

	repo := postgres.NewNoteRepository(mock)
	got, err := repo.GetByRemoteID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "note-1", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetPendingCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM notes WHERE is_pending_create").
		WillReturnRows(noteRow(pgxmock.NewRows(noteColumnNames), pendingNote()))

	repo := postgres.NewNoteRepository(mock)
	got, err := repo.GetPendingCreate(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsPendingCreate)
	assert.Nil(t, got[0].RemoteID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetByOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("ownerless", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM notes WHERE user_id IS NULL").
			WillReturnRows(noteRow(pgxmock.NewRows(noteColumnNames), pendingNote()))

		got, err := postgres.NewNoteRepository(mock).GetByOwner(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM notes WHERE user_id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(noteRow(pgxmock.NewRows(noteColumnNames), syncedNote()))

		got, err := postgres.NewNoteRepository(mock).GetByOwner(ctx, entities.Int64Ptr(7))
		require.NoError(t, err)
		assert.Len(t, got, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	note := syncedNote()

	t.Run("success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO notes").
			WithArgs(note.ID, pgxmock.AnyArg(), note.Title, note.Description, note.Tag, note.Priority,
				note.IsFinished, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), note.IsPendingCreate).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err = postgres.NewNoteRepository(mock).Upsert(ctx, &note)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO notes").WillReturnError(errDatabaseConnection)

		err = postgres.NewNoteRepository(mock).Upsert(ctx, &note)
		assert.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestNoteRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes WHERE local_key = \\$1").
			WithArgs("note-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, postgres.NewNoteRepository(mock).Delete(ctx, "note-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes WHERE local_key = \\$1").
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err = postgres.NewNoteRepository(mock).Delete(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})
}

func TestNoteRepository_LinkToUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE notes SET user_id = \\$1").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := postgres.NewNoteRepository(mock).LinkToUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Observe(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := pendingNote()
	second := syncedNote()

	mock.ExpectQuery("FROM notes ORDER BY").
		WillReturnRows(noteRow(pgxmock.NewRows(noteColumnNames), first))
	mock.ExpectExec("INSERT INTO notes").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM notes ORDER BY").
		WillReturnRows(noteRow(noteRow(pgxmock.NewRows(noteColumnNames), first), second))

	repo := postgres.NewNoteRepository(mock)
	ch, err := repo.Observe(ctx)
	require.NoError(t, err)

	select {
	case snapshot := <-ch:
		assert.Equal(t, []entities.Note{first}, snapshot)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}

	require.NoError(t, repo.Upsert(ctx, &second))

	select {
	case snapshot := <-ch:
		assert.Equal(t, []entities.Note{first, second}, snapshot)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after upsert")
	}

	require.NoError(t, mock.ExpectationsWereMet())
}
