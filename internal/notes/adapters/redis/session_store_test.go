package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notablelists/internal/notes/adapters/redis"
	"notablelists/internal/notes/domain/entities"
)

func newStore(t *testing.T, ttl time.Duration) (*redis.SessionStore, *miniredis.Miniredis) {
	t.Helper()

	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redis.NewSessionStore(client, "", ttl), s
}

func TestSessionStore_SaveGetClear(t *testing.T) {
	ctx := context.Background()
	store, srv := newStore(t, 0)

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, entities.ErrNotAuthenticated)

	require.NoError(t, store.Save(ctx, entities.Session{UserID: 7, Username: "ana"}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.Session{UserID: 7, Username: "ana"}, *got)
	assert.Equal(t, "7", srv.HGet(redis.DefaultKey, "user_id"))

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, entities.ErrNotAuthenticated)
}

func TestSessionStore_SaveReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t, 0)

	require.NoError(t, store.Save(ctx, entities.Session{UserID: 1, Username: "old"}))
	require.NoError(t, store.Save(ctx, entities.Session{UserID: 2, Username: "new"}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.UserID)
	assert.Equal(t, "new", got.Username)
}

func TestSessionStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, srv := newStore(t, time.Hour)

	require.NoError(t, store.Save(ctx, entities.Session{UserID: 1, Username: "ana"}))
	assert.Equal(t, time.Hour, srv.TTL(redis.DefaultKey))

	srv.FastForward(2 * time.Hour)
	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, entities.ErrNotAuthenticated)
}

func TestSessionStore_CorruptRecord(t *testing.T) {
	store, srv := newStore(t, 0)
	srv.HSet(redis.DefaultKey, "user_id", "abc")

	_, err := store.Get(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrNotAuthenticated)
}

func TestSessionStore_Observe(t *testing.T) {
	store, _ := newStore(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.Observe(ctx)
	require.NoError(t, err)

	next := func() *entities.Session {
		select {
		case v := <-ch:
			return v
		case <-time.After(2 * time.Second):
			t.Fatal("no session update")
			return nil
		}
	}

	assert.Nil(t, next())

	require.NoError(t, store.Save(context.Background(), entities.Session{UserID: 3, Username: "eve"}))
	got := next()
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.UserID)

	require.NoError(t, store.Clear(context.Background()))
	assert.Nil(t, next())

	cancel()
	require.Eventually(t, func() bool {
		_, ok := <-ch
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}
