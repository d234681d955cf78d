package observe_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notablelists/pkg/observe"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	var zero T
	return zero
}

func TestSubscribeReplaysCurrent(t *testing.T) {
	hub := observe.NewHub[[]string]()
	hub.Publish([]string{"a"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := hub.Subscribe(ctx)
	assert.Equal(t, []string{"a"}, receive(t, ch))

	hub.Publish([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, receive(t, ch))
}

func TestSubscribeBeforeFirstPublish(t *testing.T) {
	hub := observe.NewHub[int]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := hub.Subscribe(ctx)
	select {
	case <-ch:
		t.Fatal("unexpected snapshot before publish")
	default:
	}

	hub.Publish(7)
	assert.Equal(t, 7, receive(t, ch))
}

func TestSlowSubscriberKeepsLatest(t *testing.T) {
	hub := observe.NewHub[int]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := hub.Subscribe(ctx)
	for i := 1; i <= 5; i++ {
		hub.Publish(i)
	}

	assert.Equal(t, 5, receive(t, ch))
}

func TestSubscribersAreIndependent(t *testing.T) {
	hub := observe.NewHub[string]()

	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()

	ch1 := hub.Subscribe(ctx1)
	ch2 := hub.Subscribe(ctx2)
	hub.Publish("x")

	assert.Equal(t, "x", receive(t, ch1))
	assert.Equal(t, "x", receive(t, ch2))

	cancel1()
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	_, ok := <-ch1
	assert.False(t, ok)

	hub.Publish("y")
	assert.Equal(t, "y", receive(t, ch2))
}

func TestClose(t *testing.T) {
	hub := observe.NewHub[int]()
	ch := hub.Subscribe(context.Background())

	hub.Close()
	_, ok := <-ch
	assert.False(t, ok)

	assert.NotPanics(t, func() { hub.Publish(1) })
	assert.Zero(t, hub.Subscribers())

	late := hub.Subscribe(context.Background())
	_, ok = <-late
	assert.False(t, ok)
}
