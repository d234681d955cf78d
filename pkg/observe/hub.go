// Package observe реализует рассылку снимков состояния подписчикам.
//
// Каждый подписчик сначала получает текущий снимок (если он уже опубликован),
// затем каждый следующий. Медленный подписчик не блокирует публикацию:
// в его канале остается только последний снимок.
package observe

import (
	"context"
	"sync"
)

// Hub рассылает снимки типа T независимым подписчикам.
type Hub[T any] struct {
	mu      sync.Mutex
	subs    map[uint64]chan T
	nextID  uint64
	current T
	hasData bool
	closed  bool
	done    chan struct{}
}

// NewHub создает пустой Hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[uint64]chan T), done: make(chan struct{})}
}

// Publish сохраняет снимок как текущий и рассылает его всем подписчикам.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.current = v
	h.hasData = true
	for _, ch := range h.subs {
		offer(ch, v)
	}
}

// Subscribe возвращает канал снимков. Канал закрывается после отмены ctx или Close.
func (h *Hub[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	if h.hasData {
		ch <- h.current
	}
	h.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			h.unsubscribe(id)
		case <-h.done:
		}
	}()

	return ch
}

// Subscribers возвращает число активных подписчиков.
func (h *Hub[T]) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close закрывает все каналы подписчиков. Последующие Publish игнорируются.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	close(h.done)
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}

func (h *Hub[T]) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		close(ch)
		delete(h.subs, id)
	}
}

// offer кладет v в канал с буфером 1, вытесняя непрочитанный снимок.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
