// Package redis хранит текущую сессию пользователя в Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/session"
	"notablelists/pkg/logger"
)

const (
	fieldUserID   = "user_id"
	fieldUsername = "username"

	DefaultKey = "notablelists:session"
)

const (
	ErrorFailedToSave    = "failed to save session"
	ErrorFailedToGet     = "failed to get session"
	ErrorFailedToClear   = "failed to clear session"
	ErrorFailedToObserve = "failed to subscribe to session changes"
	ErrorCorruptSession  = "corrupt session record"
	ErrorFailedToNotify  = "failed to publish session change"
)

// SessionStore реализует session.Store: хэш с полями сессии и канал уведомлений об изменениях.
type SessionStore struct {
	client  *redis.Client
	key     string
	channel string
	ttl     time.Duration
}

// NewSessionStore создает хранилище. Пустой key заменяется на DefaultKey, ttl == 0 отключает истечение.
func NewSessionStore(client *redis.Client, key string, ttl time.Duration) *SessionStore {
	if key == "" {
		key = DefaultKey
	}
	return &SessionStore{
		client:  client,
		key:     key,
		channel: key + ":changed",
		ttl:     ttl,
	}
}

var _ session.Store = (*SessionStore)(nil)

// Save заменяет текущую сессию.
func (s *SessionStore) Save(ctx context.Context, sess entities.Session) error {
	log := logger.Log(ctx).With(zap.String("method", "SessionStore.Save"))

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		pipe.HSet(ctx, s.key,
			fieldUserID, strconv.FormatInt(sess.UserID, 10),
			fieldUsername, sess.Username,
		)
		if s.ttl > 0 {
			pipe.Expire(ctx, s.key, s.ttl)
		}
		return nil
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToSave, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSave, err)
	}

	s.notify(ctx)
	return nil
}

// Get возвращает текущую сессию или entities.ErrNotAuthenticated.
func (s *SessionStore) Get(ctx context.Context) (*entities.Session, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}
	if len(values) == 0 {
		return nil, entities.ErrNotAuthenticated
	}

	userID, err := strconv.ParseInt(values[fieldUserID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorCorruptSession, err)
	}

	return &entities.Session{UserID: userID, Username: values[fieldUsername]}, nil
}

// Clear удаляет текущую сессию.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToClear, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToClear, err)
	}
	s.notify(ctx)
	return nil
}

// Observe отдает текущую сессию (nil, если ее нет) и затем значение после каждого изменения.
func (s *SessionStore) Observe(ctx context.Context) (<-chan *entities.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", "SessionStore.Observe"))

	ps := s.client.Subscribe(ctx, s.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		log.Error(ctx, ErrorFailedToObserve, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToObserve, err)
	}

	current, err := s.current(ctx)
	if err != nil {
		_ = ps.Close()
		return nil, err
	}

	out := make(chan *entities.Session, 1)
	out <- current

	go func() {
		defer close(out)
		defer func() {
			if err := ps.Close(); err != nil {
				log.Debug(ctx, "pubsub close", zap.Error(err))
			}
		}()

		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				sess, err := s.current(ctx)
				if err != nil {
					log.Warn(ctx, ErrorFailedToGet, zap.Error(err))
					continue
				}
				replaceLatest(out, sess)
			}
		}
	}()

	return out, nil
}

func (s *SessionStore) current(ctx context.Context) (*entities.Session, error) {
	sess, err := s.Get(ctx)
	if errors.Is(err, entities.ErrNotAuthenticated) {
		return nil, nil
	}
	return sess, err
}

func (s *SessionStore) notify(ctx context.Context) {
	if err := s.client.Publish(ctx, s.channel, "changed").Err(); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorFailedToNotify, zap.Error(err))
	}
}

func replaceLatest(ch chan *entities.Session, v *entities.Session) {
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
