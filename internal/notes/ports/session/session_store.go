// Package session defines the current-session store port.
package session

import (
	"context"

	"notablelists/internal/notes/domain/entities"
)

// Store хранит текущую сессию. Get возвращает entities.ErrNotAuthenticated, если сессии нет.
type Store interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context) (*entities.Session, error)
	Clear(ctx context.Context) error
	// Observe отдает текущее значение (nil, если сессии нет) и затем каждое изменение.
	Observe(ctx context.Context) (<-chan *entities.Session, error)
}
