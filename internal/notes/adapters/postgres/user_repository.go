package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/repositories"
	"notablelists/pkg/logger"
)

// UserRepository реализует repositories.UserStore.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ repositories.UserStore = (*UserRepository)(nil)

// GetByID находит пользователя по локальному ключу.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "GetByID"))

	query := `
        SELECT local_key, remote_id, username, password, is_pending_create
        FROM users
        WHERE local_key = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.RemoteID,
		&user.Username,
		&user.Password,
		&user.IsPendingCreate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// GetPendingCreate возвращает пользователей, еще не созданных на сервере.
func (r *UserRepository) GetPendingCreate(ctx context.Context) ([]entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "GetPendingCreate"))

	rows, err := r.pool.Query(ctx, `
        SELECT local_key, remote_id, username, password, is_pending_create
        FROM users
        WHERE is_pending_create
        ORDER BY local_key
    `)
	if err != nil {
		log.Error(ctx, "error listing pending users", zap.Error(err))
		return nil, fmt.Errorf("error listing pending users: %w", err)
	}
	defer rows.Close()

	users := []entities.User{}
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.RemoteID, &u.Username, &u.Password, &u.IsPendingCreate); err != nil {
			log.Error(ctx, "error scanning user", zap.Error(err))
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// Upsert вставляет или обновляет пользователя.
func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	query := `
        INSERT INTO users (local_key, remote_id, username, password, is_pending_create)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (local_key) DO UPDATE SET
            remote_id = EXCLUDED.remote_id,
            username = EXCLUDED.username,
            password = EXCLUDED.password,
            is_pending_create = EXCLUDED.is_pending_create
    `

	_, err := r.pool.Exec(ctx, query, user.ID, user.RemoteID, user.Username, user.Password, user.IsPendingCreate)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error upserting user", zap.String("id", user.ID), zap.Error(err))
		return fmt.Errorf("error upserting user: %w", err)
	}
	return nil
}

// Delete удаляет пользователя по локальному ключу.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE local_key = $1`, id)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error deleting user", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}
