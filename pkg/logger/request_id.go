package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserID - имя поля лога с идентификатором вошедшего пользователя.
const UserID = "user_id"

type (
	requestIDKey struct{}
	userIDKey    struct{}
)

// NewRequestIDContext кладет в контекст идентификатор запроса; пустой заменяется новым uuid.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// WithUserID помечает контекст пользователем, от имени которого идет синхронизация.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID извлекает идентификатор пользователя из контекста.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// contextFields дополняет fields полями request_id и user_id из ctx.
func contextFields(ctx context.Context, fields []zap.Field) []zap.Field {
	if ctx == nil {
		return fields
	}
	if id, ok := GetRequestID(ctx); ok {
		fields = append(fields, zap.String(RequestID, id))
	}
	if id, ok := GetUserID(ctx); ok {
		fields = append(fields, zap.Int64(UserID, id))
	}
	return fields
}
