// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"notablelists/pkg/logger"
)

const (
	// HeaderRequestID - заголовок с идентификатором запроса.
	HeaderRequestID = "X-Request-ID"
	// LocalsRequestContext - ключ Locals, под которым хранится контекст запроса.
	LocalsRequestContext = "userContext"
)

// NewRequestIDMiddleware берет идентификатор запроса из заголовка или создает новый
// и кладет контекст с ним в Locals.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}
		ctx.Locals(LocalsRequestContext, requestCtx)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса из Locals или контекст fiber.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(LocalsRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
