// Package http содержит компоненты локального HTTP API.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notablelists/internal/notes/adapters/http/handlers"
	"notablelists/internal/notes/adapters/http/middleware"
	"notablelists/internal/notes/ports/api"
)

// Services - сценарии, которые обслуживает API.
type Services struct {
	Notes   api.NoteService
	Sharing api.SharingService
	Friends api.FriendsService
	Session api.SessionService
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, svc Services) {
	h := handlers.NewHandler(svc.Notes, svc.Sharing, svc.Friends, svc.Session)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiV1 := app.Group("/api/v1")

	notes := apiV1.Group("/notes")
	notes.Get("/", h.ListNotes)
	notes.Post("/", h.CreateNote)
	notes.Post("/sync", h.SyncNotes)
	notes.Get("/:key", h.GetNote)
	notes.Put("/:key", h.UpsertNote)
	notes.Delete("/:key", h.DeleteNote)

	auth := apiV1.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/register", h.Register)
	auth.Post("/logout", h.Logout)
	auth.Get("/session", h.GetSession)

	shares := apiV1.Group("/shares")
	shares.Get("/", h.ListShares)
	shares.Post("/", h.ShareNote)
	shares.Post("/sync", h.SyncShares)
	shares.Get("/access/:noteId", h.CheckAccess)
	shares.Get("/with-me/:noteId", h.GetSharedNote)
	shares.Delete("/:id", h.RemoveShare)

	friends := apiV1.Group("/friends")
	friends.Get("/", h.ListFriends)
	friends.Get("/pending", h.ListPendingRequests)
	friends.Post("/requests", h.SendFriendRequest)
	friends.Post("/requests/:id/accept", h.AcceptFriendRequest)
	friends.Post("/requests/:id/decline", h.DeclineFriendRequest)
	friends.Delete("/:id", h.RemoveFriend)

	apiV1.Get("/users", h.SearchUsers)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
