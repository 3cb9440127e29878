package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *UserHandler) {
	users := app.Group("/api/v1/users")
	users.Post("/", h.Create)
	users.Get("/", h.List)
	users.Get("/:email", h.GetByEmail)
	users.Put("/:id", h.Update)
	users.Delete("/:id", h.Delete)
}
