package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *TodoHandler) {
	todos := app.Group("/api/v1/todos")
	todos.Post("/", h.Create)
	todos.Get("/", h.List)
	todos.Get("/:id", h.Get)
	todos.Put("/:id", h.Update)
	todos.Delete("/:id", h.Delete)
}
