package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AnalyticsHandler) {
	a := app.Group("/api/v1/analytics")
	a.Get("/dashboard", h.Dashboard)
	a.Get("/overview", h.Overview)
	a.Get("/roles", h.Roles)
	a.Get("/activity", h.Activity)
	a.Get("/geographic", h.Geographic)
	a.Get("/engagement", h.Engagement)
	a.Get("/retention", h.Retention)
	a.Get("/growth-trends", h.GrowthTrends)
	a.Get("/performance", h.Performance)
	a.Get("/summary", h.Summary)
	a.Post("/export", h.Export)
	a.Get("/health", h.Health)
}
