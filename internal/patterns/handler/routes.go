package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *PatternHandler) {
	patterns := app.Group("/api/v1/patterns")
	patterns.Post("/strategy/authenticate", h.StrategyAuthenticate)
	patterns.Get("/strategy/available", h.StrategyAvailable)
	patterns.Post("/observer/trigger-event", h.TriggerEvent)
	patterns.Get("/observer/listener-count", h.ListenerCount)
	patterns.Get("/factory/test-connections", h.TestConnections)
}
