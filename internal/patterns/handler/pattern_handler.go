package handler

import (
	"context"
	"time"

	"github.com/HariharanVicky/user-management-service/db"
	"github.com/HariharanVicky/user-management-service/internal/auth/strategy"
	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/events"
	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	userdto "github.com/HariharanVicky/user-management-service/internal/user/dto"
	"github.com/gofiber/fiber/v2"
)

// PatternHandler exposes the demo surface: strategy-selected
// authentication, manual event dispatch, and factory-built store handles.
type PatternHandler struct {
	strategies *strategy.Registry
	events     *events.Manager
	users      domain.UserRepository
	factory    *db.Factory
}

func NewPatternHandler(strategies *strategy.Registry, manager *events.Manager,
	users domain.UserRepository, factory *db.Factory) *PatternHandler {
	return &PatternHandler{
		strategies: strategies,
		events:     manager,
		users:      users,
		factory:    factory,
	}
}

type strategyAuthInput struct {
	Method      string `json:"method"`
	Credentials string `json:"credentials"`
}

func (h *PatternHandler) StrategyAuthenticate(c *fiber.Ctx) error {
	var input strategyAuthInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.strategies.Authenticate(c.Context(), input.Method, input.Credentials)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"method": input.Method,
		"user":   userdto.FromDomain(user),
	})
}

func (h *PatternHandler) StrategyAvailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.strategies.Available())
}

type triggerEventInput struct {
	Email       string `json:"email"`
	EventType   string `json:"event_type"`
	Description string `json:"description"`
}

func (h *PatternHandler) TriggerEvent(c *fiber.Ctx) error {
	var input triggerEventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	eventType, err := events.ParseType(input.EventType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.users.GetByEmail(c.Context(), input.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": apperror.ErrUserNotFound.Error()})
	}

	h.events.Notify(events.New(eventType, user, input.Description))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"dispatched": eventType,
		"listeners":  h.events.Count(),
	})
}

func (h *PatternHandler) ListenerCount(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"listeners": h.events.Count(),
	})
}

// TestConnections opens and pings every supported backing store. Results
// are reported per driver; a failing store is a result, not an error.
func (h *PatternHandler) TestConnections(c *fiber.Ctx) error {
	results := make(map[string]string)
	for _, driver := range h.factory.Drivers() {
		results[string(driver)] = h.probe(c.Context(), driver)
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *PatternHandler) probe(ctx context.Context, driver db.Driver) string {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	conn, err := h.factory.Open(probeCtx, driver)
	if err != nil {
		return err.Error()
	}
	defer conn.Close()

	if err := conn.Ping(probeCtx); err != nil {
		return err.Error()
	}
	return "ok"
}

func statusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindInvalidInput:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
