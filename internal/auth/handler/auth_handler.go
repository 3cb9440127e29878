package handler

import (
	"strings"

	authdto "github.com/HariharanVicky/user-management-service/internal/auth/dto"
	authservice "github.com/HariharanVicky/user-management-service/internal/auth/service"
	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	userdto "github.com/HariharanVicky/user-management-service/internal/user/dto"
	userservice "github.com/HariharanVicky/user-management-service/internal/user/service"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *userservice.UserService
	authService *authservice.AuthService
}

func NewAuthHandler(userService *userservice.UserService, authService *authservice.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input authdto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.userService.Create(c.Context(), userdto.CreateUserInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(userdto.FromDomain(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input authdto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	out, err := h.authService.Authenticate(c.Context(), input.Email, input.Password)
	if err != nil {
		status := statusFor(err)
		// Lookup misses on this route are a credential failure, not a 404.
		if status == fiber.StatusNotFound {
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing bearer token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid": h.authService.ValidateToken(token),
	})
}

func statusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindInvalidInput:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindConflict:
		return fiber.StatusConflict
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
