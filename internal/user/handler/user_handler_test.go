package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HariharanVicky/user-management-service/internal/events"
	"github.com/HariharanVicky/user-management-service/internal/mocks"
	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	"github.com/HariharanVicky/user-management-service/internal/user/dto"
	"github.com/HariharanVicky/user-management-service/internal/user/handler"
	"github.com/HariharanVicky/user-management-service/internal/user/service"
	"github.com/HariharanVicky/user-management-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*fiber.App, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo, events.NewManager())

	app := fiber.New()
	handler.RegisterRoutes(app, handler.NewUserHandler(svc))

	return app, repo
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app, repo := setup(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/users/", dto.CreateUserInput{
			Email:     "john@example.com",
			Password:  "secret123",
			FirstName: "John",
			LastName:  "Doe",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var out dto.UserOutput
		decode(t, resp, &out)
		assert.Equal(t, "john@example.com", out.Email)
		assert.Equal(t, constant.RoleUser, out.Role)
		assert.True(t, out.Enabled)
	})

	t.Run("validation failure", func(t *testing.T) {
		app, _ := setup(t)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/users/", dto.CreateUserInput{
			Email:     "john@example.com",
			Password:  "123",
			FirstName: "John",
			LastName:  "Doe",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var out map[string]string
		decode(t, resp, &out)
		assert.Equal(t, "Password must be at least 6 characters", out["error"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		app, repo := setup(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(&domain.User{ID: "existing"}, nil)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/users/", dto.CreateUserInput{
			Email:     "john@example.com",
			Password:  "secret123",
			FirstName: "John",
			LastName:  "Doe",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestGetUserByEmailEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		app, repo := setup(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "john@example.com").
			Return(&domain.User{ID: "id-1", Email: "john@example.com"}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/users/john@example.com", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.UserOutput
		decode(t, resp, &out)
		assert.Equal(t, "id-1", out.ID)
	})

	t.Run("absent", func(t *testing.T) {
		app, repo := setup(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/users/ghost@example.com", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateUserEndpoint(t *testing.T) {
	app, repo := setup(t)

	stored := &domain.User{ID: "id-1", Email: "john@example.com", FirstName: "John", LastName: "Doe"}
	repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	first := "Jane"
	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/v1/users/id-1", dto.UpdateUserInput{
		FirstName: &first,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.UserOutput
	decode(t, resp, &out)
	assert.Equal(t, "Jane", out.FirstName)
	assert.Equal(t, "Doe", out.LastName)
}

func TestDeleteUserEndpoint(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		app, repo := setup(t)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(&domain.User{ID: "id-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/users/id-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("absent", func(t *testing.T) {
		app, repo := setup(t)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/users/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestListUsersEndpoint(t *testing.T) {
	app, repo := setup(t)

	repo.EXPECT().List(gomock.Any()).Return([]*domain.User{
		{ID: "id-1", Email: "a@example.com", PasswordHash: "hash"},
		{ID: "id-2", Email: "b@example.com", PasswordHash: "hash"},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []dto.UserOutput
	decode(t, resp, &out)
	assert.Len(t, out, 2)
}
