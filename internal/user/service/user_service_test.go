package service_test

import (
	"context"
	"testing"

	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/events"
	"github.com/HariharanVicky/user-management-service/internal/mocks"
	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	"github.com/HariharanVicky/user-management-service/internal/user/dto"
	"github.com/HariharanVicky/user-management-service/internal/user/service"
	"github.com/HariharanVicky/user-management-service/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type publisherSpy struct {
	events []events.Event
}

func (p *publisherSpy) Notify(event events.Event) {
	p.events = append(p.events, event)
}

func validCreateInput() dto.CreateUserInput {
	return dto.CreateUserInput{
		Email:     "john@example.com",
		Password:  "secret123",
		FirstName: "John",
		LastName:  "Doe",
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		spy := &publisherSpy{}
		svc := service.NewUserService(repo, spy)

		input := validCreateInput()
		repo.EXPECT().GetByEmail(ctx, input.Email).Return(nil, nil)

		var saved *domain.User
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) error {
				saved = u
				return nil
			})

		user, err := svc.Create(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, input.Email, user.Email)
		assert.Equal(t, constant.RoleUser, user.Role)
		assert.True(t, user.Enabled)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))

		require.Len(t, spy.events, 1)
		assert.Equal(t, events.UserRegistered, spy.events[0].Type)
		assert.Equal(t, user, spy.events[0].User)
	})

	t.Run("explicit admin role kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		input := validCreateInput()
		input.Role = constant.RoleAdmin
		repo.EXPECT().GetByEmail(ctx, input.Email).Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		user, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, constant.RoleAdmin, user.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		input := validCreateInput()
		input.Role = "SUPERUSER"

		_, err := svc.Create(ctx, input)
		assert.EqualError(t, err, "Invalid role: SUPERUSER")
		assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	})

	t.Run("email already in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		spy := &publisherSpy{}
		svc := service.NewUserService(repo, spy)

		input := validCreateInput()
		repo.EXPECT().GetByEmail(ctx, input.Email).Return(&domain.User{ID: "existing"}, nil)

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, apperror.ErrEmailAlreadyInUse)
		assert.Empty(t, spy.events)
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*dto.CreateUserInput)
			message string
		}{
			{"missing email", func(i *dto.CreateUserInput) { i.Email = "" }, "Email is required"},
			{"malformed email", func(i *dto.CreateUserInput) { i.Email = "not-an-email" }, "Invalid email format"},
			{"short password", func(i *dto.CreateUserInput) { i.Password = "12345" }, "Password must be at least 6 characters"},
			{"missing first name", func(i *dto.CreateUserInput) { i.FirstName = "" }, "Name is required"},
			{"short last name", func(i *dto.CreateUserInput) { i.LastName = "D" }, "Name must be at least 2 characters"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				// No expectations registered: any repo call fails the test.
				repo := mocks.NewMockUserRepository(ctrl)
				svc := service.NewUserService(repo, &publisherSpy{})

				input := validCreateInput()
				tt.mutate(&input)

				_, err := svc.Create(ctx, input)
				assert.EqualError(t, err, tt.message)
				assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
			})
		}
	})
}

func TestGetUserByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		stored := &domain.User{ID: "id-1", Email: "john@example.com"}
		repo.EXPECT().GetByEmail(ctx, "john@example.com").Return(stored, nil)

		user, err := svc.GetByEmail(ctx, "john@example.com")
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("invalid email rejected before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		_, err := svc.GetByEmail(ctx, "broken")
		assert.EqualError(t, err, "Invalid email format")
	})

	t.Run("absent user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)

		_, err := svc.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	})
}

func strPtr(s string) *string { return &s }

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id never saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		repo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := svc.Update(ctx, "missing", dto.UpdateUserInput{FirstName: strPtr("Jane")})
		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	})

	t.Run("updates provided fields only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		spy := &publisherSpy{}
		svc := service.NewUserService(repo, spy)

		stored := &domain.User{ID: "id-1", Email: "john@example.com", FirstName: "John", LastName: "Doe"}
		repo.EXPECT().GetByID(ctx, "id-1").Return(stored, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		user, err := svc.Update(ctx, "id-1", dto.UpdateUserInput{FirstName: strPtr("Jane")})
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
		assert.Equal(t, "john@example.com", user.Email)
		assert.Empty(t, spy.events)
	})

	t.Run("new email must be free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		stored := &domain.User{ID: "id-1", Email: "john@example.com"}
		repo.EXPECT().GetByID(ctx, "id-1").Return(stored, nil)
		repo.EXPECT().GetByEmail(ctx, "taken@example.com").Return(&domain.User{ID: "id-2"}, nil)

		_, err := svc.Update(ctx, "id-1", dto.UpdateUserInput{Email: strPtr("taken@example.com")})
		assert.ErrorIs(t, err, apperror.ErrEmailAlreadyInUse)
	})

	t.Run("password change rehashes and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		spy := &publisherSpy{}
		svc := service.NewUserService(repo, spy)

		stored := &domain.User{ID: "id-1", Email: "john@example.com", PasswordHash: "old-hash"}
		repo.EXPECT().GetByID(ctx, "id-1").Return(stored, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		user, err := svc.Update(ctx, "id-1", dto.UpdateUserInput{Password: strPtr("newsecret")})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newsecret")))

		require.Len(t, spy.events, 1)
		assert.Equal(t, events.PasswordChanged, spy.events[0].Type)
	})

	t.Run("short replacement password rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		stored := &domain.User{ID: "id-1", Email: "john@example.com"}
		repo.EXPECT().GetByID(ctx, "id-1").Return(stored, nil)

		_, err := svc.Update(ctx, "id-1", dto.UpdateUserInput{Password: strPtr("short")})
		assert.EqualError(t, err, "Password must be at least 6 characters")
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success notifies listeners", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		spy := &publisherSpy{}
		svc := service.NewUserService(repo, spy)

		stored := &domain.User{ID: "id-1", Email: "john@example.com"}
		repo.EXPECT().GetByID(ctx, "id-1").Return(stored, nil)
		repo.EXPECT().Delete(ctx, "id-1").Return(nil)

		require.NoError(t, svc.Delete(ctx, "id-1"))
		require.Len(t, spy.events, 1)
		assert.Equal(t, events.UserDeleted, spy.events[0].Type)
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(repo, &publisherSpy{})

		repo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "missing"), apperror.ErrUserNotFound)
	})
}

func TestListUsersClearsHashes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo, &publisherSpy{})

	repo.EXPECT().List(ctx).Return([]*domain.User{
		{ID: "id-1", Email: "a@example.com", PasswordHash: "hash-a"},
		{ID: "id-2", Email: "b@example.com", PasswordHash: "hash-b"},
	}, nil)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
