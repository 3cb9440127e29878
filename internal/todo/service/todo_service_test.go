package service_test

import (
	"context"
	"testing"

	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/mocks"
	"github.com/HariharanVicky/user-management-service/internal/todo/domain"
	"github.com/HariharanVicky/user-management-service/internal/todo/dto"
	"github.com/HariharanVicky/user-management-service/internal/todo/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.NewTodoService(repo)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, todo *domain.Todo) error {
				todo.ID = 1
				return nil
			})

		todo, err := svc.Create(ctx, dto.CreateTodoInput{Title: "Write report"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), todo.ID)
		assert.Equal(t, domain.StatusPending, todo.Status)
		assert.False(t, todo.CreatedAt.IsZero())
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := service.NewTodoService(mocks.NewMockTodoRepository(ctrl))

		_, err := svc.Create(ctx, dto.CreateTodoInput{Title: "  "})
		assert.EqualError(t, err, "Title is required")
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := service.NewTodoService(mocks.NewMockTodoRepository(ctrl))

		_, err := svc.Create(ctx, dto.CreateTodoInput{Title: "Write report", Status: "DONE"})
		assert.EqualError(t, err, "Invalid status: DONE")
	})
}

func TestGetTodo(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTodoRepository(ctrl)
	svc := service.NewTodoService(repo)

	stored := &domain.Todo{ID: 7, Title: "Write report", Status: domain.StatusPending}
	repo.EXPECT().GetByID(ctx, int64(7)).Return(stored, nil)
	repo.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

	todo, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, stored, todo)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, apperror.ErrTodoNotFound)
}

func TestUpdateTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces all fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.NewTodoService(repo)

		stored := &domain.Todo{ID: 7, Title: "Old", Status: domain.StatusPending}
		repo.EXPECT().GetByID(ctx, int64(7)).Return(stored, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		todo, err := svc.Update(ctx, 7, dto.UpdateTodoInput{
			Title:       "New",
			Description: "rewritten",
			Status:      string(domain.StatusCompleted),
		})
		require.NoError(t, err)
		assert.Equal(t, "New", todo.Title)
		assert.Equal(t, "rewritten", todo.Description)
		assert.Equal(t, domain.StatusCompleted, todo.Status)
	})

	t.Run("unknown id never saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.NewTodoService(repo)

		repo.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

		_, err := svc.Update(ctx, 99, dto.UpdateTodoInput{Title: "New", Status: "PENDING"})
		assert.ErrorIs(t, err, apperror.ErrTodoNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.NewTodoService(repo)

		repo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.Todo{ID: 7, Title: "Old"}, nil)

		_, err := svc.Update(ctx, 7, dto.UpdateTodoInput{Title: "New", Status: "DONE"})
		assert.EqualError(t, err, "Invalid status: DONE")
	})
}

func TestDeleteTodo(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTodoRepository(ctrl)
	svc := service.NewTodoService(repo)

	repo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.Todo{ID: 7}, nil)
	repo.EXPECT().Delete(ctx, int64(7)).Return(nil)
	repo.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

	assert.NoError(t, svc.Delete(ctx, 7))
	assert.ErrorIs(t, svc.Delete(ctx, 99), apperror.ErrTodoNotFound)
}

func TestListTodos(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTodoRepository(ctrl)
	svc := service.NewTodoService(repo)

	stored := []*domain.Todo{{ID: 1}, {ID: 2}}
	repo.EXPECT().List(ctx).Return(stored, nil)

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, todos)
}
