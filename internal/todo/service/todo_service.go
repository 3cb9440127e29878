package service

import (
	"context"
	"strings"
	"time"

	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/todo/domain"
	"github.com/HariharanVicky/user-management-service/internal/todo/dto"
)

type TodoService struct {
	repo domain.TodoRepository
}

func NewTodoService(repo domain.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, input dto.CreateTodoInput) (*domain.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperror.Invalid("Title is required")
	}

	status := domain.Status(input.Status)
	if input.Status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, apperror.Invalid("Invalid status: " + input.Status)
	}

	now := time.Now()

	todo := &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, apperror.ErrTodoNotFound
	}

	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, id int64, input dto.UpdateTodoInput) (*domain.Todo, error) {
	todo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, apperror.Invalid("Title is required")
	}
	status := domain.Status(input.Status)
	if !status.Valid() {
		return nil, apperror.Invalid("Invalid status: " + input.Status)
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.Status = status
	todo.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *TodoService) List(ctx context.Context) ([]*domain.Todo, error) {
	return s.repo.List(ctx)
}
