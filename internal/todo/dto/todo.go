package dto

import (
	"time"

	"github.com/HariharanVicky/user-management-service/internal/todo/domain"
)

type CreateTodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateTodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type TodoOutput struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromDomain(t *domain.Todo) TodoOutput {
	return TodoOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromDomainList(todos []*domain.Todo) []TodoOutput {
	out := make([]TodoOutput, 0, len(todos))
	for _, t := range todos {
		out = append(out, FromDomain(t))
	}
	return out
}
