package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/HariharanVicky/user-management-service/internal/todo/domain"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteTodoRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`)
	return err
}

func (r *SQLiteRepository) Create(ctx context.Context, todo *domain.Todo) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (title, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, todo.Title, todo.Description, string(todo.Status), todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted todo id: %w", err)
	}
	todo.ID = id

	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at
		FROM todos
		WHERE id = ?
	`, id)

	var todo domain.Todo
	var status string
	err := row.Scan(&todo.ID, &todo.Title, &todo.Description, &status, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get todo by id: %w", err)
	}
	todo.Status = domain.Status(status)

	return &todo, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, todo *domain.Todo) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET title = ?, description = ?, status = ?, updated_at = ?
		WHERE id = ?
	`, todo.Title, todo.Description, string(todo.Status), todo.UpdatedAt, todo.ID)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at
		FROM todos
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []*domain.Todo
	for rows.Next() {
		var todo domain.Todo
		var status string
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Description, &status,
			&todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan todo row: %w", err)
		}
		todo.Status = domain.Status(status)
		todos = append(todos, &todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
