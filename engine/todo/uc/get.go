package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/todoman/todoman/engine/todo/model"
)

// GetTodo use case for retrieving a todo by id.
type GetTodo struct {
	repo Repository
	id   int64
}

// NewGetTodo creates a new get todo use case.
func NewGetTodo(repo Repository, id int64) *GetTodo {
	return &GetTodo{repo: repo, id: id}
}

// Execute retrieves the todo.
func (uc *GetTodo) Execute(ctx context.Context) (*model.Todo, error) {
	todo, err := uc.repo.Get(ctx, uc.id)
	if err != nil {
		if errors.Is(err, ErrTodoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting todo %d: %w", uc.id, err)
	}
	return todo, nil
}
