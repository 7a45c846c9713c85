package uc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/todoman/todoman/engine/todo/model"
)

// UpdateTodo use case for partially updating an existing todo.
type UpdateTodo struct {
	repo  Repository
	id    int64
	input *model.UpdateInput
}

// NewUpdateTodo creates a new update todo use case.
func NewUpdateTodo(repo Repository, id int64, input *model.UpdateInput) *UpdateTodo {
	return &UpdateTodo{repo: repo, id: id, input: input}
}

// Execute validates the payload and applies the present fields. A
// payload with zero recognized fields is a no-op returning the stored
// entity unchanged.
func (uc *UpdateTodo) Execute(ctx context.Context) (*model.Todo, error) {
	if uc.input.Title.IsSet() {
		if uc.input.Title.IsNull() || strings.TrimSpace(uc.input.Title.Value()) == "" {
			return nil, ErrTitleRequired
		}
	}
	todo, err := uc.repo.Update(ctx, uc.id, uc.input)
	if err != nil {
		if errors.Is(err, ErrTodoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating todo %d: %w", uc.id, err)
	}
	return todo, nil
}
