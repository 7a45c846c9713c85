package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/todoman/todoman/pkg/logger"
)

// DeleteTodo use case for removing a todo.
type DeleteTodo struct {
	repo Repository
	id   int64
}

// NewDeleteTodo creates a new delete todo use case.
func NewDeleteTodo(repo Repository, id int64) *DeleteTodo {
	return &DeleteTodo{repo: repo, id: id}
}

// Execute hard-deletes the todo. A second delete of the same id reports
// not found.
func (uc *DeleteTodo) Execute(ctx context.Context) error {
	if err := uc.repo.Delete(ctx, uc.id); err != nil {
		if errors.Is(err, ErrTodoNotFound) {
			return err
		}
		return fmt.Errorf("deleting todo %d: %w", uc.id, err)
	}
	log := logger.FromContext(ctx)
	log.Info("Todo deleted", "id", uc.id)
	return nil
}
