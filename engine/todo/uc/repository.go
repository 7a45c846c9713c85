package uc

import (
	"context"

	"github.com/todoman/todoman/engine/todo/model"
)

// Repository defines all data access operations for the todo domain.
type Repository interface {
	// List returns every todo ordered by id ascending.
	List(ctx context.Context) ([]*model.Todo, error)
	// Get returns the todo with the given id or ErrTodoNotFound.
	Get(ctx context.Context, id int64) (*model.Todo, error)
	// Create inserts a new todo and returns it with its assigned id.
	Create(ctx context.Context, input *model.CreateInput) (*model.Todo, error)
	// Update applies the present fields of input to an existing todo and
	// returns the updated entity, or ErrTodoNotFound.
	Update(ctx context.Context, id int64, input *model.UpdateInput) (*model.Todo, error)
	// Delete removes the todo with the given id or returns ErrTodoNotFound.
	Delete(ctx context.Context, id int64) error
}
