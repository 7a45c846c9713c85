package uc

import (
	"context"
	"fmt"
	"strings"

	"github.com/todoman/todoman/engine/todo/model"
	"github.com/todoman/todoman/pkg/logger"
)

// CreateTodo use case for creating a new todo.
type CreateTodo struct {
	repo  Repository
	input *model.CreateInput
}

// NewCreateTodo creates a new create todo use case.
func NewCreateTodo(repo Repository, input *model.CreateInput) *CreateTodo {
	return &CreateTodo{repo: repo, input: input}
}

// Execute validates the payload and inserts the todo. Validation runs
// before any storage interaction.
func (uc *CreateTodo) Execute(ctx context.Context) (*model.Todo, error) {
	if strings.TrimSpace(uc.input.Title) == "" {
		return nil, ErrTitleRequired
	}
	todo, err := uc.repo.Create(ctx, uc.input)
	if err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}
	log := logger.FromContext(ctx)
	log.Info("Todo created", "id", todo.ID)
	return todo, nil
}
