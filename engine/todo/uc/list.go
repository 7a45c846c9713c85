package uc

import (
	"context"
	"fmt"

	"github.com/todoman/todoman/engine/todo/model"
)

// ListTodos use case for listing every todo.
type ListTodos struct {
	repo Repository
}

// NewListTodos creates a new list todos use case.
func NewListTodos(repo Repository) *ListTodos {
	return &ListTodos{repo: repo}
}

// Execute returns all todos in ascending id order. The result is never
// nil so an empty store serializes as an empty JSON array.
func (uc *ListTodos) Execute(ctx context.Context) ([]*model.Todo, error) {
	todos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	if todos == nil {
		todos = []*model.Todo{}
	}
	return todos, nil
}
