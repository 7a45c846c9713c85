package uc

import "errors"

// ErrTodoNotFound is returned when the referenced todo does not exist.
var ErrTodoNotFound = errors.New("todo not found")

// ErrTitleRequired is returned when a create or update would leave the
// title empty.
var ErrTitleRequired = errors.New("title must not be empty")
