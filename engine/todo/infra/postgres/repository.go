package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/todoman/todoman/engine/infra/store"
	"github.com/todoman/todoman/engine/todo/model"
	"github.com/todoman/todoman/engine/todo/uc"
)

var todoColumns = []string{"id", "title", "description", "notes", "expiry_date"}

// Repository implements the todo repository interface using PostgreSQL.
type Repository struct {
	db store.DBInterface
}

// NewRepository creates a new todo repository.
func NewRepository(db store.DBInterface) uc.Repository {
	return &Repository{db: db}
}

// List retrieves all todos ordered by id ascending.
func (r *Repository) List(ctx context.Context) ([]*model.Todo, error) {
	query, args, err := squirrel.Select(todoColumns...).
		From("todos").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var todos []*model.Todo
	if err := pgxscan.Select(ctx, r.db, &todos, query, args...); err != nil {
		return nil, fmt.Errorf("scanning todos: %w", err)
	}
	return todos, nil
}

// Get retrieves a todo by id.
func (r *Repository) Get(ctx context.Context, id int64) (*model.Todo, error) {
	return getTodo(ctx, r.db, id)
}

// getTodo runs the lookup against any querier, so it works both on the
// pool and inside a transaction.
func getTodo(ctx context.Context, q pgxscan.Querier, id int64) (*model.Todo, error) {
	query, args, err := squirrel.Select(todoColumns...).
		From("todos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var todo model.Todo
	if err := pgxscan.Get(ctx, q, &todo, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, uc.ErrTodoNotFound
		}
		return nil, fmt.Errorf("scanning todo: %w", err)
	}
	return &todo, nil
}

// Create inserts a new todo and returns the created row.
func (r *Repository) Create(ctx context.Context, input *model.CreateInput) (*model.Todo, error) {
	var created *model.Todo
	err := store.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query, args, err := squirrel.Insert("todos").
			Columns("title", "description", "notes", "expiry_date").
			Values(input.Title, input.Description, input.Notes, input.ExpiryDate).
			Suffix("RETURNING " + strings.Join(todoColumns, ", ")).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("building insert query: %w", err)
		}
		var todo model.Todo
		if err := pgxscan.Get(ctx, tx, &todo, query, args...); err != nil {
			return fmt.Errorf("inserting todo: %w", err)
		}
		created = &todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the present fields of input to the todo with the given
// id and returns the updated row. A payload with no present fields
// leaves the row unchanged.
func (r *Repository) Update(ctx context.Context, id int64, input *model.UpdateInput) (*model.Todo, error) {
	var updated *model.Todo
	err := store.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if input.Empty() {
			todo, err := getTodo(ctx, tx, id)
			if err != nil {
				return err
			}
			updated = todo
			return nil
		}
		qb := squirrel.Update("todos")
		if input.Title.IsSet() {
			qb = qb.Set("title", input.Title.Value())
		}
		if input.Description.IsSet() {
			qb = qb.Set("description", textValue(input.Description))
		}
		if input.Notes.IsSet() {
			qb = qb.Set("notes", textValue(input.Notes))
		}
		if input.ExpiryDate.IsSet() {
			qb = qb.Set("expiry_date", dateValue(input.ExpiryDate))
		}
		query, args, err := qb.
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("building update query: %w", err)
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("updating todo: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return uc.ErrTodoNotFound
		}
		todo, err := getTodo(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a todo by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.Delete("todos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return uc.ErrTodoNotFound
	}
	return nil
}

// textValue normalizes an explicit null to the empty string, the
// canonical absent representation for description and notes.
func textValue(f model.Field[string]) string {
	if f.IsNull() {
		return ""
	}
	return f.Value()
}

// dateValue maps an explicit null to a SQL NULL, clearing the expiry.
func dateValue(f model.Field[model.Date]) any {
	if f.IsNull() {
		return nil
	}
	return f.Value()
}
