package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ivor/todolist/internal/model"
)

// Insert persists a new todo and assigns the generated id back onto it.
func (s *SQLiteStore) Insert(ctx context.Context, todo *model.Todo) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (title, description, is_completed, created_at, due_date, priority, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		todo.Title, todo.Description, boolToInt(todo.Completed),
		todo.CreatedAt.UnixMilli(), dueDateMillis(todo.DueDate),
		int(todo.Priority), todo.Category,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted todo id: %w", err)
	}

	todo.ID = id
	return id, nil
}

// Update overwrites the full row for todo.ID. A nil DueDate nulls the
// stored column. Returns rows affected; 0 means the id matched nothing.
func (s *SQLiteStore) Update(ctx context.Context, todo *model.Todo) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE todos SET
			title = ?, description = ?, is_completed = ?,
			created_at = ?, due_date = ?, priority = ?, category = ?
		WHERE id = ?`,
		todo.Title, todo.Description, boolToInt(todo.Completed),
		todo.CreatedAt.UnixMilli(), dueDateMillis(todo.DueDate),
		int(todo.Priority), todo.Category,
		todo.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating todo %d: %w", todo.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("updating todo %d: %w", todo.ID, err)
	}
	return rows, nil
}

// Delete removes a todo by id. Returns rows affected; 0 means no match.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting todo %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting todo %d: %w", id, err)
	}
	return rows, nil
}

// GetByID retrieves a single todo by id. Returns (nil, nil) if absent.
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (*model.Todo, error) {
	row := s.db.QueryRowxContext(ctx, "SELECT * FROM todos WHERE id = ?", id)

	todo, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting todo %d: %w", id, err)
	}

	return &todo, nil
}

// GetAll retrieves every todo, newest first.
func (s *SQLiteStore) GetAll(ctx context.Context) ([]model.Todo, error) {
	return s.queryTodos(ctx,
		"SELECT * FROM todos ORDER BY created_at DESC")
}

// GetIncomplete retrieves open todos ordered by priority (high first),
// then due date ascending with undated todos last.
func (s *SQLiteStore) GetIncomplete(ctx context.Context) ([]model.Todo, error) {
	return s.queryTodos(ctx, `
		SELECT * FROM todos WHERE is_completed = 0
		ORDER BY priority ASC, due_date IS NULL, due_date ASC`)
}

// GetCompleted retrieves finished todos, newest first.
func (s *SQLiteStore) GetCompleted(ctx context.Context) ([]model.Todo, error) {
	return s.queryTodos(ctx,
		"SELECT * FROM todos WHERE is_completed = 1 ORDER BY created_at DESC")
}

// GetByPriority retrieves todos of one priority ordered by due date
// ascending, undated todos last.
func (s *SQLiteStore) GetByPriority(ctx context.Context, p model.Priority) ([]model.Todo, error) {
	return s.queryTodos(ctx, `
		SELECT * FROM todos WHERE priority = ?
		ORDER BY due_date IS NULL, due_date ASC`, int(p))
}

// MarkCompleted flips a single todo to completed. Reminder state is
// untouched; callers reschedule afterwards.
func (s *SQLiteStore) MarkCompleted(ctx context.Context, id int64) (int64, error) {
	return s.setCompleted(ctx, id, 1)
}

// MarkIncomplete flips a single todo back to open.
func (s *SQLiteStore) MarkIncomplete(ctx context.Context, id int64) (int64, error) {
	return s.setCompleted(ctx, id, 0)
}

func (s *SQLiteStore) setCompleted(ctx context.Context, id int64, completed int) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE todos SET is_completed = ? WHERE id = ?", completed, id)
	if err != nil {
		return 0, fmt.Errorf("setting completion for todo %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("setting completion for todo %d: %w", id, err)
	}
	return rows, nil
}

// queryTodos runs a SELECT over the todos table and scans all rows.
func (s *SQLiteStore) queryTodos(ctx context.Context, query string, args ...interface{}) ([]model.Todo, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

// scanTodo scans a todo row from either sqlx.Rows or sqlx.Row.
//
// A NULL or zero due_date column reads as an absent due date; this
// convention is shared with the insert/update path, which always writes
// NULL for "no deadline".
func scanTodo(row interface{ Scan(dest ...interface{}) error }) (model.Todo, error) {
	var (
		todo          model.Todo
		description   sql.NullString
		completedInt  int
		createdMillis int64
		dueMillis     sql.NullInt64
		priority      int
		category      sql.NullString
	)

	err := row.Scan(
		&todo.ID, &todo.Title, &description, &completedInt,
		&createdMillis, &dueMillis, &priority, &category,
	)
	if err == sql.ErrNoRows {
		return model.Todo{}, err
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("scanning todo row: %w", err)
	}

	todo.Description = description.String
	todo.Completed = completedInt != 0
	todo.CreatedAt = time.UnixMilli(createdMillis)
	if dueMillis.Valid && dueMillis.Int64 > 0 {
		due := time.UnixMilli(dueMillis.Int64)
		todo.DueDate = &due
	}
	todo.Priority = model.Priority(priority)
	todo.Category = category.String

	return todo, nil
}
