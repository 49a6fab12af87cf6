package store

import (
	"context"

	"github.com/ivor/todolist/internal/model"
)

// Store defines the persistence interface for todos and fired alerts.
//
// Mutations on ids that no longer exist report zero rows affected with a
// nil error; callers treat that as a no-op, not a failure.
type Store interface {
	// === Todo CRUD ===

	Insert(ctx context.Context, todo *model.Todo) (int64, error)
	Update(ctx context.Context, todo *model.Todo) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Todo, error)

	// === Todo queries ===

	GetAll(ctx context.Context) ([]model.Todo, error)
	GetIncomplete(ctx context.Context) ([]model.Todo, error)
	GetCompleted(ctx context.Context) ([]model.Todo, error)
	GetByPriority(ctx context.Context, p model.Priority) ([]model.Todo, error)

	// === Completion toggles ===
	//
	// Single-column updates. Reminder state is the caller's
	// responsibility to re-sync afterwards.

	MarkCompleted(ctx context.Context, id int64) (int64, error)
	MarkIncomplete(ctx context.Context, id int64) (int64, error)

	// === Fired alerts ===

	SaveAlert(ctx context.Context, alert model.Alert) error
	GetAlerts(ctx context.Context) ([]model.Alert, error)
	DeleteAlert(ctx context.Context, taskID int64) (int64, error)
}
