package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority ranks a todo. Lower value = higher priority, matching the
// stored integer column.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Label returns the display string for a priority. Values outside the
// known set map to "Unknown" rather than failing.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High priority"
	case PriorityMedium:
		return "Medium priority"
	case PriorityLow:
		return "Low priority"
	default:
		return "Unknown"
	}
}

// Todo is a user-created task item.
type Todo struct {
	// ID is assigned by the store on first insert; zero for
	// un-persisted instances.
	ID int64 `json:"id" db:"id"`

	// Title is the short summary of the task. Never empty in
	// persisted state.
	Title string `json:"title" db:"title"`

	// Description is optional detail text.
	Description string `json:"description,omitempty" db:"description"`

	// Completed marks the task as done.
	Completed bool `json:"completed" db:"is_completed"`

	// CreatedAt is set once at construction and never mutated.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// DueDate is the absolute deadline; nil means no deadline.
	DueDate *time.Time `json:"due_date,omitempty" db:"due_date"`

	// Priority defaults to PriorityMedium.
	Priority Priority `json:"priority" db:"priority"`

	// Category is an optional free-text label.
	Category string `json:"category,omitempty" db:"category"`
}

// NewTodo returns an empty todo with creation time, completion state,
// and priority defaulted.
func NewTodo() *Todo {
	return &Todo{
		CreatedAt: time.Now(),
		Completed: false,
		Priority:  PriorityMedium,
	}
}

// NewTodoWithDetails returns a todo with title and description set.
func NewTodoWithDetails(title, description string) *Todo {
	t := NewTodo()
	t.Title = title
	t.Description = description
	return t
}

// NewTodoWithSchedule returns a todo with title, description, due date,
// and priority set.
func NewTodoWithSchedule(title, description string, dueDate time.Time, priority Priority) *Todo {
	t := NewTodoWithDetails(title, description)
	t.DueDate = &dueDate
	t.Priority = priority
	return t
}

// IsOverdue reports whether the deadline has passed on an incomplete
// todo. Derived on read, never stored.
func (t *Todo) IsOverdue() bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return time.Now().After(*t.DueDate)
}

// Validate checks the todo is fit for persistence. Callers run this
// before any store call; the store trusts its input.
func (t *Todo) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("todo title must not be empty")
	}
	return nil
}
