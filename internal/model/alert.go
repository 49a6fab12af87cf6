package model

import "time"

// Alert is a fired reminder surfaced to the user. At most one alert is
// kept per task: a later fire for the same task replaces the prior row.
type Alert struct {
	// TaskID links this alert to the originating todo.
	TaskID int64 `json:"task_id" db:"task_id"`

	// ID is the unique identifier for this alert instance.
	ID string `json:"id" db:"id"`

	// Title is the todo title as it was at scheduling time.
	Title string `json:"title" db:"title"`

	// Message is the human-readable alert text.
	Message string `json:"message" db:"message"`

	// FiredAt is when the reminder trigger fired.
	FiredAt time.Time `json:"fired_at" db:"fired_at"`
}
