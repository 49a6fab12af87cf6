package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ivor/todolist/internal/model"
)

// SaveAlert records a fired reminder. Keyed by task id: a later alert
// for the same task replaces the prior row rather than duplicating it.
// Generates a UUID if ID is empty.
func (s *SQLiteStore) SaveAlert(ctx context.Context, alert model.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.FiredAt.IsZero() {
		alert.FiredAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO alerts (task_id, id, title, message, fired_at)
		VALUES (?, ?, ?, ?, ?)`,
		alert.TaskID, alert.ID, alert.Title, alert.Message,
		alert.FiredAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("saving alert for task %d: %w", alert.TaskID, err)
	}

	return nil
}

// GetAlerts retrieves all fired alerts, most recent first.
func (s *SQLiteStore) GetAlerts(ctx context.Context) ([]model.Alert, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM alerts ORDER BY fired_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []model.Alert
	for rows.Next() {
		var (
			alert       model.Alert
			firedMillis int64
		)
		err := rows.Scan(&alert.TaskID, &alert.ID, &alert.Title,
			&alert.Message, &firedMillis)
		if err != nil {
			return nil, fmt.Errorf("scanning alert row: %w", err)
		}
		alert.FiredAt = time.UnixMilli(firedMillis)
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}

// DeleteAlert dismisses the alert for a task. Returns rows affected;
// 0 means there was none.
func (s *SQLiteStore) DeleteAlert(ctx context.Context, taskID int64) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM alerts WHERE task_id = ?", taskID)
	if err != nil {
		return 0, fmt.Errorf("deleting alert for task %d: %w", taskID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting alert for task %d: %w", taskID, err)
	}
	return rows, nil
}
