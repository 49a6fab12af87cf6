package reminder

import (
	"context"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/ivor/todolist/internal/model"
)

// genericMessage stands in when a todo was scheduled without a
// description.
const genericMessage = "Task due soon."

// saveTimeout bounds the alert write at fire time; the fire path runs
// outside any caller's control flow and must not hang.
const saveTimeout = 5 * time.Second

// AlertStore is the slice of the store the dispatcher writes to.
type AlertStore interface {
	SaveAlert(ctx context.Context, alert model.Alert) error
}

// NotifyFunc delivers a user-visible notification.
type NotifyFunc func(title, message string) error

// AlertDispatcher turns a fired trigger into a persisted alert record
// and a desktop notification. Both are best-effort: failures are
// dropped, never surfaced to the scheduler.
type AlertDispatcher struct {
	store  AlertStore
	notify NotifyFunc
}

// NewAlertDispatcher creates a dispatcher writing alerts to store.
// With desktop false, fired reminders only persist alert records.
func NewAlertDispatcher(store AlertStore, desktop bool) *AlertDispatcher {
	d := &AlertDispatcher{store: store}
	if desktop {
		d.notify = func(title, message string) error {
			return beeep.Notify(title, message, "")
		}
	}
	return d
}

// OnFire handles a fired trigger. The payload is scheduling-time state:
// a todo deleted or completed after scheduling still produces an alert,
// and a renamed todo shows its old title.
//
// Alerts are keyed by task id, so a repeat fire for the same todo
// replaces the prior alert rather than accumulating duplicates.
func (d *AlertDispatcher) OnFire(taskID int64, title, description string) {
	message := description
	if message == "" {
		message = genericMessage
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	_ = d.store.SaveAlert(ctx, model.Alert{
		TaskID:  taskID,
		Title:   title,
		Message: message,
		FiredAt: time.Now(),
	})

	if d.notify != nil {
		_ = d.notify("Todo reminder: "+title, message)
	}
}
