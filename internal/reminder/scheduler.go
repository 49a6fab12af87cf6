package reminder

import (
	"sync"
	"time"

	"github.com/ivor/todolist/internal/model"
)

// leadTime is how far before a todo's due date its reminder fires.
const leadTime = 15 * time.Minute

// Dispatcher handles a fired trigger. The payload is the todo state
// captured at scheduling time; the dispatcher is never handed the store
// row as it exists at fire time.
type Dispatcher interface {
	OnFire(taskID int64, title, description string)
}

// Scheduler maps a todo's due date to a one-shot wake-up trigger keyed
// by todo id. At most one registration is active per id at any time.
//
// Registration is best-effort and fire-and-forget: Schedule never blocks
// on the trigger and never reports failure to the caller.
type Scheduler struct {
	dispatcher Dispatcher

	// now is the clock; replaced in tests.
	now func() time.Time

	mu      sync.Mutex
	timers  map[int64]*time.Timer
	stopped bool
}

// NewScheduler creates a scheduler dispatching fired triggers to d.
func NewScheduler(d Dispatcher) *Scheduler {
	return &Scheduler{
		dispatcher: d,
		now:        time.Now,
		timers:     make(map[int64]*time.Timer),
	}
}

// Schedule registers a trigger at todo.DueDate minus the lead time.
// No-op if the todo has no due date or the trigger is already in the
// past; a reminder is never fired retroactively. Any existing
// registration for the same id is replaced.
func (s *Scheduler) Schedule(todo *model.Todo) {
	if todo.DueDate == nil {
		return
	}

	trigger := todo.DueDate.Add(-leadTime)
	now := s.now()
	if !trigger.After(now) {
		return
	}

	// Payload is captured here: a title edit after scheduling does not
	// change what the fired alert shows.
	id := todo.ID
	title := todo.Title
	description := todo.Description

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if prev, ok := s.timers[id]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(trigger.Sub(now), func() {
		s.mu.Lock()
		// A reschedule may have replaced this registration between the
		// timer firing and the callback acquiring the lock.
		current, ok := s.timers[id]
		if ok && current == timer {
			delete(s.timers, id)
		}
		stopped := s.stopped
		s.mu.Unlock()

		if !stopped {
			s.dispatcher.OnFire(id, title, description)
		}
	})
	s.timers[id] = timer
}

// Cancel unregisters any trigger keyed by id. Safe no-op if none exists.
func (s *Scheduler) Cancel(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
}

// Reschedule is the single entry point callers use after any todo
// mutation. It always cancels first, then schedules again only for an
// incomplete todo with a due date, making the operation idempotent
// regardless of prior registration state.
func (s *Scheduler) Reschedule(todo *model.Todo) {
	s.Cancel(todo.ID)

	if !todo.Completed && todo.DueDate != nil {
		s.Schedule(todo)
	}
}

// Stop cancels every registration and refuses new ones. Used at
// shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.stopped = true
}

// Scheduled reports whether a trigger is currently registered for id.
func (s *Scheduler) Scheduled(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[id]
	return ok
}

// Active returns the number of currently registered triggers.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}
