package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivor/todolist/internal/model"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestInsertGetByIDRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	due := time.Now().Add(48 * time.Hour).Truncate(time.Millisecond)
	todo := model.NewTodoWithSchedule("Renew passport", "Bring photos", due, model.PriorityHigh)
	todo.Category = "errands"

	id, err := s.Insert(ctx, todo)
	require.NoError(t, err)
	assert.Equal(t, id, todo.ID, "insert assigns the id in place")
	assert.Greater(t, id, int64(0))

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, todo.Title, got.Title)
	assert.Equal(t, todo.Description, got.Description)
	assert.Equal(t, todo.Completed, got.Completed)
	assert.Equal(t, todo.Priority, got.Priority)
	assert.Equal(t, todo.Category, got.Category)
	assert.True(t, got.CreatedAt.Equal(todo.CreatedAt.Truncate(time.Millisecond)))
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
}

func TestGetByIDAbsent(t *testing.T) {
	s := newStore(t)

	got, err := s.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateClearsDueDate(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	due := time.Now().Add(time.Hour)
	todo := model.NewTodoWithSchedule("Call dentist", "", due, model.PriorityMedium)
	_, err := s.Insert(ctx, todo)
	require.NoError(t, err)

	todo.DueDate = nil
	rows, err := s.Update(ctx, todo)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := s.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.DueDate, "cleared due date must read back as absent")
}

func TestUpdateStaleID(t *testing.T) {
	s := newStore(t)

	todo := model.NewTodoWithDetails("Ghost", "")
	todo.ID = 12345

	rows, err := s.Update(context.Background(), todo)
	require.NoError(t, err)
	assert.Zero(t, rows, "stale id reports zero rows, not an error")
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	todo := model.NewTodoWithDetails("Throwaway", "")
	_, err := s.Insert(ctx, todo)
	require.NoError(t, err)

	rows, err := s.Delete(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := s.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	rows, err = s.Delete(ctx, todo.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestGetAllOrder(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	base := time.Now()
	for i, title := range []string{"oldest", "middle", "newest"} {
		todo := model.NewTodoWithDetails(title, "")
		todo.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := s.Insert(ctx, todo)
		require.NoError(t, err)
	}

	todos, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)

	assert.Equal(t, "newest", todos[0].Title)
	assert.Equal(t, "middle", todos[1].Title)
	assert.Equal(t, "oldest", todos[2].Title)
}

func TestGetIncompleteOrder(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	now := time.Now()
	dayBefore := now.Add(-24 * time.Hour)
	dayAfter := now.Add(24 * time.Hour)

	lowNoDue := model.NewTodoWithDetails("low, undated", "")
	lowNoDue.Priority = model.PriorityLow
	highLater := model.NewTodoWithSchedule("high, later", "", dayAfter, model.PriorityHigh)
	highSooner := model.NewTodoWithSchedule("high, sooner", "", dayBefore, model.PriorityHigh)
	done := model.NewTodoWithDetails("finished", "")
	done.Completed = true

	for _, todo := range []*model.Todo{lowNoDue, highLater, highSooner, done} {
		_, err := s.Insert(ctx, todo)
		require.NoError(t, err)
	}

	todos, err := s.GetIncomplete(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)

	// Priority ascending, then due date ascending with nulls last.
	assert.Equal(t, "high, sooner", todos[0].Title)
	assert.Equal(t, "high, later", todos[1].Title)
	assert.Equal(t, "low, undated", todos[2].Title)
}

func TestGetCompleted(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	open := model.NewTodoWithDetails("open", "")
	_, err := s.Insert(ctx, open)
	require.NoError(t, err)

	base := time.Now()
	for i, title := range []string{"done early", "done late"} {
		todo := model.NewTodoWithDetails(title, "")
		todo.Completed = true
		todo.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := s.Insert(ctx, todo)
		require.NoError(t, err)
	}

	todos, err := s.GetCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, "done late", todos[0].Title)
	assert.Equal(t, "done early", todos[1].Title)
}

func TestGetByPriority(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	soon := time.Now().Add(time.Hour)
	later := time.Now().Add(2 * time.Hour)

	highLater := model.NewTodoWithSchedule("high later", "", later, model.PriorityHigh)
	highSoon := model.NewTodoWithSchedule("high soon", "", soon, model.PriorityHigh)
	highUndated := model.NewTodoWithDetails("high undated", "")
	highUndated.Priority = model.PriorityHigh
	low := model.NewTodoWithDetails("low", "")
	low.Priority = model.PriorityLow

	for _, todo := range []*model.Todo{highLater, highSoon, highUndated, low} {
		_, err := s.Insert(ctx, todo)
		require.NoError(t, err)
	}

	todos, err := s.GetByPriority(ctx, model.PriorityHigh)
	require.NoError(t, err)
	require.Len(t, todos, 3)

	assert.Equal(t, "high soon", todos[0].Title)
	assert.Equal(t, "high later", todos[1].Title)
	assert.Equal(t, "high undated", todos[2].Title)
}

func TestMarkCompletedAndIncomplete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	todo := model.NewTodoWithDetails("Flip me", "")
	_, err := s.Insert(ctx, todo)
	require.NoError(t, err)

	rows, err := s.MarkCompleted(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := s.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Completed)

	rows, err = s.MarkIncomplete(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err = s.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Completed)

	// Stale id is a zero-rows no-op.
	rows, err = s.MarkCompleted(ctx, 9999)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
