package reminder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivor/todolist/tests/testutil"
)

func TestOnFirePersistsAlert(t *testing.T) {
	s := testutil.NewTestStore(t)
	d := NewAlertDispatcher(s, false)

	d.OnFire(11, "Submit timesheet", "Before Friday standup")

	alerts, err := s.GetAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.Equal(t, int64(11), alerts[0].TaskID)
	assert.Equal(t, "Submit timesheet", alerts[0].Title)
	assert.Equal(t, "Before Friday standup", alerts[0].Message)
	assert.False(t, alerts[0].FiredAt.IsZero())
}

func TestOnFireEmptyDescriptionUsesGenericMessage(t *testing.T) {
	s := testutil.NewTestStore(t)
	d := NewAlertDispatcher(s, false)

	d.OnFire(12, "Pick up keys", "")

	alerts, err := s.GetAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, genericMessage, alerts[0].Message)
}

func TestOnFireReplacesByTaskID(t *testing.T) {
	s := testutil.NewTestStore(t)
	d := NewAlertDispatcher(s, false)

	d.OnFire(13, "Same task", "first fire")
	d.OnFire(13, "Same task", "second fire")

	alerts, err := s.GetAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1, "repeat fire must replace the prior alert")
	assert.Equal(t, "second fire", alerts[0].Message)
}

func TestOnFireDesktopNotification(t *testing.T) {
	s := testutil.NewTestStore(t)
	d := NewAlertDispatcher(s, false)

	var gotTitle, gotMessage string
	d.notify = func(title, message string) error {
		gotTitle = title
		gotMessage = message
		return nil
	}

	d.OnFire(14, "Board flight", "Gate closes 21:40")

	assert.Equal(t, "Todo reminder: Board flight", gotTitle)
	assert.Equal(t, "Gate closes 21:40", gotMessage)
}

func TestNewAlertDispatcherDesktopDisabled(t *testing.T) {
	d := NewAlertDispatcher(testutil.NewTestStore(t), false)
	assert.Nil(t, d.notify)
}
