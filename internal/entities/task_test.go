package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	task := Task{Status: TaskTodo, DueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.True(t, task.Overdue(now))

	task.Status = TaskCompleted
	require.False(t, task.Overdue(now))

	task.Status = TaskReview
	task.DueDate = now
	require.False(t, task.Overdue(now))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-01-15T22:10:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/01/2024")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEnumsValid(t *testing.T) {
	require.True(t, TaskInProgress.Valid())
	require.False(t, TaskStatus("done").Valid())
	require.True(t, PriorityUrgent.Valid())
	require.False(t, Priority("critical").Valid())
	require.True(t, MemberInactive.Valid())
	require.False(t, MemberStatus("away").Valid())
	require.True(t, TaskUpdate{}.Empty())
}
